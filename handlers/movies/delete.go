package movies

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// delete removes the movie named by the id query parameter; unknown
// ids get 404 and leave the store untouched.
func (s *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	deleted, err := s.store.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
