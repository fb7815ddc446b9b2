package movies

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmrank-io/filmrank/models"
	"github.com/filmrank-io/filmrank/services/web"
)

type IndexData struct {
	Movies []*models.Movie
}

// index lists every movie in rating order, recomputing and persisting
// rankings as a side effect of the read.
func (s *Handler) index(c *gin.Context) {
	ms, err := s.refreshRankings(c)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	s.tb.Build("index").HTML(http.StatusOK, web.NewContext(c).WithData(&IndexData{
		Movies: ms,
	}))
}

func (s *Handler) refreshRankings(c *gin.Context) ([]*models.Movie, error) {
	ctx := c.Request.Context()
	ms, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	models.AssignRankings(ms)
	err = s.store.UpdateRankings(ctx, ms)
	if err != nil {
		return nil, err
	}
	return ms, nil
}
