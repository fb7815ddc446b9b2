package movies

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/filmrank-io/filmrank/models"
	"github.com/filmrank-io/filmrank/services/web"
)

type EditData struct {
	Movie *models.Movie
	Form  *RatingForm
}

// editForm renders a blank rating/review form next to the movie's
// read-only details. Fields are never pre-filled from the record.
func (s *Handler) editForm(c *gin.Context) {
	m, ok := s.getMovieFromQuery(c)
	if !ok {
		return
	}
	s.tb.Build("edit").HTML(http.StatusOK, web.NewContext(c).WithData(&EditData{
		Movie: m,
		Form:  &RatingForm{},
	}))
}

func (s *Handler) editSubmit(c *gin.Context) {
	m, ok := s.getMovieFromQuery(c)
	if !ok {
		return
	}
	form := bindRatingForm(c)
	if !form.Validate() {
		s.tb.Build("edit").HTML(http.StatusOK, web.NewContext(c).WithData(&EditData{
			Movie: m,
			Form:  form,
		}))
		return
	}
	rating := form.RatingValue()
	review := form.Review
	m.Rating = &rating
	m.Review = &review
	err := s.store.UpdateRatingAndReview(c.Request.Context(), m)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// getMovieFromQuery loads the movie named by the id query parameter,
// ending the request with 404 when it does not resolve.
func (s *Handler) getMovieFromQuery(c *gin.Context) (*models.Movie, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return nil, false
	}
	m, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return nil, false
	}
	if m == nil {
		c.Status(http.StatusNotFound)
		return nil, false
	}
	return m, true
}
