package movies

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmrank-io/filmrank/services/tmdb"
	"github.com/filmrank-io/filmrank/services/web"
)

type AddData struct {
	Form *TitleForm
}

type SelectData struct {
	Query   string
	Results []tmdb.MovieResult
}

func (s *Handler) addForm(c *gin.Context) {
	s.tb.Build("add").HTML(http.StatusOK, web.NewContext(c).WithData(&AddData{
		Form: &TitleForm{},
	}))
}

// addSearch never touches the provider when validation fails.
func (s *Handler) addSearch(c *gin.Context) {
	form := bindTitleForm(c)
	if !form.Validate() {
		s.tb.Build("add").HTML(http.StatusOK, web.NewContext(c).WithData(&AddData{
			Form: form,
		}))
		return
	}
	results, err := s.api.SearchMovies(c.Request.Context(), form.Title)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	s.tb.Build("select").HTML(http.StatusOK, web.NewContext(c).WithData(&SelectData{
		Query:   form.Title,
		Results: results,
	}))
}
