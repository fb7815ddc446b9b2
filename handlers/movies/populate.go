package movies

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/filmrank-io/filmrank/models"
	"github.com/filmrank-io/filmrank/services/tmdb"
)

// populate fetches provider details for the selected movie, stores a
// new record with rating and review unset, and redirects to its edit
// page.
func (s *Handler) populate(c *gin.Context) {
	m, err := s.populateMovie(c)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/edit?id=%v", m.MovieID))
}

func (s *Handler) populateMovie(c *gin.Context) (*models.Movie, error) {
	ctx := c.Request.Context()
	details, err := s.api.GetMovie(ctx, c.Query("id"))
	if err != nil {
		return nil, err
	}
	m, err := movieFromDetails(s.api, details)
	if err != nil {
		return nil, err
	}
	err = s.store.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func movieFromDetails(api *tmdb.Api, details *tmdb.MovieDetails) (*models.Movie, error) {
	if details.PosterPath == "" {
		return nil, errors.Errorf("missing poster_path for movie %v", details.ID)
	}
	year, err := parseReleaseYear(details.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &models.Movie{
		Title:       details.Title,
		Year:        year,
		Description: details.Overview,
		ImgURL:      api.MakeImgURL(details.PosterPath),
	}, nil
}

// parseReleaseYear takes the segment before the first dash of a
// YYYY-MM-DD release date.
func parseReleaseYear(releaseDate string) (int, error) {
	yearStr := strings.SplitN(releaseDate, "-", 2)[0]
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed release date %q", releaseDate)
	}
	return year, nil
}
