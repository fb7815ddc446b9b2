package movies

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/filmrank-io/filmrank/models"
	"github.com/filmrank-io/filmrank/services/template"
	"github.com/filmrank-io/filmrank/services/tmdb"
	"github.com/filmrank-io/filmrank/services/web"
)

// Store is the movie store-client the handlers operate on.
type Store interface {
	List(ctx context.Context) ([]*models.Movie, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	Insert(ctx context.Context, m *models.Movie) error
	UpdateRatingAndReview(ctx context.Context, m *models.Movie) error
	UpdateRankings(ctx context.Context, movies []*models.Movie) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	tb    *template.Builder[*web.Context]
	api   *tmdb.Api
	store Store
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], api *tmdb.Api, store Store) {
	h := &Handler{
		tb:    tm.MustRegisterViews("*").WithLayout("main"),
		api:   api,
		store: store,
	}
	r.GET("/", h.index)
	r.GET("/add", h.addForm)
	r.POST("/add", h.addSearch)
	r.GET("/populate", h.populate)
	r.GET("/edit", h.editForm)
	r.POST("/edit", h.editSubmit)
	r.GET("/delete", h.delete)
}
