package models

import (
	"context"

	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"
)

// MovieStore is the store-client handed to request handlers. It binds
// the query helpers to the lazily connected app database.
type MovieStore struct {
	pg *cs.PG
}

func NewMovieStore(pg *cs.PG) *MovieStore {
	return &MovieStore{
		pg: pg,
	}
}

func (s *MovieStore) List(ctx context.Context) ([]*Movie, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("no db")
	}
	return GetMovieList(ctx, db)
}

func (s *MovieStore) Get(ctx context.Context, id int64) (*Movie, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("no db")
	}
	return GetMovieByID(ctx, db, id)
}

func (s *MovieStore) Insert(ctx context.Context, m *Movie) error {
	db := s.pg.Get()
	if db == nil {
		return errors.New("no db")
	}
	return InsertMovie(ctx, db, m)
}

func (s *MovieStore) UpdateRatingAndReview(ctx context.Context, m *Movie) error {
	db := s.pg.Get()
	if db == nil {
		return errors.New("no db")
	}
	return UpdateMovieRatingAndReview(ctx, db, m)
}

func (s *MovieStore) UpdateRankings(ctx context.Context, movies []*Movie) error {
	db := s.pg.Get()
	if db == nil {
		return errors.New("no db")
	}
	return UpdateMovieRankings(ctx, db, movies)
}

func (s *MovieStore) Delete(ctx context.Context, id int64) (bool, error) {
	db := s.pg.Get()
	if db == nil {
		return false, errors.New("no db")
	}
	return DeleteMovie(ctx, db, id)
}
