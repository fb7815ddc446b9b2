package movies

import (
	"context"

	"github.com/filmrank-io/filmrank/models"
)

// mockStore is a hand-rolled Store for handler tests.
type mockStore struct {
	movies   []*models.Movie
	listErr  error
	getErr   error
	insertID int64

	inserted       []*models.Movie
	updated        []*models.Movie
	rankingUpdates [][]*models.Movie
	deleteCalls    []int64
}

func (m *mockStore) List(_ context.Context) ([]*models.Movie, error) {
	return m.movies, m.listErr
}

func (m *mockStore) Get(_ context.Context, id int64) (*models.Movie, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, mv := range m.movies {
		if mv.MovieID == id {
			return mv, nil
		}
	}
	return nil, nil
}

func (m *mockStore) Insert(_ context.Context, mv *models.Movie) error {
	mv.MovieID = m.insertID
	m.inserted = append(m.inserted, mv)
	m.movies = append(m.movies, mv)
	return nil
}

func (m *mockStore) UpdateRatingAndReview(_ context.Context, mv *models.Movie) error {
	m.updated = append(m.updated, mv)
	return nil
}

func (m *mockStore) UpdateRankings(_ context.Context, movies []*models.Movie) error {
	m.rankingUpdates = append(m.rankingUpdates, movies)
	return nil
}

func (m *mockStore) Delete(_ context.Context, id int64) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	for i, mv := range m.movies {
		if mv.MovieID == id {
			m.movies = append(m.movies[:i], m.movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
