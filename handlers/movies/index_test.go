package movies

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/filmrank-io/filmrank/models"
)

func TestIndex(t *testing.T) {
	api := newTestApi(t)

	t.Run("recomputes and persists rankings", func(t *testing.T) {
		// Store order: rating ascending.
		b := &models.Movie{MovieID: 2, Title: "B", Year: 2001, Rating: ratingPtr(7.0), ImgURL: "/b.jpg"}
		c := &models.Movie{MovieID: 3, Title: "C", Year: 2002, Rating: ratingPtr(8.5), ImgURL: "/c.jpg"}
		a := &models.Movie{MovieID: 1, Title: "A", Year: 2000, Rating: ratingPtr(9.0), ImgURL: "/a.jpg"}
		store := &mockStore{movies: []*models.Movie{b, c, a}}
		r := newTestEngine(t, api, store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
		}
		if got := *a.Ranking; got != 1 {
			t.Errorf("A.Ranking = %v, want 1", got)
		}
		if got := *c.Ranking; got != 2 {
			t.Errorf("C.Ranking = %v, want 2", got)
		}
		if got := *b.Ranking; got != 3 {
			t.Errorf("B.Ranking = %v, want 3", got)
		}
		if len(store.rankingUpdates) != 1 {
			t.Fatalf("rankings persisted %d times, want 1", len(store.rankingUpdates))
		}
		// Rendered order stays the store's rating-ascending order.
		body := w.Body.String()
		if !(strings.Index(body, "B (2001)") < strings.Index(body, "C (2002)") &&
			strings.Index(body, "C (2002)") < strings.Index(body, "A (2000)")) {
			t.Error("expected movies rendered in store order")
		}
	})

	t.Run("empty store renders without assignments", func(t *testing.T) {
		store := &mockStore{}
		r := newTestEngine(t, api, store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "No movies yet") {
			t.Error("expected empty state message")
		}
	})
}

func ratingPtr(v float64) *float64 {
	return &v
}
