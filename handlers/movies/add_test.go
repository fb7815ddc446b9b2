package movies

import (
	"flag"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"

	"github.com/filmrank-io/filmrank/services/template"
	"github.com/filmrank-io/filmrank/services/tmdb"
	"github.com/filmrank-io/filmrank/services/web"
)

func newTestApiAt(t *testing.T, serverURL string) *tmdb.Api {
	t.Helper()
	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("failed to parse server url: %v", err)
	}
	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("failed to split server host: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range tmdb.RegisterFlags(nil) {
		f.Apply(fs)
	}
	_ = fs.Set("tmdb-api-key", "test-key")
	_ = fs.Set("tmdb-api-host", host)
	_ = fs.Set("tmdb-api-port", port)
	_ = fs.Set("tmdb-api-secure", "false")
	api := tmdb.New(cli.NewContext(cli.NewApp(), fs, nil), http.DefaultClient)
	if api == nil {
		t.Fatal("expected api")
	}
	return api
}

func newTestEngine(t *testing.T, api *tmdb.Api, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	re := multitemplate.NewRenderer()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range template.RegisterFlags(nil) {
		f.Apply(fs)
	}
	_ = fs.Set("templates-path", "../../templates")
	tm := template.NewManager[*web.Context](cli.NewContext(cli.NewApp(), fs, nil), re)
	r := gin.New()
	r.HTMLRender = re
	RegisterHandler(r, tm, api, store)
	if err := tm.Init(); err != nil {
		t.Fatalf("failed to init templates: %v", err)
	}
	return r
}

func TestAddSearch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","release_date":"1999-03-30","poster_path":"/matrix.jpg","overview":"A hacker."}]}`))
	}))
	defer srv.Close()

	r := newTestEngine(t, newTestApiAt(t, srv.URL), &mockStore{})

	t.Run("empty title never calls provider", func(t *testing.T) {
		calls = 0
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/add", strings.NewReader("title="))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %v, want %v", w.Code, http.StatusOK)
		}
		if calls != 0 {
			t.Errorf("provider called %d times on validation failure", calls)
		}
		if !strings.Contains(w.Body.String(), "Title is required") {
			t.Error("expected inline validation error in response")
		}
	})

	t.Run("valid title renders selection", func(t *testing.T) {
		calls = 0
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/add", strings.NewReader("title=the+matrix"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %v, want %v", w.Code, http.StatusOK)
		}
		if calls != 1 {
			t.Errorf("provider called %d times, want 1", calls)
		}
		if !strings.Contains(w.Body.String(), "The Matrix") {
			t.Error("expected search result in response")
		}
		if !strings.Contains(w.Body.String(), "/populate?id=603") {
			t.Error("expected populate link in response")
		}
	})

	t.Run("get renders blank form", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/add", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %v, want %v", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "Movie Title") {
			t.Error("expected title form in response")
		}
	})
}
