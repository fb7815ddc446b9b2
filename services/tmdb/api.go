package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	tmdbApiKeyFlag    = "tmdb-api-key"
	tmdbApiSecureFlag = "tmdb-api-secure"
	tmdbApiHostFlag   = "tmdb-api-host"
	tmdbApiPortFlag   = "tmdb-api-port"
	tmdbImgHostFlag   = "tmdb-img-host"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   tmdbApiHostFlag,
			Usage:  "tmdb api host",
			EnvVar: "TMDB_API_HOST",
			Value:  "api.themoviedb.org",
		},
		cli.IntFlag{
			Name:   tmdbApiPortFlag,
			Usage:  "tmdb api port",
			EnvVar: "TMDB_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   tmdbApiSecureFlag,
			Usage:  "tmdb api secure (https)",
			EnvVar: "TMDB_API_SECURE",
		},
		cli.StringFlag{
			Name:   tmdbApiKeyFlag,
			Usage:  "tmdb api read access token",
			Value:  "",
			EnvVar: "TMDB_API_KEY",
		},
		cli.StringFlag{
			Name:   tmdbImgHostFlag,
			Usage:  "tmdb poster image prefix",
			Value:  "https://image.tmdb.org/t/p/w500",
			EnvVar: "TMDB_IMG_HOST",
		},
	)
}

// MovieResult is one candidate from the search endpoint.
type MovieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
}

type searchResponse struct {
	Page    int           `json:"page"`
	Results []MovieResult `json:"results"`
}

// MovieDetails is the detail-by-id response.
type MovieDetails struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
}

type Api struct {
	url            string
	imgURL         string
	cl             *http.Client
	prepareRequest func(r *http.Request) (*http.Request, error)
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(tmdbApiHostFlag)
	port := c.Int(tmdbApiPortFlag)
	secure := c.BoolT(tmdbApiSecureFlag)
	key := c.String(tmdbApiKeyFlag)
	imgURL := c.String(tmdbImgHostFlag)
	if key == "" {
		return nil
	}
	protocol := "http"
	if secure {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		r.Header.Set("Accept", "application/json")
		r.Header.Set("Authorization", "Bearer "+key)
		return r, nil
	}
	log.Infof("tmdb api endpoint %v", u)
	return &Api{
		url:            u,
		imgURL:         imgURL,
		cl:             cl,
		prepareRequest: prepareRequest,
	}
}

// SearchMovies queries the search-by-title endpoint and returns the
// raw candidate list.
func (api *Api) SearchMovies(ctx context.Context, query string) ([]MovieResult, error) {
	reqURL := fmt.Sprintf("%v/3/search/movie", api.url)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	q.Set("query", query)
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("page", "1")
	req.URL.RawQuery = q.Encode()

	var res searchResponse
	if err := api.do(req, &res); err != nil {
		return nil, err
	}

	return res.Results, nil
}

// GetMovie queries the detail-by-id endpoint. The id is passed through
// unvalidated; an unknown id surfaces as a non-2xx provider error.
func (api *Api) GetMovie(ctx context.Context, id string) (*MovieDetails, error) {
	reqURL := fmt.Sprintf("%v/3/movie/%v", api.url, id)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	q.Set("language", "en-US")
	req.URL.RawQuery = q.Encode()

	var res MovieDetails
	if err := api.do(req, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// MakeImgURL joins the fixed image-host prefix with the poster path
// fragment exactly as the provider returned it.
func (api *Api) MakeImgURL(posterPath string) string {
	return api.imgURL + posterPath
}

func (api *Api) do(req *http.Request, res any) error {
	req, err := api.prepareRequest(req)
	if err != nil {
		return errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("tmdb error: status %v", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
