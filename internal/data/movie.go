package data

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type movieRepo struct {
	data *Data
	log  *log.Helper
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(data *Data, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *movieRepo) ListMovies(ctx context.Context, query biz.PageQuery) ([]*biz.Movie, error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/movies", WithQuery(pageValues(query)))
	if err != nil {
		return nil, normalizeError(err, "Unable to load movies.")
	}
	page := decodePage[Movie](r.data, res, "/movies")
	return moviesToBiz(page.Content, r.data.loc), nil
}

// GetMovie returns nil when the API answers without a movie.
func (r *movieRepo) GetMovie(ctx context.Context, id string) (*biz.Movie, error) {
	path := "/movies/" + url.PathEscape(id)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load movie details.")
	}

	var m Movie
	if !r.data.decode(res, &m, path) || (m.ID == "" && m.Title == "") {
		r.log.Debugf("no movie in response for %s", id)
		return nil, nil
	}
	return movieToBiz(&m, r.data.loc), nil
}

func (r *movieRepo) ListNowShowing(ctx context.Context, query biz.PageQuery) (*biz.Page[*biz.Movie], error) {
	return r.listPage(ctx, "/movies/now-showing", query, "Unable to load now-showing movies.")
}

func (r *movieRepo) ListComingSoon(ctx context.Context, query biz.PageQuery) (*biz.Page[*biz.Movie], error) {
	return r.listPage(ctx, "/movies/coming-soon", query, "Unable to load coming-soon movies.")
}

func (r *movieRepo) listPage(ctx context.Context, path string, query biz.PageQuery, msg string) (*biz.Page[*biz.Movie], error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path, WithQuery(pageValues(query)))
	if err != nil {
		return nil, normalizeError(err, msg)
	}
	page := decodePage[Movie](r.data, res, path)
	return &biz.Page[*biz.Movie]{
		Items:         moviesToBiz(page.Content, r.data.loc),
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Number:        page.Number,
		Size:          page.Size,
	}, nil
}

func (r *movieRepo) SearchMovies(ctx context.Context, query biz.MovieSearchQuery) ([]*biz.Movie, error) {
	q := url.Values{}
	q.Set("q", query.Q)
	q.Set("genre", query.Genre)
	q.Set("status", query.Status)

	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/movies/search", WithQuery(q))
	if err != nil {
		return nil, normalizeError(err, "Unable to search movies.")
	}
	return moviesToBiz(decodeSlice[Movie](r.data, res, "/movies/search"), r.data.loc), nil
}

// ListGenres is served from the catalog cache when Redis is configured.
func (r *movieRepo) ListGenres(ctx context.Context) ([]string, error) {
	return r.data.cachedStrings(ctx, "genres", func(ctx context.Context) ([]string, error) {
		res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/movies/genres")
		if err != nil {
			return nil, normalizeError(err, "Unable to load movie genres.")
		}
		genres := decodeSlice[string](r.data, res, "/movies/genres")
		if genres == nil {
			genres = []string{}
		}
		return genres, nil
	})
}

func (r *movieRepo) ListLatest(ctx context.Context, limit int) ([]*biz.Movie, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/movies/latest", WithQuery(q))
	if err != nil {
		return nil, normalizeError(err, "Unable to load latest movies.")
	}
	return moviesToBiz(decodeSlice[Movie](r.data, res, "/movies/latest"), r.data.loc), nil
}

// pageValues encodes paging parameters, leaving unset ones out.
func pageValues(query biz.PageQuery) url.Values {
	q := url.Values{}
	if query.Page != nil {
		q.Set("page", strconv.Itoa(*query.Page))
	}
	if query.Size != nil {
		q.Set("size", strconv.Itoa(*query.Size))
	}
	q.Set("status", query.Status)
	q.Set("sort", query.Sort)
	return q
}
