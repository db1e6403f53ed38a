package data

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowtimeValues(t *testing.T) {
	q := showtimeValues(biz.ShowtimeFilter{MovieID: "m1", City: "Hanoi", Date: "2024-05-01T10:00:00Z"})
	assert.Equal(t, "city=Hanoi&endDate=2024-05-01&movieId=m1&startDate=2024-05-01", encodeQuery(q))

	assert.Equal(t, "", encodeQuery(showtimeValues(biz.ShowtimeFilter{})))
}

func TestShowtimeRepo_ListShowtimes(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/showtimes", r.URL.Path)
		assert.Equal(t, "c9", r.URL.Query().Get("cinemaId"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("endDate"))
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"id":1,"movieId":"m1","cinemaId":"c9","cinemaName":"CGV Vincom","cinemaAddress":"1 Main St","showDateTime":"2024-05-01T19:30:00"}
		]}`)
	})
	repo := NewShowtimeRepo(d, log.DefaultLogger)

	list, err := repo.ListShowtimes(context.Background(), biz.ShowtimeFilter{MovieID: "m1", CinemaID: "c9", City: "Hanoi", Date: "2024-05-01"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "CGV Vincom", list[0].CinemaName)
	assert.True(t, time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC).Equal(list[0].StartTime))
}

func TestMovieRepo_GetMovieNullData(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"message":"not here","data":null}`)
	})
	movie, err := NewMovieRepo(d, log.DefaultLogger).GetMovie(context.Background(), "m1")
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieRepo_ListsDefaultToEmpty(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":null}`)
	})
	repo := NewMovieRepo(d, log.DefaultLogger)

	movies, err := repo.ListMovies(context.Background(), biz.PageQuery{})
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	page, err := repo.ListNowShowing(context.Background(), biz.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestMovieRepo_NowShowingPage(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		_, _ = io.WriteString(w, `{"success":true,"data":{"content":[{"id":"m1","title":"Dune"}],"pageable":{},"totalPages":3,"totalElements":41,"number":1,"size":20}}`)
	})
	page, size := 1, 20
	result, err := NewMovieRepo(d, log.DefaultLogger).ListNowShowing(context.Background(), biz.PageQuery{Page: &page, Size: &size})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Dune", result.Items[0].Title)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(41), result.TotalElements)
}

func TestCinemaRepo_ByCityEscapesPath(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cinemas/by-city/Ho%20Chi%20Minh", r.URL.EscapedPath())
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := NewCinemaRepo(d, log.DefaultLogger).ListByCity(context.Background(), "Ho Chi Minh", biz.PageQuery{})
	apiErr, ok := biz.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Unable to load cinemas in Ho Chi Minh.", apiErr.Message)
}

func TestCinemaRepo_SearchAcceptsArrayOrPage(t *testing.T) {
	bodies := []string{
		`{"success":true,"data":[{"id":"c1","name":"Lotte"}]}`,
		`{"success":true,"data":{"content":[{"id":"c1","name":"Lotte"}]}}`,
	}
	for _, body := range bodies {
		d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})
		cinemas, err := NewCinemaRepo(d, log.DefaultLogger).SearchCinemas(context.Background(), biz.CinemaSearchQuery{Q: "lotte"})
		require.NoError(t, err)
		require.Len(t, cinemas, 1)
		assert.Equal(t, "Lotte", cinemas[0].Name)
	}
}
