package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/biz"
	"storefront/internal/conf"
	"storefront/internal/data"
	"storefront/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiReply struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Status    int             `json:"status"`
	Reason    string          `json:"reason"`
	Data      json.RawMessage `json:"data"`
	Details   json.RawMessage `json:"details"`
	Timestamp string          `json:"timestamp"`
}

func newStorefront(t *testing.T, baseURL string) *httptest.Server {
	t.Helper()
	logger := log.NewStdLogger(io.Discard)
	sf := &conf.Storefront{TimeZone: "UTC"}

	gw := data.NewGateway(&conf.Gateway{BaseUrl: baseURL}, logger)
	d, cleanup, err := data.NewData(nil, sf, gw, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	movies := data.NewMovieRepo(d, logger)
	cinemas := data.NewCinemaRepo(d, logger)
	showtimes := data.NewShowtimeRepo(d, logger)

	srv := NewHTTPServer(&conf.Server{},
		service.NewMovieService(
			biz.NewMovieUseCase(movies, logger),
			biz.NewMovieDetailUseCase(movies, cinemas, showtimes, sf, logger),
			logger,
		),
		service.NewCinemaService(biz.NewCinemaUseCase(cinemas, logger)),
		service.NewBookingService(biz.NewBookingUseCase(
			showtimes,
			data.NewSeatRepo(d, logger),
			data.NewBookingRepo(d, logger),
			data.NewPaymentRepo(d, logger),
			data.NewConcessionRepo(d, logger),
			sf,
			logger,
		), logger),
		service.NewHealthService(biz.NewHealthUseCase(data.NewHealthRepo(d))),
		logger,
	)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func newUpstream(t *testing.T, mux *http.ServeMux) string {
	t.Helper()
	api := httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api.URL
}

func doRequest(t *testing.T, method, target, body string, header http.Header) (*http.Response, apiReply) {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var reply apiReply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	return resp, reply
}

func TestHealthEnvelopeAndRequestID(t *testing.T) {
	var seen string
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(data.RequestIDHeader)
		_, _ = io.WriteString(w, `{"success":true,"data":{"status":"UP","database":"UP"}}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.True(t, reply.Success)
	assert.Equal(t, "OK", reply.Message)
	assert.JSONEq(t, `{"status":"UP","database":"UP"}`, string(reply.Data))
	_, err := time.Parse(time.RFC3339, reply.Timestamp)
	assert.NoError(t, err)

	id := resp.Header.Get(data.RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, seen)

	resp, _ = doRequest(t, http.MethodGet, ts.URL+"/v1/health", "", http.Header{data.RequestIDHeader: {"trace-42"}})
	assert.Equal(t, "trace-42", resp.Header.Get(data.RequestIDHeader))
	assert.Equal(t, "trace-42", seen)
}

func TestMovieNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/movies/m404", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":null}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/movies/m404", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, reply.Success)
	assert.Equal(t, http.StatusNotFound, reply.Status)
	assert.Equal(t, "MOVIE_NOT_FOUND", reply.Reason)
}

func TestConcessionNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/concessions/p404", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":null}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/concessions/p404", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", reply.Reason)
}

func TestUpstreamRejectionKeepsStatusAndDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"success":false,"message":"Seat A1 is no longer available","data":{"seats":["A1"]}}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodPost, ts.URL+"/v1/bookings", `{"showtimeId":"st-1","seats":["A1"]}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_REJECTED", reply.Reason)
	assert.Equal(t, "Seat A1 is no longer available", reply.Message)
	assert.JSONEq(t, `{"seats":["A1"]}`, string(reply.Details))
}

func TestCreateBookingAnswersCreated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":3,"confirmationCode":"ABC123","showtimeId":"st-1","status":"PENDING","totalAmount":90000,"seats":["A1"]}}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodPost, ts.URL+"/v1/bookings", `{"showtimeId":"st-1","seats":["A1"]}`, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, reply.Success)

	var booking map[string]interface{}
	require.NoError(t, json.Unmarshal(reply.Data, &booking))
	assert.Equal(t, "ABC123", booking["confirmationCode"])
	assert.Equal(t, "3", booking["id"])
}

func TestInvalidBookingIsRejectedLocally(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call %s", r.URL.Path)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodPost, ts.URL+"/v1/bookings", `{"showtimeId":"st-1","seats":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", reply.Reason)
}

func TestUpstreamUnreachable(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	baseURL := api.URL
	api.Close()
	ts := newStorefront(t, baseURL)

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/cinemas/cities", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_UNREACHABLE", reply.Reason)
	assert.Equal(t, "Cannot connect to the server. Please check your network connection.", reply.Message)
}

func TestInvalidPageArgument(t *testing.T) {
	ts := newStorefront(t, newUpstream(t, http.NewServeMux()))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/movies/now-showing?page=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ARGUMENT", reply.Reason)
}

func TestMovieDetail(t *testing.T) {
	today := time.Now().UTC().Format(biz.DateLayout)

	mux := http.NewServeMux()
	mux.HandleFunc("/movies/m1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"m1","title":"Dune: Part Two","ageRating":"T13"}}`)
	})
	mux.HandleFunc("/cinemas/cities", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":["Hanoi","Da Nang"]}`)
	})
	mux.HandleFunc("/cinemas/by-city/Hanoi", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"content":[{"id":"c1","name":"CGV Vincom"},{"id":"c2","name":"Lotte Tay Ho"}]}}`)
	})
	mux.HandleFunc("/showtimes", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "m1", q.Get("movieId"))
		assert.Equal(t, "Hanoi", q.Get("city"))
		assert.Equal(t, today, q.Get("startDate"))
		assert.Equal(t, today, q.Get("endDate"))
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"id":"s1","cinemaId":"c2","cinemaName":"Lotte Tay Ho","showDateTime":"`+today+`T21:00:00"},
			{"id":"s2","cinemaId":"c1","cinemaName":"CGV Vincom","showDateTime":"`+today+`T18:00:00"},
			{"id":"s3","cinemaId":"c2","cinemaName":"Lotte Tay Ho","showDateTime":"`+today+`T10:00:00"}
		]}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/movies/m1/detail?city=Unknown&cinema=c9", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Movie struct {
			Title                string `json:"title"`
			AgeRatingDescription string `json:"ageRatingDescription"`
		} `json:"movie"`
		Cities         []string `json:"cities"`
		Dates          []string `json:"dates"`
		SelectedCity   string   `json:"selectedCity"`
		SelectedCinema string   `json:"selectedCinema"`
		SelectedDate   string   `json:"selectedDate"`
		Showtimes      []struct {
			CinemaID  string `json:"cinemaId"`
			Showtimes []struct {
				ID string `json:"id"`
			} `json:"showtimes"`
		} `json:"showtimes"`
	}
	require.NoError(t, json.Unmarshal(reply.Data, &detail))

	assert.Equal(t, "Dune: Part Two", detail.Movie.Title)
	assert.Equal(t, biz.Audience13, detail.Movie.AgeRatingDescription)
	assert.Equal(t, []string{"Hanoi", "Da Nang"}, detail.Cities)
	assert.Len(t, detail.Dates, 5)
	assert.Equal(t, "Hanoi", detail.SelectedCity)
	assert.Equal(t, "", detail.SelectedCinema)
	assert.Equal(t, today, detail.SelectedDate)

	require.Len(t, detail.Showtimes, 2)
	assert.Equal(t, "c2", detail.Showtimes[0].CinemaID)
	require.Len(t, detail.Showtimes[0].Showtimes, 2)
	assert.Equal(t, "s3", detail.Showtimes[0].Showtimes[0].ID)
	assert.Equal(t, "s1", detail.Showtimes[0].Showtimes[1].ID)
	assert.Equal(t, "c1", detail.Showtimes[1].CinemaID)
}

func TestMovieDetailNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/movies/m1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/cinemas/cities", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":["Hanoi"]}`)
	})
	ts := newStorefront(t, newUpstream(t, mux))

	resp, reply := doRequest(t, http.MethodGet, ts.URL+"/v1/movies/m1/detail", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "MOVIE_NOT_FOUND", reply.Reason)
}
