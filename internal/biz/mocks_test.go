package biz

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) ListMovies(ctx context.Context, query PageQuery) ([]*Movie, error) {
	args := m.Called(ctx, query)
	movies, _ := args.Get(0).([]*Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepo) GetMovie(ctx context.Context, id string) (*Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepo) ListNowShowing(ctx context.Context, query PageQuery) (*Page[*Movie], error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*Page[*Movie])
	return page, args.Error(1)
}

func (m *mockMovieRepo) ListComingSoon(ctx context.Context, query PageQuery) (*Page[*Movie], error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*Page[*Movie])
	return page, args.Error(1)
}

func (m *mockMovieRepo) SearchMovies(ctx context.Context, query MovieSearchQuery) ([]*Movie, error) {
	args := m.Called(ctx, query)
	movies, _ := args.Get(0).([]*Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepo) ListGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]string)
	return genres, args.Error(1)
}

func (m *mockMovieRepo) ListLatest(ctx context.Context, limit int) ([]*Movie, error) {
	args := m.Called(ctx, limit)
	movies, _ := args.Get(0).([]*Movie)
	return movies, args.Error(1)
}

type mockCinemaRepo struct {
	mock.Mock
}

func (m *mockCinemaRepo) ListCinemas(ctx context.Context, query PageQuery) (*Page[*Cinema], error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*Page[*Cinema])
	return page, args.Error(1)
}

func (m *mockCinemaRepo) GetCinema(ctx context.Context, id string) (*Cinema, error) {
	args := m.Called(ctx, id)
	cinema, _ := args.Get(0).(*Cinema)
	return cinema, args.Error(1)
}

func (m *mockCinemaRepo) ListNearby(ctx context.Context, lat, lng, radius float64) ([]*Cinema, error) {
	args := m.Called(ctx, lat, lng, radius)
	cinemas, _ := args.Get(0).([]*Cinema)
	return cinemas, args.Error(1)
}

func (m *mockCinemaRepo) ListRooms(ctx context.Context, cinemaID string) ([]*Room, error) {
	args := m.Called(ctx, cinemaID)
	rooms, _ := args.Get(0).([]*Room)
	return rooms, args.Error(1)
}

func (m *mockCinemaRepo) ListByCity(ctx context.Context, city string, query PageQuery) ([]*Cinema, error) {
	args := m.Called(ctx, city, query)
	cinemas, _ := args.Get(0).([]*Cinema)
	return cinemas, args.Error(1)
}

func (m *mockCinemaRepo) SearchCinemas(ctx context.Context, query CinemaSearchQuery) ([]*Cinema, error) {
	args := m.Called(ctx, query)
	cinemas, _ := args.Get(0).([]*Cinema)
	return cinemas, args.Error(1)
}

func (m *mockCinemaRepo) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]string)
	return cities, args.Error(1)
}

func (m *mockCinemaRepo) GetRoom(ctx context.Context, id string) (*Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*Room)
	return room, args.Error(1)
}

type mockShowtimeRepo struct {
	mock.Mock
}

func (m *mockShowtimeRepo) ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]*Showtime, error) {
	args := m.Called(ctx, filter)
	showtimes, _ := args.Get(0).([]*Showtime)
	return showtimes, args.Error(1)
}

func (m *mockShowtimeRepo) GetShowtime(ctx context.Context, id string) (*Showtime, error) {
	args := m.Called(ctx, id)
	showtime, _ := args.Get(0).(*Showtime)
	return showtime, args.Error(1)
}
