package service

import (
	"context"
	"strconv"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// MovieService implements the MovieService API
type MovieService struct {
	movieUC  *biz.MovieUseCase
	detailUC *biz.MovieDetailUseCase
	log      *log.Helper
}

// NewMovieService creates a new MovieService
func NewMovieService(movieUC *biz.MovieUseCase, detailUC *biz.MovieDetailUseCase, logger log.Logger) *MovieService {
	return &MovieService{
		movieUC:  movieUC,
		detailUC: detailUC,
		log:      log.NewHelper(logger),
	}
}

func (s *MovieService) ListMovies(ctx context.Context, req *v1.PageRequest) (*v1.ListMoviesReply, error) {
	query, err := parsePageQuery(req.Page, req.Size, req.Status, req.Sort)
	if err != nil {
		return nil, err
	}
	movies, err := s.movieUC.ListMovies(ctx, query)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListMoviesReply{Items: toMovies(movies)}, nil
}

func (s *MovieService) ListNowShowing(ctx context.Context, req *v1.PageRequest) (*v1.MoviePageReply, error) {
	query, err := parsePageQuery(req.Page, req.Size, req.Status, req.Sort)
	if err != nil {
		return nil, err
	}
	page, err := s.movieUC.NowShowing(ctx, query)
	if err != nil {
		return nil, toServiceError(err)
	}
	return toMoviePage(page), nil
}

func (s *MovieService) ListComingSoon(ctx context.Context, req *v1.PageRequest) (*v1.MoviePageReply, error) {
	query, err := parsePageQuery(req.Page, req.Size, req.Status, req.Sort)
	if err != nil {
		return nil, err
	}
	page, err := s.movieUC.ComingSoon(ctx, query)
	if err != nil {
		return nil, toServiceError(err)
	}
	return toMoviePage(page), nil
}

func (s *MovieService) SearchMovies(ctx context.Context, req *v1.SearchMoviesRequest) (*v1.ListMoviesReply, error) {
	movies, err := s.movieUC.Search(ctx, biz.MovieSearchQuery{
		Q:      req.Q,
		Genre:  req.Genre,
		Status: req.Status,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListMoviesReply{Items: toMovies(movies)}, nil
}

func (s *MovieService) ListGenres(ctx context.Context, _ *v1.ListGenresRequest) (*v1.ListGenresReply, error) {
	genres, err := s.movieUC.Genres(ctx)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListGenresReply{Genres: nonNil(genres)}, nil
}

func (s *MovieService) ListLatestMovies(ctx context.Context, req *v1.ListLatestMoviesRequest) (*v1.ListMoviesReply, error) {
	limit := 0
	if req.Limit != "" {
		n, err := strconv.Atoi(req.Limit)
		if err != nil || n < 0 {
			return nil, v1.ErrorInvalidArgument("invalid limit %q", req.Limit)
		}
		limit = n
	}
	movies, err := s.movieUC.Latest(ctx, limit)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListMoviesReply{Items: toMovies(movies)}, nil
}

// GetMovie returns one movie with its audience label
func (s *MovieService) GetMovie(ctx context.Context, req *v1.GetMovieRequest) (*v1.Movie, error) {
	movie, err := s.movieUC.GetMovie(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return toMovie(movie), nil
}

// GetMovieDetail runs the staged movie detail load and returns the showtimes
// of the selected day grouped by cinema.
func (s *MovieService) GetMovieDetail(ctx context.Context, req *v1.GetMovieDetailRequest) (*v1.MovieDetailReply, error) {
	view, err := s.detailUC.View(ctx, req.Id, biz.MovieDetailHints{
		City:   req.City,
		Cinema: req.Cinema,
		Date:   req.Date,
	})
	if err != nil {
		return nil, toServiceError(err)
	}

	state := view.State()
	groups := view.Groups()
	reply := &v1.MovieDetailReply{
		Movie:              toMovie(state.Movie),
		Cities:             nonNil(state.Cities),
		Theaters:           toCinemas(state.TheatersInCity),
		Dates:              nonNil(state.Dates),
		SelectedCity:       state.SelectedCity,
		SelectedCinema:     state.SelectedCinema,
		SelectedCinemaName: view.SelectedCinemaName(),
		SelectedDate:       state.SelectedDate,
		Showtimes:          make([]*v1.CinemaShowtimes, 0, len(groups)),
	}
	for _, g := range groups {
		reply.Showtimes = append(reply.Showtimes, &v1.CinemaShowtimes{
			CinemaId:      g.CinemaID,
			CinemaName:    g.CinemaName,
			CinemaAddress: g.CinemaAddress,
			Showtimes:     toShowtimes(g.Showtimes),
		})
	}
	return reply, nil
}

func toMoviePage(page *biz.Page[*biz.Movie]) *v1.MoviePageReply {
	return &v1.MoviePageReply{
		Items:         toMovies(page.Items),
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Number:        page.Number,
		Size:          page.Size,
	}
}
