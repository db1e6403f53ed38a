package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

const defaultLatestLimit = 10

// MovieUseCase handles movie browsing
type MovieUseCase struct {
	repo MovieRepo
	log  *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(repo MovieRepo, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// GetMovie retrieves a movie, failing with ErrMovieNotFound when the API has no record
func (uc *MovieUseCase) GetMovie(ctx context.Context, id string) (*Movie, error) {
	movie, err := uc.repo.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	}
	return movie, nil
}

// ListMovies retrieves one page of movies as a flat list
func (uc *MovieUseCase) ListMovies(ctx context.Context, query PageQuery) ([]*Movie, error) {
	return uc.repo.ListMovies(ctx, query)
}

// NowShowing retrieves the paginated now-showing movies
func (uc *MovieUseCase) NowShowing(ctx context.Context, query PageQuery) (*Page[*Movie], error) {
	return uc.repo.ListNowShowing(ctx, query)
}

// ComingSoon retrieves the paginated coming-soon movies
func (uc *MovieUseCase) ComingSoon(ctx context.Context, query PageQuery) (*Page[*Movie], error) {
	return uc.repo.ListComingSoon(ctx, query)
}

// Search finds movies by keyword, genre and status
func (uc *MovieUseCase) Search(ctx context.Context, query MovieSearchQuery) ([]*Movie, error) {
	return uc.repo.SearchMovies(ctx, query)
}

// Genres lists every known genre
func (uc *MovieUseCase) Genres(ctx context.Context) ([]string, error) {
	return uc.repo.ListGenres(ctx)
}

// Latest lists the most recently released movies. A non-positive limit means 10.
func (uc *MovieUseCase) Latest(ctx context.Context, limit int) ([]*Movie, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	return uc.repo.ListLatest(ctx, limit)
}
