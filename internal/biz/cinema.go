package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
)

// DefaultNearbyRadius is used when no search radius is given.
const DefaultNearbyRadius = 1000.0

// CinemaUseCase handles cinema and room lookups
type CinemaUseCase struct {
	repo CinemaRepo
	log  *log.Helper
}

// NewCinemaUseCase creates a new CinemaUseCase instance
func NewCinemaUseCase(repo CinemaRepo, logger log.Logger) *CinemaUseCase {
	return &CinemaUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

func (uc *CinemaUseCase) ListCinemas(ctx context.Context, query PageQuery) (*Page[*Cinema], error) {
	return uc.repo.ListCinemas(ctx, query)
}

func (uc *CinemaUseCase) GetCinema(ctx context.Context, id string) (*Cinema, error) {
	return uc.repo.GetCinema(ctx, id)
}

// Nearby lists cinemas around a coordinate
func (uc *CinemaUseCase) Nearby(ctx context.Context, lat, lng, radius float64) ([]*Cinema, error) {
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	return uc.repo.ListNearby(ctx, lat, lng, radius)
}

func (uc *CinemaUseCase) Rooms(ctx context.Context, cinemaID string) ([]*Room, error) {
	return uc.repo.ListRooms(ctx, cinemaID)
}

func (uc *CinemaUseCase) ByCity(ctx context.Context, city string, query PageQuery) ([]*Cinema, error) {
	return uc.repo.ListByCity(ctx, city, query)
}

func (uc *CinemaUseCase) Search(ctx context.Context, query CinemaSearchQuery) ([]*Cinema, error) {
	return uc.repo.SearchCinemas(ctx, query)
}

// Cities lists the cities that have active cinemas
func (uc *CinemaUseCase) Cities(ctx context.Context) ([]string, error) {
	return uc.repo.ListCities(ctx)
}

func (uc *CinemaUseCase) GetRoom(ctx context.Context, id string) (*Room, error) {
	return uc.repo.GetRoom(ctx, id)
}
