package service

import (
	"context"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/biz"
)

// CinemaService implements the CinemaService API
type CinemaService struct {
	uc *biz.CinemaUseCase
}

// NewCinemaService creates a new CinemaService
func NewCinemaService(uc *biz.CinemaUseCase) *CinemaService {
	return &CinemaService{uc: uc}
}

func (s *CinemaService) ListCinemas(ctx context.Context, req *v1.PageRequest) (*v1.CinemaPageReply, error) {
	query, err := parsePageQuery(req.Page, req.Size, req.Status, req.Sort)
	if err != nil {
		return nil, err
	}
	page, err := s.uc.ListCinemas(ctx, query)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.CinemaPageReply{
		Items:         toCinemas(page.Items),
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Number:        page.Number,
		Size:          page.Size,
	}, nil
}

func (s *CinemaService) GetCinema(ctx context.Context, req *v1.GetCinemaRequest) (*v1.Cinema, error) {
	cinema, err := s.uc.GetCinema(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	if cinema == nil {
		return nil, v1.ErrorNotFound("cinema %s not found", req.Id)
	}
	return toCinema(cinema), nil
}

func (s *CinemaService) ListNearbyCinemas(ctx context.Context, req *v1.NearbyCinemasRequest) (*v1.ListCinemasReply, error) {
	lat, err := parseFloat("lat", req.Lat)
	if err != nil {
		return nil, err
	}
	lng, err := parseFloat("lng", req.Lng)
	if err != nil {
		return nil, err
	}
	var radius float64
	if req.Radius != "" {
		if radius, err = parseFloat("radius", req.Radius); err != nil {
			return nil, err
		}
	}
	cinemas, err := s.uc.Nearby(ctx, lat, lng, radius)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListCinemasReply{Items: toCinemas(cinemas)}, nil
}

func (s *CinemaService) ListRooms(ctx context.Context, req *v1.ListRoomsRequest) (*v1.ListRoomsReply, error) {
	rooms, err := s.uc.Rooms(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	reply := &v1.ListRoomsReply{Rooms: make([]*v1.Room, 0, len(rooms))}
	for _, r := range rooms {
		reply.Rooms = append(reply.Rooms, toRoom(r))
	}
	return reply, nil
}

func (s *CinemaService) ListCinemasByCity(ctx context.Context, req *v1.ListCinemasByCityRequest) (*v1.ListCinemasReply, error) {
	query, err := parsePageQuery(req.Page, req.Size, req.Status, req.Sort)
	if err != nil {
		return nil, err
	}
	cinemas, err := s.uc.ByCity(ctx, req.City, query)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListCinemasReply{Items: toCinemas(cinemas)}, nil
}

func (s *CinemaService) SearchCinemas(ctx context.Context, req *v1.SearchCinemasRequest) (*v1.ListCinemasReply, error) {
	cinemas, err := s.uc.Search(ctx, biz.CinemaSearchQuery{Q: req.Q, City: req.City})
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListCinemasReply{Items: toCinemas(cinemas)}, nil
}

func (s *CinemaService) ListCities(ctx context.Context, _ *v1.ListCitiesRequest) (*v1.ListCitiesReply, error) {
	cities, err := s.uc.Cities(ctx)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListCitiesReply{Cities: nonNil(cities)}, nil
}

func (s *CinemaService) GetRoom(ctx context.Context, req *v1.GetRoomRequest) (*v1.Room, error) {
	room, err := s.uc.GetRoom(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	if room == nil {
		return nil, v1.ErrorNotFound("room %s not found", req.Id)
	}
	return toRoom(room), nil
}
