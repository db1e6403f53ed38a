package data

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

const defaultNearbyRadius = 1000.0

type cinemaRepo struct {
	data *Data
	log  *log.Helper
}

// NewCinemaRepo creates a new cinema repository
func NewCinemaRepo(data *Data, logger log.Logger) biz.CinemaRepo {
	return &cinemaRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *cinemaRepo) ListCinemas(ctx context.Context, query biz.PageQuery) (*biz.Page[*biz.Cinema], error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/cinemas", WithQuery(pageValues(query)))
	if err != nil {
		return nil, normalizeError(err, "Unable to load cinemas.")
	}
	page := decodePage[Cinema](r.data, res, "/cinemas")
	return &biz.Page[*biz.Cinema]{
		Items:         cinemasToBiz(page.Content),
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Number:        page.Number,
		Size:          page.Size,
	}, nil
}

func (r *cinemaRepo) GetCinema(ctx context.Context, id string) (*biz.Cinema, error) {
	path := "/cinemas/" + url.PathEscape(id)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load cinema details.")
	}
	var c Cinema
	if !r.data.decode(res, &c, path) {
		return nil, nil
	}
	return cinemaToBiz(&c), nil
}

func (r *cinemaRepo) ListNearby(ctx context.Context, lat, lng, radius float64) ([]*biz.Cinema, error) {
	if radius <= 0 {
		radius = defaultNearbyRadius
	}
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))

	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/cinemas/nearby", WithQuery(q))
	if err != nil {
		return nil, normalizeError(err, "Unable to load nearby cinemas.")
	}
	return cinemasToBiz(decodeSlice[Cinema](r.data, res, "/cinemas/nearby")), nil
}

func (r *cinemaRepo) ListRooms(ctx context.Context, cinemaID string) ([]*biz.Room, error) {
	path := "/cinemas/" + url.PathEscape(cinemaID) + "/rooms"
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load cinema rooms.")
	}
	rooms := decodeSlice[Room](r.data, res, path)
	out := make([]*biz.Room, 0, len(rooms))
	for i := range rooms {
		out = append(out, roomToBiz(&rooms[i]))
	}
	return out, nil
}

// ListByCity returns the content of the first page of cinemas in city.
func (r *cinemaRepo) ListByCity(ctx context.Context, city string, query biz.PageQuery) ([]*biz.Cinema, error) {
	path := "/cinemas/by-city/" + url.PathEscape(city)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path, WithQuery(pageValues(query)))
	if err != nil {
		return nil, normalizeError(err, fmt.Sprintf("Unable to load cinemas in %s.", city))
	}
	page := decodePage[Cinema](r.data, res, path)
	return cinemasToBiz(page.Content), nil
}

func (r *cinemaRepo) SearchCinemas(ctx context.Context, query biz.CinemaSearchQuery) ([]*biz.Cinema, error) {
	q := url.Values{}
	q.Set("q", query.Q)
	q.Set("city", query.City)

	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/cinemas/search", WithQuery(q))
	if err != nil {
		return nil, normalizeError(err, "Unable to search cinemas.")
	}
	return cinemasToBiz(decodeContent[Cinema](r.data, res, "/cinemas/search")), nil
}

// ListCities is served from the catalog cache when Redis is configured.
func (r *cinemaRepo) ListCities(ctx context.Context) ([]string, error) {
	return r.data.cachedStrings(ctx, "cities", func(ctx context.Context) ([]string, error) {
		res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/cinemas/cities")
		if err != nil {
			return nil, normalizeError(err, "Unable to load cities.")
		}
		cities := decodeSlice[string](r.data, res, "/cinemas/cities")
		if cities == nil {
			cities = []string{}
		}
		return cities, nil
	})
}

func (r *cinemaRepo) GetRoom(ctx context.Context, id string) (*biz.Room, error) {
	path := "/rooms/" + url.PathEscape(id)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load room details.")
	}
	var room Room
	if !r.data.decode(res, &room, path) {
		return nil, nil
	}
	return roomToBiz(&room), nil
}
