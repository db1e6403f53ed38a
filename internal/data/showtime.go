package data

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type showtimeRepo struct {
	data *Data
	log  *log.Helper
}

// NewShowtimeRepo creates a new showtime repository
func NewShowtimeRepo(data *Data, logger log.Logger) biz.ShowtimeRepo {
	return &showtimeRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *showtimeRepo) ListShowtimes(ctx context.Context, filter biz.ShowtimeFilter) ([]*biz.Showtime, error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/showtimes", WithQuery(showtimeValues(filter)))
	if err != nil {
		return nil, normalizeError(err, "Unable to load showtimes.")
	}
	list := decodeSlice[Showtime](r.data, res, "/showtimes")
	out := make([]*biz.Showtime, 0, len(list))
	for i := range list {
		out = append(out, showtimeToBiz(&list[i], r.data.loc))
	}
	return out, nil
}

func (r *showtimeRepo) GetShowtime(ctx context.Context, id string) (*biz.Showtime, error) {
	path := "/showtimes/" + url.PathEscape(id)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load showtime details.")
	}
	var st Showtime
	if !r.data.decode(res, &st, path) {
		return nil, nil
	}
	return showtimeToBiz(&st, r.data.loc), nil
}

// showtimeValues sends only the filters that are set. A date selects one day,
// so it becomes both startDate and endDate.
func showtimeValues(filter biz.ShowtimeFilter) url.Values {
	q := url.Values{}
	q.Set("movieId", filter.MovieID)
	q.Set("cinemaId", filter.CinemaID)
	q.Set("city", filter.City)
	if filter.Date != "" {
		date := biz.NormalizeDate(filter.Date)
		q.Set("startDate", date)
		q.Set("endDate", date)
	}
	q.Set("status", filter.Status)
	return q
}
