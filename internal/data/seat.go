package data

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type seatRepo struct {
	data *Data
	log  *log.Helper
}

// NewSeatRepo creates a new seat repository
func NewSeatRepo(data *Data, logger log.Logger) biz.SeatRepo {
	return &seatRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *seatRepo) ListSeats(ctx context.Context, showtimeID string) ([]*biz.Seat, error) {
	path := "/seats/showtime/" + url.PathEscape(showtimeID)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load the seat map.")
	}
	var m SeatMap
	if !r.data.decode(res, &m, path) {
		return []*biz.Seat{}, nil
	}
	return seatsToBiz(&m), nil
}

func (r *seatRepo) Hold(ctx context.Context, hold biz.SeatHold) error {
	payload := SeatHoldPayload{
		ShowtimeID:    hold.ShowtimeID,
		SeatIDs:       hold.SeatIDs,
		CustomerPhone: hold.CustomerPhone,
	}
	return r.send(ctx, http.MethodPost, "/seats/hold", payload, "Unable to hold seats. Please try again.")
}

func (r *seatRepo) Release(ctx context.Context, sel biz.SeatSelection) error {
	payload := SeatHoldPayload{ShowtimeID: sel.ShowtimeID, SeatIDs: sel.SeatIDs}
	return r.send(ctx, http.MethodDelete, "/seats/release", payload, "Unable to release seats.")
}

func (r *seatRepo) ExtendHold(ctx context.Context, sel biz.SeatSelection) error {
	payload := SeatHoldPayload{ShowtimeID: sel.ShowtimeID, SeatIDs: sel.SeatIDs}
	return r.send(ctx, http.MethodPost, "/seats/extend-hold", payload, "Unable to extend the seat hold.")
}

func (r *seatRepo) send(ctx context.Context, method, path string, payload SeatHoldPayload, msg string) error {
	if err := r.data.validate.Struct(payload); err != nil {
		return normalizeError(err, msg)
	}
	if _, err := r.data.gw.Invoke(ctx, method, path, WithBody(payload)); err != nil {
		return normalizeError(err, msg)
	}
	return nil
}
