package data

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// Defaults sent for a booking made without contact details or ticket breakdown
const (
	guestFullName = "Guest User"
	guestPhone    = "0000000000"
	guestEmail    = "guest@example.com"

	adultTicketType  = "Người lớn"
	adultTicketPrice = 90000

	msgCreateBooking = "Unable to create the booking."
	msgLookupBooking = "Unable to look up the booking."
)

var errNilBooking = errors.New("booking request is required")

type bookingRepo struct {
	data *Data
	log  *log.Helper
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(data *Data, logger log.Logger) biz.BookingRepo {
	return &bookingRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *bookingRepo) CreateBooking(ctx context.Context, req *biz.BookingRequest) (*biz.Booking, error) {
	if req == nil {
		return nil, normalizeError(errNilBooking, msgCreateBooking)
	}
	payload := newBookingPayload(req)
	if err := r.data.validate.Struct(payload); err != nil {
		return nil, normalizeError(err, msgCreateBooking)
	}

	res, err := r.data.gw.Invoke(ctx, http.MethodPost, "/bookings", WithBody(payload))
	if err != nil {
		return nil, normalizeError(err, msgCreateBooking)
	}
	var b Booking
	if !r.data.decode(res, &b, "/bookings") {
		r.log.Warnf("booking for showtime %s created without details in response", req.ShowtimeID)
		return &biz.Booking{ShowtimeID: req.ShowtimeID, Seats: req.Seats}, nil
	}
	return bookingToBiz(&b, r.data.loc), nil
}

func (r *bookingRepo) GetBooking(ctx context.Context, confirmationCode string) (*biz.Booking, error) {
	path := "/bookings/" + url.PathEscape(confirmationCode)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, msgLookupBooking)
	}
	var b Booking
	if !r.data.decode(res, &b, path) {
		return nil, nil
	}
	return bookingToBiz(&b, r.data.loc), nil
}

// newBookingPayload fills in guest contact details field by field and, when
// ticket types are absent, one adult line covering every seat. An empty but
// present list is sent as is.
func newBookingPayload(req *biz.BookingRequest) BookingPayload {
	payload := BookingPayload{
		ShowtimeID: req.ShowtimeID,
		CustomerInfo: CustomerInfo{
			FullName: guestFullName,
			Phone:    guestPhone,
			Email:    guestEmail,
		},
		Seats:       req.Seats,
		Concessions: []ConcessionItem{},
	}
	if payload.Seats == nil {
		payload.Seats = []string{}
	}
	if c := req.Customer; c != nil {
		if c.FullName != "" {
			payload.CustomerInfo.FullName = c.FullName
		}
		if c.Phone != "" {
			payload.CustomerInfo.Phone = c.Phone
		}
		if c.Email != "" {
			payload.CustomerInfo.Email = c.Email
		}
	}

	if req.TicketTypes == nil {
		payload.TicketTypes = []TicketTypeLine{{
			Type:           adultTicketType,
			Quantity:       len(payload.Seats),
			PricePerTicket: adultTicketPrice,
		}}
	} else {
		payload.TicketTypes = make([]TicketTypeLine, 0, len(req.TicketTypes))
		for _, t := range req.TicketTypes {
			payload.TicketTypes = append(payload.TicketTypes, TicketTypeLine{
				Type:           t.Type,
				Quantity:       t.Quantity,
				PricePerTicket: t.PricePerTicket,
			})
		}
	}

	for _, c := range req.Concessions {
		payload.Concessions = append(payload.Concessions, ConcessionItem{
			ItemID:   c.ItemID,
			Quantity: c.Quantity,
		})
	}
	return payload
}
