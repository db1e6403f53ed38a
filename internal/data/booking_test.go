package data

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestData(t *testing.T, handler http.HandlerFunc) (*Data, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return newData(newTestGateway(t, srv.URL, 0), nil, time.Minute, time.UTC, log.DefaultLogger), &hits
}

func TestNewBookingPayload_Defaults(t *testing.T) {
	payload := newBookingPayload(&biz.BookingRequest{
		ShowtimeID: "st-9",
		Seats:      []string{"A1", "A2"},
	})

	assert.Equal(t, CustomerInfo{FullName: "Guest User", Phone: "0000000000", Email: "guest@example.com"}, payload.CustomerInfo)
	assert.Equal(t, []TicketTypeLine{{Type: "Người lớn", Quantity: 2, PricePerTicket: 90000}}, payload.TicketTypes)
	assert.NotNil(t, payload.Concessions)
	assert.Empty(t, payload.Concessions)
}

func TestNewBookingPayload_KeepsGivenFields(t *testing.T) {
	payload := newBookingPayload(&biz.BookingRequest{
		ShowtimeID:  "st-9",
		Customer:    &biz.Customer{Phone: "0912345678"},
		Seats:       []string{"C3"},
		TicketTypes: []biz.TicketType{{Type: "Student", Quantity: 1, PricePerTicket: 70000}},
		Concessions: []biz.ConcessionLine{{ItemID: "popcorn", Quantity: 2}},
	})

	assert.Equal(t, "Guest User", payload.CustomerInfo.FullName)
	assert.Equal(t, "0912345678", payload.CustomerInfo.Phone)
	assert.Equal(t, "guest@example.com", payload.CustomerInfo.Email)
	assert.Equal(t, []TicketTypeLine{{Type: "Student", Quantity: 1, PricePerTicket: 70000}}, payload.TicketTypes)
	assert.Equal(t, []ConcessionItem{{ItemID: "popcorn", Quantity: 2}}, payload.Concessions)
}

func TestNewBookingPayload_EmptyTicketTypesAreKept(t *testing.T) {
	payload := newBookingPayload(&biz.BookingRequest{
		ShowtimeID:  "st-9",
		Seats:       []string{"A1"},
		TicketTypes: []biz.TicketType{},
	})
	assert.NotNil(t, payload.TicketTypes)
	assert.Empty(t, payload.TicketTypes)
}

func TestBookingRepo_CreateBookingSendsPayload(t *testing.T) {
	var sent map[string]interface{}
	d, hits := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":7,"confirmationCode":"CGV123","showtimeId":"st-9","status":"PENDING","totalAmount":180000,"seats":["A1","A2"]}}`)
	})
	repo := NewBookingRepo(d, log.DefaultLogger)

	booking, err := repo.CreateBooking(context.Background(), &biz.BookingRequest{ShowtimeID: "st-9", Seats: []string{"A1", "A2"}})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Equal(t, "7", booking.ID)
	assert.Equal(t, "CGV123", booking.ConfirmationCode)
	assert.Equal(t, 180000.0, booking.TotalAmount)

	assert.Equal(t, "st-9", sent["showtimeId"])
	customer := sent["customerInfo"].(map[string]interface{})
	assert.Equal(t, "Guest User", customer["fullName"])
	tickets := sent["ticketTypes"].([]interface{})
	require.Len(t, tickets, 1)
	assert.Equal(t, float64(2), tickets[0].(map[string]interface{})["quantity"])
	assert.Equal(t, []interface{}{}, sent["concessions"])
}

func TestBookingRepo_InvalidPayloadIsNotSent(t *testing.T) {
	d, hits := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	repo := NewBookingRepo(d, log.DefaultLogger)

	tests := []struct {
		name string
		req  *biz.BookingRequest
	}{
		{"nil request", nil},
		{"no showtime", &biz.BookingRequest{Seats: []string{"A1"}}},
		{"no seats", &biz.BookingRequest{ShowtimeID: "st-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateBooking(context.Background(), tt.req)
			require.Error(t, err)
			apiErr, ok := biz.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, biz.ErrorLocal, apiErr.Kind)
			assert.Equal(t, 0, apiErr.Status)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestBookingRepo_ServerValidatesContactAndLines(t *testing.T) {
	var sent BookingPayload
	d, hits := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"message":"Validation failed","errors":[
			{"field":"email","defaultMessage":"must be a well-formed email address"},
			{"field":"concessions[0].quantity","defaultMessage":"must be greater than 0"}
		]}`)
	})
	repo := NewBookingRepo(d, log.DefaultLogger)

	_, err := repo.CreateBooking(context.Background(), &biz.BookingRequest{
		ShowtimeID:  "st-1",
		Seats:       []string{"A1"},
		Customer:    &biz.Customer{Email: "an-at-mail"},
		TicketTypes: []biz.TicketType{{Quantity: 1}},
		Concessions: []biz.ConcessionLine{{Quantity: 0}},
	})
	apiErr, ok := biz.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Equal(t, biz.ErrorRejected, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "email: must be a well-formed email address\nconcessions[0].quantity: must be greater than 0", apiErr.Message)

	assert.Equal(t, "an-at-mail", sent.CustomerInfo.Email)
	assert.Equal(t, []TicketTypeLine{{Quantity: 1}}, sent.TicketTypes)
	assert.Equal(t, []ConcessionItem{{}}, sent.Concessions)
}

func TestBookingRepo_RejectedBooking(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"success":false,"message":"Seat A1 is no longer available"}`)
	})
	repo := NewBookingRepo(d, log.DefaultLogger)

	_, err := repo.CreateBooking(context.Background(), &biz.BookingRequest{ShowtimeID: "st-1", Seats: []string{"A1"}})
	apiErr, ok := biz.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, biz.ErrorRejected, apiErr.Kind)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Seat A1 is no longer available", apiErr.Message)
}

func TestSeatRepo_HoldValidation(t *testing.T) {
	d, hits := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"message":"held","data":null}`)
	})
	repo := NewSeatRepo(d, log.DefaultLogger)

	err := repo.Hold(context.Background(), biz.SeatHold{ShowtimeID: "st-1"})
	apiErr, ok := biz.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, biz.ErrorLocal, apiErr.Kind)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))

	require.NoError(t, repo.Hold(context.Background(), biz.SeatHold{ShowtimeID: "st-1", SeatIDs: []string{"A1"}, CustomerPhone: "0900000000"}))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestSeatRepo_ListSeats(t *testing.T) {
	d, _ := newTestData(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seats/showtime/st-1", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":{"seatStatus":{"A1":{"status":"booked","price":120000},"B2":{"status":"available"}}}}`)
	})
	seats, err := NewSeatRepo(d, log.DefaultLogger).ListSeats(context.Background(), "st-1")
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, biz.SeatReserved, seats[0].Status)
	assert.Equal(t, 120000.0, seats[0].Price)
	assert.Equal(t, biz.SeatAvailable, seats[1].Status)
	assert.Equal(t, 90000.0, seats[1].Price)
}
