package biz

import (
	"context"
	"net/url"

	"storefront/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

// BookingUseCase drives the checkout flow: showtimes, seat holds, bookings,
// concessions and VNPay payments.
type BookingUseCase struct {
	showtimes   ShowtimeRepo
	seats       SeatRepo
	bookings    BookingRepo
	payments    PaymentRepo
	concessions ConcessionRepo
	returnURL   string
	log         *log.Helper
}

// NewBookingUseCase creates a new BookingUseCase instance
func NewBookingUseCase(
	showtimes ShowtimeRepo,
	seats SeatRepo,
	bookings BookingRepo,
	payments PaymentRepo,
	concessions ConcessionRepo,
	c *conf.Storefront,
	logger log.Logger,
) *BookingUseCase {
	uc := &BookingUseCase{
		showtimes:   showtimes,
		seats:       seats,
		bookings:    bookings,
		payments:    payments,
		concessions: concessions,
		log:         log.NewHelper(logger),
	}
	if c != nil {
		uc.returnURL = c.PaymentReturnUrl
	}
	return uc
}

func (uc *BookingUseCase) ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]*Showtime, error) {
	return uc.showtimes.ListShowtimes(ctx, filter)
}

func (uc *BookingUseCase) GetShowtime(ctx context.Context, id string) (*Showtime, error) {
	return uc.showtimes.GetShowtime(ctx, id)
}

// SeatMap returns the seats of a showtime with their storefront status
func (uc *BookingUseCase) SeatMap(ctx context.Context, showtimeID string) ([]*Seat, error) {
	return uc.seats.ListSeats(ctx, showtimeID)
}

// HoldSeats places a temporary hold on seats before checkout
func (uc *BookingUseCase) HoldSeats(ctx context.Context, hold SeatHold) error {
	uc.log.Infof("holding seats %v for showtime %s", hold.SeatIDs, hold.ShowtimeID)
	return uc.seats.Hold(ctx, hold)
}

// ReleaseSeats drops a hold
func (uc *BookingUseCase) ReleaseSeats(ctx context.Context, sel SeatSelection) error {
	uc.log.Infof("releasing seats %v for showtime %s", sel.SeatIDs, sel.ShowtimeID)
	return uc.seats.Release(ctx, sel)
}

// ExtendHold pushes back the expiry of a hold
func (uc *BookingUseCase) ExtendHold(ctx context.Context, sel SeatSelection) error {
	return uc.seats.ExtendHold(ctx, sel)
}

func (uc *BookingUseCase) CreateBooking(ctx context.Context, req *BookingRequest) (*Booking, error) {
	booking, err := uc.bookings.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.log.Infof("booking %s created for showtime %s", booking.ConfirmationCode, req.ShowtimeID)
	return booking, nil
}

// GetBooking looks a booking up by its confirmation code
func (uc *BookingUseCase) GetBooking(ctx context.Context, confirmationCode string) (*Booking, error) {
	return uc.bookings.GetBooking(ctx, confirmationCode)
}

// CreatePayment creates a VNPay payment URL. An empty returnURL falls back to
// the configured payment return page.
func (uc *BookingUseCase) CreatePayment(ctx context.Context, bookingID, returnURL string) (*PaymentURL, error) {
	if returnURL == "" {
		returnURL = uc.returnURL
	}
	return uc.payments.CreateVNPayURL(ctx, bookingID, returnURL)
}

// ConfirmPayment forwards the VNPay return parameters for signature checking
func (uc *BookingUseCase) ConfirmPayment(ctx context.Context, params url.Values) (*PaymentResult, error) {
	result, err := uc.payments.ConfirmVNPay(ctx, params)
	if err != nil {
		return nil, err
	}
	uc.log.Infof("vnpay confirmation for txn %s: success=%t", params.Get("vnp_TxnRef"), result.Success)
	return result, nil
}

func (uc *BookingUseCase) Concessions(ctx context.Context, category string) ([]*Concession, error) {
	return uc.concessions.ListConcessions(ctx, category)
}

func (uc *BookingUseCase) ConcessionsByCinema(ctx context.Context, cinemaID string) ([]*Concession, error) {
	return uc.concessions.ListByCinema(ctx, cinemaID)
}

func (uc *BookingUseCase) GetConcession(ctx context.Context, id string) (*Concession, error) {
	return uc.concessions.GetConcession(ctx, id)
}

// HealthUseCase reports the health of the cinema API
type HealthUseCase struct {
	repo HealthRepo
}

// NewHealthUseCase creates a new HealthUseCase instance
func NewHealthUseCase(repo HealthRepo) *HealthUseCase {
	return &HealthUseCase{repo: repo}
}

func (uc *HealthUseCase) Check(ctx context.Context) (*HealthStatus, error) {
	return uc.repo.Check(ctx)
}
