package service

import (
	"context"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// BookingService implements the BookingService API: showtimes, seats,
// bookings, payments and concessions.
type BookingService struct {
	uc  *biz.BookingUseCase
	log *log.Helper
}

// NewBookingService creates a new BookingService
func NewBookingService(uc *biz.BookingUseCase, logger log.Logger) *BookingService {
	return &BookingService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *BookingService) ListShowtimes(ctx context.Context, req *v1.ListShowtimesRequest) (*v1.ListShowtimesReply, error) {
	showtimes, err := s.uc.ListShowtimes(ctx, biz.ShowtimeFilter{
		MovieID:  req.MovieId,
		CinemaID: req.CinemaId,
		City:     req.City,
		Date:     req.Date,
		Status:   req.Status,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListShowtimesReply{Showtimes: toShowtimes(showtimes)}, nil
}

func (s *BookingService) GetShowtime(ctx context.Context, req *v1.GetShowtimeRequest) (*v1.Showtime, error) {
	showtime, err := s.uc.GetShowtime(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	if showtime == nil {
		return nil, v1.ErrorNotFound("showtime %s not found", req.Id)
	}
	return toShowtime(showtime), nil
}

func (s *BookingService) GetSeatMap(ctx context.Context, req *v1.GetSeatMapRequest) (*v1.SeatMapReply, error) {
	seats, err := s.uc.SeatMap(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	reply := &v1.SeatMapReply{
		ShowtimeId: req.Id,
		Seats:      make([]*v1.Seat, 0, len(seats)),
	}
	for _, seat := range seats {
		reply.Seats = append(reply.Seats, &v1.Seat{
			Id:     seat.ID,
			Row:    seat.Row,
			Number: seat.Number,
			Type:   seat.Type,
			Status: string(seat.Status),
			Price:  seat.Price,
		})
	}
	return reply, nil
}

func (s *BookingService) HoldSeats(ctx context.Context, req *v1.HoldSeatsRequest) (*v1.SeatHoldReply, error) {
	err := s.uc.HoldSeats(ctx, biz.SeatHold{
		ShowtimeID:    req.ShowtimeId,
		SeatIDs:       req.SeatIds,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.SeatHoldReply{ShowtimeId: req.ShowtimeId, SeatIds: nonNil(req.SeatIds)}, nil
}

func (s *BookingService) ReleaseSeats(ctx context.Context, req *v1.SeatSelectionRequest) (*v1.SeatHoldReply, error) {
	if err := s.uc.ReleaseSeats(ctx, biz.SeatSelection{ShowtimeID: req.ShowtimeId, SeatIDs: req.SeatIds}); err != nil {
		return nil, toServiceError(err)
	}
	return &v1.SeatHoldReply{ShowtimeId: req.ShowtimeId, SeatIds: nonNil(req.SeatIds)}, nil
}

func (s *BookingService) ExtendSeatHold(ctx context.Context, req *v1.SeatSelectionRequest) (*v1.SeatHoldReply, error) {
	if err := s.uc.ExtendHold(ctx, biz.SeatSelection{ShowtimeID: req.ShowtimeId, SeatIDs: req.SeatIds}); err != nil {
		return nil, toServiceError(err)
	}
	return &v1.SeatHoldReply{ShowtimeId: req.ShowtimeId, SeatIds: nonNil(req.SeatIds)}, nil
}

// CreateBooking books seats. Missing contact details and ticket types are
// filled with the guest defaults before the request is sent.
func (s *BookingService) CreateBooking(ctx context.Context, req *v1.CreateBookingRequest) (*v1.CreateBookingReply, error) {
	bizReq := &biz.BookingRequest{
		ShowtimeID: req.ShowtimeId,
		Seats:      req.Seats,
	}
	if req.Customer != nil {
		bizReq.Customer = &biz.Customer{
			FullName: req.Customer.FullName,
			Phone:    req.Customer.Phone,
			Email:    req.Customer.Email,
		}
	}
	if req.TicketTypes != nil {
		bizReq.TicketTypes = make([]biz.TicketType, 0, len(req.TicketTypes))
	}
	for _, t := range req.TicketTypes {
		if t == nil {
			continue
		}
		bizReq.TicketTypes = append(bizReq.TicketTypes, biz.TicketType{
			Type:           t.Type,
			Quantity:       t.Quantity,
			PricePerTicket: t.PricePerTicket,
		})
	}
	for _, c := range req.Concessions {
		if c == nil {
			continue
		}
		bizReq.Concessions = append(bizReq.Concessions, biz.ConcessionLine{
			ItemID:   c.ItemId,
			Quantity: c.Quantity,
		})
	}

	booking, err := s.uc.CreateBooking(ctx, bizReq)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.CreateBookingReply{Booking: toBooking(booking)}, nil
}

func (s *BookingService) GetBooking(ctx context.Context, req *v1.GetBookingRequest) (*v1.Booking, error) {
	booking, err := s.uc.GetBooking(ctx, req.Code)
	if err != nil {
		return nil, toServiceError(err)
	}
	if booking == nil {
		return nil, v1.ErrorNotFound("booking %s not found", req.Code)
	}
	return toBooking(booking), nil
}

func (s *BookingService) CreatePayment(ctx context.Context, req *v1.CreatePaymentRequest) (*v1.PaymentUrlReply, error) {
	payment, err := s.uc.CreatePayment(ctx, req.BookingId, req.ReturnUrl)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.PaymentUrlReply{
		PaymentUrl: payment.PaymentURL,
		PaymentId:  payment.PaymentID,
	}, nil
}

func (s *BookingService) ConfirmPayment(ctx context.Context, req *v1.ConfirmPaymentRequest) (*v1.PaymentResultReply, error) {
	if len(req.Params) == 0 {
		return nil, v1.ErrorInvalidArgument("missing VNPay return parameters")
	}
	result, err := s.uc.ConfirmPayment(ctx, req.Params)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.PaymentResultReply{
		Success:          result.Success,
		Status:           result.Status,
		Message:          result.Message,
		BookingId:        result.BookingID,
		ConfirmationCode: result.ConfirmationCode,
		TransactionId:    result.TransactionID,
	}, nil
}

func (s *BookingService) ListConcessions(ctx context.Context, req *v1.ListConcessionsRequest) (*v1.ListConcessionsReply, error) {
	items, err := s.uc.Concessions(ctx, req.Category)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListConcessionsReply{Items: toConcessions(items)}, nil
}

func (s *BookingService) ListConcessionsByCinema(ctx context.Context, req *v1.ListConcessionsByCinemaRequest) (*v1.ListConcessionsReply, error) {
	items, err := s.uc.ConcessionsByCinema(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.ListConcessionsReply{Items: toConcessions(items)}, nil
}

func (s *BookingService) GetConcession(ctx context.Context, req *v1.GetConcessionRequest) (*v1.Concession, error) {
	item, err := s.uc.GetConcession(ctx, req.Id)
	if err != nil {
		return nil, toServiceError(err)
	}
	if item == nil {
		return nil, v1.ErrorNotFound("concession %s not found", req.Id)
	}
	return toConcession(item), nil
}
