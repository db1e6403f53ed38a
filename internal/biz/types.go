package biz

import (
	"context"
	"net/url"
	"time"
)

// Movie domain model
type Movie struct {
	ID            string
	Title         string
	OriginalTitle string
	Genres        []string
	Duration      int
	Country       string
	AgeRating     string
	Description   string
	Directors     []string
	Cast          []string
	ReleaseDate   time.Time
	Trailer       string
	Poster        string
	Status        string
	Subtitles     string
}

// Cinema domain model
type Cinema struct {
	ID        string
	Name      string
	Address   string
	City      string
	Phone     string
	Latitude  float64
	Longitude float64
}

// Room domain model
type Room struct {
	ID         string
	CinemaID   string
	Name       string
	Type       string
	TotalSeats int
}

// Showtime domain model. Cinema name and address are denormalized for display.
type Showtime struct {
	ID            string
	MovieID       string
	MovieTitle    string
	CinemaID      string
	CinemaName    string
	CinemaAddress string
	RoomID        string
	RoomName      string
	StartTime     time.Time
	Status        string
	Price         float64
}

// SeatStatus is the storefront projection of the remote seat states.
type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatReserved    SeatStatus = "reserved"
	SeatUnavailable SeatStatus = "unavailable"
)

// Seat domain model
type Seat struct {
	ID     string
	Row    string
	Number int
	Type   string
	Status SeatStatus
	Price  float64
}

// SeatHold asks the cinema API to hold seats until payment.
type SeatHold struct {
	ShowtimeID    string
	SeatIDs       []string
	CustomerPhone string
}

// SeatSelection identifies held seats for release or extension.
type SeatSelection struct {
	ShowtimeID string
	SeatIDs    []string
}

// Customer contact details attached to a booking.
type Customer struct {
	FullName string
	Phone    string
	Email    string
}

// TicketType is one line of the ticket breakdown.
type TicketType struct {
	Type           string
	Quantity       int
	PricePerTicket float64
}

// ConcessionLine is a concession item ordered with the booking.
type ConcessionLine struct {
	ItemID   string
	Quantity int
}

// BookingRequest domain model
type BookingRequest struct {
	ShowtimeID  string
	Customer    *Customer
	Seats       []string
	TicketTypes []TicketType
	Concessions []ConcessionLine
}

// Booking domain model
type Booking struct {
	ID               string
	ConfirmationCode string
	ShowtimeID       string
	Status           string
	TotalAmount      float64
	Customer         Customer
	Seats            []string
	CreatedAt        time.Time
}

// PaymentURL is the VNPay redirect created for a booking.
type PaymentURL struct {
	PaymentURL string
	PaymentID  string
}

// PaymentResult is the outcome of a VNPay return confirmation.
type PaymentResult struct {
	Success          bool
	Status           string
	Message          string
	BookingID        string
	ConfirmationCode string
	TransactionID    string
}

// Concession domain model
type Concession struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	ImageURL    string
	Available   bool
}

// HealthStatus reported by the cinema API.
type HealthStatus struct {
	Status   string
	Database string
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items         []T
	TotalPages    int
	TotalElements int64
	Number        int
	Size          int
}

// PageQuery domain model
type PageQuery struct {
	Page   *int
	Size   *int
	Status string
	Sort   string
}

// MovieSearchQuery domain model
type MovieSearchQuery struct {
	Q      string
	Genre  string
	Status string
}

// CinemaSearchQuery domain model
type CinemaSearchQuery struct {
	Q    string
	City string
}

// ShowtimeFilter narrows GET /showtimes. Empty fields are not sent.
type ShowtimeFilter struct {
	MovieID  string
	CinemaID string
	City     string
	Date     string
	Status   string
}

// MovieRepo defines the cinema API operations on movies
type MovieRepo interface {
	ListMovies(ctx context.Context, query PageQuery) ([]*Movie, error)
	// GetMovie returns nil without error when the API has no record.
	GetMovie(ctx context.Context, id string) (*Movie, error)
	ListNowShowing(ctx context.Context, query PageQuery) (*Page[*Movie], error)
	ListComingSoon(ctx context.Context, query PageQuery) (*Page[*Movie], error)
	SearchMovies(ctx context.Context, query MovieSearchQuery) ([]*Movie, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListLatest(ctx context.Context, limit int) ([]*Movie, error)
}

// CinemaRepo defines the cinema API operations on cinemas and rooms
type CinemaRepo interface {
	ListCinemas(ctx context.Context, query PageQuery) (*Page[*Cinema], error)
	GetCinema(ctx context.Context, id string) (*Cinema, error)
	ListNearby(ctx context.Context, lat, lng, radius float64) ([]*Cinema, error)
	ListRooms(ctx context.Context, cinemaID string) ([]*Room, error)
	ListByCity(ctx context.Context, city string, query PageQuery) ([]*Cinema, error)
	SearchCinemas(ctx context.Context, query CinemaSearchQuery) ([]*Cinema, error)
	ListCities(ctx context.Context) ([]string, error)
	GetRoom(ctx context.Context, id string) (*Room, error)
}

// ShowtimeRepo defines the cinema API operations on showtimes
type ShowtimeRepo interface {
	ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]*Showtime, error)
	GetShowtime(ctx context.Context, id string) (*Showtime, error)
}

// SeatRepo defines the cinema API operations on seats
type SeatRepo interface {
	ListSeats(ctx context.Context, showtimeID string) ([]*Seat, error)
	Hold(ctx context.Context, hold SeatHold) error
	Release(ctx context.Context, sel SeatSelection) error
	ExtendHold(ctx context.Context, sel SeatSelection) error
}

// BookingRepo defines the cinema API operations on bookings
type BookingRepo interface {
	CreateBooking(ctx context.Context, req *BookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, confirmationCode string) (*Booking, error)
}

// PaymentRepo defines the cinema API operations on VNPay payments
type PaymentRepo interface {
	CreateVNPayURL(ctx context.Context, bookingID, returnURL string) (*PaymentURL, error)
	ConfirmVNPay(ctx context.Context, params url.Values) (*PaymentResult, error)
}

// ConcessionRepo defines the cinema API operations on concessions
type ConcessionRepo interface {
	ListConcessions(ctx context.Context, category string) ([]*Concession, error)
	ListByCinema(ctx context.Context, cinemaID string) ([]*Concession, error)
	GetConcession(ctx context.Context, id string) (*Concession, error)
}

// HealthRepo checks the cinema API
type HealthRepo interface {
	Check(ctx context.Context) (*HealthStatus, error)
}
