// Package v1 declares the storefront HTTP API: request and reply messages,
// error reasons and route registration for the kratos HTTP transport.
package v1

import "net/url"

// Movie is a movie as shown by the storefront.
type Movie struct {
	Id                   string   `json:"id"`
	Title                string   `json:"title"`
	OriginalTitle        string   `json:"originalTitle,omitempty"`
	Genres               []string `json:"genres"`
	Duration             int      `json:"duration"`
	Country              string   `json:"country,omitempty"`
	AgeRating            string   `json:"ageRating,omitempty"`
	AgeRatingDescription string   `json:"ageRatingDescription,omitempty"`
	Description          string   `json:"description,omitempty"`
	Directors            []string `json:"directors"`
	Cast                 []string `json:"cast"`
	ReleaseDate          string   `json:"releaseDate,omitempty"`
	Trailer              string   `json:"trailer,omitempty"`
	Poster               string   `json:"poster,omitempty"`
	Status               string   `json:"status,omitempty"`
	Subtitles            string   `json:"subtitles,omitempty"`
}

type Cinema struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Phone     string  `json:"phone,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Room struct {
	Id         string `json:"id"`
	CinemaId   string `json:"cinemaId"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	TotalSeats int    `json:"totalSeats"`
}

type Showtime struct {
	Id            string  `json:"id"`
	MovieId       string  `json:"movieId"`
	MovieTitle    string  `json:"movieTitle,omitempty"`
	CinemaId      string  `json:"cinemaId"`
	CinemaName    string  `json:"cinemaName"`
	CinemaAddress string  `json:"cinemaAddress"`
	RoomId        string  `json:"roomId,omitempty"`
	RoomName      string  `json:"roomName,omitempty"`
	StartTime     string  `json:"startTime"`
	Status        string  `json:"status,omitempty"`
	Price         float64 `json:"price"`
}

type Seat struct {
	Id     string  `json:"id"`
	Row    string  `json:"row"`
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type TicketType struct {
	Type           string  `json:"type"`
	Quantity       int     `json:"quantity"`
	PricePerTicket float64 `json:"pricePerTicket"`
}

type ConcessionLine struct {
	ItemId   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type Booking struct {
	Id               string   `json:"id"`
	ConfirmationCode string   `json:"confirmationCode"`
	ShowtimeId       string   `json:"showtimeId"`
	Status           string   `json:"status"`
	TotalAmount      float64  `json:"totalAmount"`
	Customer         Customer `json:"customer"`
	Seats            []string `json:"seats"`
	CreatedAt        string   `json:"createdAt,omitempty"`
}

type Concession struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageUrl    string  `json:"imageUrl,omitempty"`
	Available   bool    `json:"available"`
}

// PageRequest carries the paging query parameters. Numbers are parsed by the
// service so malformed values are reported as invalid arguments.
type PageRequest struct {
	Page   string `json:"page,omitempty"`
	Size   string `json:"size,omitempty"`
	Status string `json:"status,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

type ListMoviesReply struct {
	Items []*Movie `json:"items"`
}

type MoviePageReply struct {
	Items         []*Movie `json:"items"`
	TotalPages    int      `json:"totalPages"`
	TotalElements int64    `json:"totalElements"`
	Number        int      `json:"number"`
	Size          int      `json:"size"`
}

type SearchMoviesRequest struct {
	Q      string `json:"q,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Status string `json:"status,omitempty"`
}

type ListGenresRequest struct{}

type ListGenresReply struct {
	Genres []string `json:"genres"`
}

type ListLatestMoviesRequest struct {
	Limit string `json:"limit,omitempty"`
}

type GetMovieRequest struct {
	Id string `json:"id"`
}

// GetMovieDetailRequest opens the showtime browser of one movie. City, cinema
// and date are navigation hints.
type GetMovieDetailRequest struct {
	Id     string `json:"id"`
	City   string `json:"city,omitempty"`
	Cinema string `json:"cinema,omitempty"`
	Date   string `json:"date,omitempty"`
}

type CinemaShowtimes struct {
	CinemaId      string      `json:"cinemaId"`
	CinemaName    string      `json:"cinemaName"`
	CinemaAddress string      `json:"cinemaAddress"`
	Showtimes     []*Showtime `json:"showtimes"`
}

type MovieDetailReply struct {
	Movie              *Movie             `json:"movie"`
	Cities             []string           `json:"cities"`
	Theaters           []*Cinema          `json:"theaters"`
	Dates              []string           `json:"dates"`
	SelectedCity       string             `json:"selectedCity"`
	SelectedCinema     string             `json:"selectedCinema"`
	SelectedCinemaName string             `json:"selectedCinemaName"`
	SelectedDate       string             `json:"selectedDate"`
	Showtimes          []*CinemaShowtimes `json:"showtimes"`
}

type CinemaPageReply struct {
	Items         []*Cinema `json:"items"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
}

type ListCinemasReply struct {
	Items []*Cinema `json:"items"`
}

type GetCinemaRequest struct {
	Id string `json:"id"`
}

type NearbyCinemasRequest struct {
	Lat    string `json:"lat"`
	Lng    string `json:"lng"`
	Radius string `json:"radius,omitempty"`
}

type ListRoomsRequest struct {
	Id string `json:"id"`
}

type ListRoomsReply struct {
	Rooms []*Room `json:"rooms"`
}

type ListCinemasByCityRequest struct {
	City   string `json:"city"`
	Page   string `json:"page,omitempty"`
	Size   string `json:"size,omitempty"`
	Status string `json:"status,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

type SearchCinemasRequest struct {
	Q    string `json:"q,omitempty"`
	City string `json:"city,omitempty"`
}

type ListCitiesRequest struct{}

type ListCitiesReply struct {
	Cities []string `json:"cities"`
}

type GetRoomRequest struct {
	Id string `json:"id"`
}

type ListShowtimesRequest struct {
	MovieId  string `json:"movieId,omitempty"`
	CinemaId string `json:"cinemaId,omitempty"`
	City     string `json:"city,omitempty"`
	Date     string `json:"date,omitempty"`
	Status   string `json:"status,omitempty"`
}

type ListShowtimesReply struct {
	Showtimes []*Showtime `json:"showtimes"`
}

type GetShowtimeRequest struct {
	Id string `json:"id"`
}

type GetSeatMapRequest struct {
	Id string `json:"id"`
}

type SeatMapReply struct {
	ShowtimeId string  `json:"showtimeId"`
	Seats      []*Seat `json:"seats"`
}

type HoldSeatsRequest struct {
	ShowtimeId    string   `json:"showtimeId"`
	SeatIds       []string `json:"seatIds"`
	CustomerPhone string   `json:"customerPhone,omitempty"`
}

type SeatSelectionRequest struct {
	ShowtimeId string   `json:"showtimeId"`
	SeatIds    []string `json:"seatIds"`
}

type SeatHoldReply struct {
	ShowtimeId string   `json:"showtimeId"`
	SeatIds    []string `json:"seatIds"`
}

type CreateBookingRequest struct {
	ShowtimeId  string            `json:"showtimeId"`
	Customer    *Customer         `json:"customer,omitempty"`
	Seats       []string          `json:"seats"`
	TicketTypes []*TicketType     `json:"ticketTypes,omitempty"`
	Concessions []*ConcessionLine `json:"concessions,omitempty"`
}

// CreateBookingReply is answered with 201 Created.
type CreateBookingReply struct {
	*Booking
}

func (*CreateBookingReply) HTTPStatus() int {
	return 201
}

type GetBookingRequest struct {
	Code string `json:"code"`
}

type CreatePaymentRequest struct {
	BookingId string `json:"bookingId"`
	ReturnUrl string `json:"returnUrl,omitempty"`
}

type PaymentUrlReply struct {
	PaymentUrl string `json:"paymentUrl"`
	PaymentId  string `json:"paymentId"`
}

// ConfirmPaymentRequest carries the VNPay return parameters verbatim.
type ConfirmPaymentRequest struct {
	Params url.Values `json:"-"`
}

type PaymentResultReply struct {
	Success          bool   `json:"success"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	BookingId        string `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode"`
	TransactionId    string `json:"transactionId"`
}

type ListConcessionsRequest struct {
	Category string `json:"category,omitempty"`
}

type ListConcessionsByCinemaRequest struct {
	Id string `json:"id"`
}

type ListConcessionsReply struct {
	Items []*Concession `json:"items"`
}

type GetConcessionRequest struct {
	Id string `json:"id"`
}

type HealthRequest struct{}

type HealthReply struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
