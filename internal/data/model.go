package data

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"storefront/internal/biz"
)

const (
	defaultSeatType  = "standard"
	defaultSeatPrice = 90000
)

// flexString accepts JSON strings and numbers, since ids may come either way.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// stringList accepts a JSON array of strings or one comma separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}
	if b[0] == '[' {
		var v []string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = v
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// Movie is the cinema API movie
type Movie struct {
	ID            flexString `json:"id"`
	Title         string     `json:"title"`
	OriginalTitle string     `json:"originalTitle"`
	Genres        stringList `json:"genres"`
	Duration      int        `json:"duration"`
	Country       string     `json:"country"`
	AgeRating     string     `json:"ageRating"`
	Description   string     `json:"description"`
	Directors     stringList `json:"directors"`
	Cast          stringList `json:"cast"`
	ReleaseDate   string     `json:"releaseDate"`
	Trailer       string     `json:"trailer"`
	Poster        string     `json:"poster"`
	Status        string     `json:"status"`
	Subtitles     string     `json:"subtitles"`
}

// Cinema is the cinema API cinema
type Cinema struct {
	ID        flexString `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Phone     string     `json:"phone"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}

type Room struct {
	ID         flexString `json:"id"`
	CinemaID   flexString `json:"cinemaId"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	TotalSeats int        `json:"totalSeats"`
}

// Showtime is the cinema API showtime
type Showtime struct {
	ID            flexString `json:"id"`
	MovieID       flexString `json:"movieId"`
	MovieTitle    string     `json:"movieTitle"`
	CinemaID      flexString `json:"cinemaId"`
	CinemaName    string     `json:"cinemaName"`
	CinemaAddress string     `json:"cinemaAddress"`
	RoomID        flexString `json:"roomId"`
	RoomName      string     `json:"roomName"`
	ShowDateTime  string     `json:"showDateTime"`
	Status        string     `json:"status"`
	Price         float64    `json:"price"`
}

// Page is the Spring style page the cinema API returns for paginated listings
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// SeatState is one entry of the seat status map
type SeatState struct {
	Status string  `json:"status"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

// SeatMap is the payload of GET /seats/showtime/{id}
type SeatMap struct {
	SeatStatus map[string]SeatState `json:"seatStatus"`
}

type CustomerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type TicketTypeLine struct {
	Type           string  `json:"type"`
	Quantity       int     `json:"quantity"`
	PricePerTicket float64 `json:"pricePerTicket"`
}

type ConcessionItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// BookingPayload is the body of POST /bookings
type BookingPayload struct {
	ShowtimeID   string           `json:"showtimeId" validate:"required"`
	CustomerInfo CustomerInfo     `json:"customerInfo"`
	Seats        []string         `json:"seats" validate:"min=1,dive,required"`
	TicketTypes  []TicketTypeLine `json:"ticketTypes"`
	Concessions  []ConcessionItem `json:"concessions"`
}

// SeatHoldPayload is the body of the hold endpoints
type SeatHoldPayload struct {
	ShowtimeID    string   `json:"showtimeId" validate:"required"`
	SeatIDs       []string `json:"seatIds" validate:"min=1,dive,required"`
	CustomerPhone string   `json:"customerPhone,omitempty"`
}

// PaymentPayload is the body of POST /payments/vnpay/create
type PaymentPayload struct {
	BookingID string `json:"bookingId" validate:"required"`
	ReturnURL string `json:"returnUrl"`
}

type Booking struct {
	ID               flexString   `json:"id"`
	ConfirmationCode string       `json:"confirmationCode"`
	ShowtimeID       flexString   `json:"showtimeId"`
	Status           string       `json:"status"`
	TotalAmount      float64      `json:"totalAmount"`
	CustomerInfo     CustomerInfo `json:"customerInfo"`
	Seats            stringList   `json:"seats"`
	CreatedAt        string       `json:"createdAt"`
}

type PaymentURL struct {
	PaymentURL string     `json:"paymentUrl"`
	PaymentID  flexString `json:"paymentId"`
}

type PaymentResult struct {
	Success          bool       `json:"success"`
	Status           string     `json:"status"`
	Message          string     `json:"message"`
	BookingID        flexString `json:"bookingId"`
	ConfirmationCode string     `json:"confirmationCode"`
	TransactionID    string     `json:"transactionId"`
}

type Concession struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"imageUrl"`
	Available   *bool      `json:"available"`
}

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func movieToBiz(m *Movie, loc *time.Location) *biz.Movie {
	out := &biz.Movie{
		ID:            string(m.ID),
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Genres:        []string(m.Genres),
		Duration:      m.Duration,
		Country:       m.Country,
		AgeRating:     m.AgeRating,
		Description:   m.Description,
		Directors:     []string(m.Directors),
		Cast:          []string(m.Cast),
		Trailer:       m.Trailer,
		Poster:        m.Poster,
		Status:        m.Status,
		Subtitles:     m.Subtitles,
	}
	if t, ok := biz.ParseDateTime(m.ReleaseDate, loc); ok {
		out.ReleaseDate = t
	}
	return out
}

func moviesToBiz(ms []Movie, loc *time.Location) []*biz.Movie {
	out := make([]*biz.Movie, 0, len(ms))
	for i := range ms {
		out = append(out, movieToBiz(&ms[i], loc))
	}
	return out
}

func cinemaToBiz(c *Cinema) *biz.Cinema {
	return &biz.Cinema{
		ID:        string(c.ID),
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		Phone:     c.Phone,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func cinemasToBiz(cs []Cinema) []*biz.Cinema {
	out := make([]*biz.Cinema, 0, len(cs))
	for i := range cs {
		out = append(out, cinemaToBiz(&cs[i]))
	}
	return out
}

func roomToBiz(r *Room) *biz.Room {
	return &biz.Room{
		ID:         string(r.ID),
		CinemaID:   string(r.CinemaID),
		Name:       r.Name,
		Type:       r.Type,
		TotalSeats: r.TotalSeats,
	}
}

func showtimeToBiz(s *Showtime, loc *time.Location) *biz.Showtime {
	out := &biz.Showtime{
		ID:            string(s.ID),
		MovieID:       string(s.MovieID),
		MovieTitle:    s.MovieTitle,
		CinemaID:      string(s.CinemaID),
		CinemaName:    s.CinemaName,
		CinemaAddress: s.CinemaAddress,
		RoomID:        string(s.RoomID),
		RoomName:      s.RoomName,
		Status:        s.Status,
		Price:         s.Price,
	}
	if t, ok := biz.ParseDateTime(s.ShowDateTime, loc); ok {
		out.StartTime = t
	}
	return out
}

func bookingToBiz(b *Booking, loc *time.Location) *biz.Booking {
	out := &biz.Booking{
		ID:               string(b.ID),
		ConfirmationCode: b.ConfirmationCode,
		ShowtimeID:       string(b.ShowtimeID),
		Status:           b.Status,
		TotalAmount:      b.TotalAmount,
		Customer: biz.Customer{
			FullName: b.CustomerInfo.FullName,
			Phone:    b.CustomerInfo.Phone,
			Email:    b.CustomerInfo.Email,
		},
		Seats: []string(b.Seats),
	}
	if t, ok := biz.ParseDateTime(b.CreatedAt, loc); ok {
		out.CreatedAt = t
	}
	return out
}

func concessionToBiz(c *Concession) *biz.Concession {
	out := &biz.Concession{
		ID:          string(c.ID),
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		ImageURL:    c.ImageURL,
		Available:   true,
	}
	if c.Available != nil {
		out.Available = *c.Available
	}
	return out
}

func concessionsToBiz(cs []Concession) []*biz.Concession {
	out := make([]*biz.Concession, 0, len(cs))
	for i := range cs {
		out = append(out, concessionToBiz(&cs[i]))
	}
	return out
}

// seatsToBiz flattens the seat status map. The id is a row letter followed by
// the seat number; holding and booked seats are both shown as reserved.
func seatsToBiz(m *SeatMap) []*biz.Seat {
	seats := make([]*biz.Seat, 0, len(m.SeatStatus))
	for id, state := range m.SeatStatus {
		seat := &biz.Seat{
			ID:     id,
			Status: collapseSeatStatus(state.Status),
			Type:   state.Type,
			Price:  state.Price,
		}
		if id != "" {
			runes := []rune(id)
			seat.Row = string(runes[0])
			seat.Number = leadingInt(string(runes[1:]))
		}
		if seat.Type == "" {
			seat.Type = defaultSeatType
		}
		if seat.Price == 0 {
			seat.Price = defaultSeatPrice
		}
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		if seats[i].Number != seats[j].Number {
			return seats[i].Number < seats[j].Number
		}
		return seats[i].ID < seats[j].ID
	})
	return seats
}

func collapseSeatStatus(status string) biz.SeatStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available":
		return biz.SeatAvailable
	case "holding", "booked":
		return biz.SeatReserved
	default:
		return biz.SeatUnavailable
	}
}

// leadingInt parses the leading decimal digits of s, 0 when there are none.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
