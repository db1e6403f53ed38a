package service

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/biz"

	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(
	NewMovieService,
	NewCinemaService,
	NewBookingService,
	NewHealthService,
)

// toServiceError maps use case failures to API errors.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, biz.ErrMovieNotFound) {
		return v1.ErrorMovieNotFound("%s", err.Error())
	}

	apiErr, ok := biz.AsAPIError(err)
	if !ok {
		return err
	}
	switch apiErr.Kind {
	case biz.ErrorRejected:
		code := apiErr.Status
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		md := map[string]string{
			"upstream_status": strconv.Itoa(apiErr.Status),
		}
		if len(apiErr.Details) > 0 {
			md["details"] = string(apiErr.Details)
		}
		return v1.ErrorUpstreamRejected(code, "%s", apiErr.Message).WithMetadata(md)
	case biz.ErrorUnreachable:
		return v1.ErrorUpstreamUnreachable("%s", apiErr.Message)
	default:
		return v1.ErrorInvalidRequest("%s", apiErr.Message)
	}
}

func parsePageQuery(page, size, status, sort string) (biz.PageQuery, error) {
	q := biz.PageQuery{Status: status, Sort: sort}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 0 {
			return q, v1.ErrorInvalidArgument("invalid page %q", page)
		}
		q.Page = &n
	}
	if size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n <= 0 {
			return q, v1.ErrorInvalidArgument("invalid size %q", size)
		}
		q.Size = &n
	}
	return q, nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, v1.ErrorInvalidArgument("invalid %s %q", name, value)
	}
	return f, nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(biz.DateLayout)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toMovie(m *biz.Movie) *v1.Movie {
	if m == nil {
		return nil
	}
	return &v1.Movie{
		Id:                   m.ID,
		Title:                m.Title,
		OriginalTitle:        m.OriginalTitle,
		Genres:               nonNil(m.Genres),
		Duration:             m.Duration,
		Country:              m.Country,
		AgeRating:            m.AgeRating,
		AgeRatingDescription: biz.AgeRatingDescription(m.AgeRating),
		Description:          m.Description,
		Directors:            nonNil(m.Directors),
		Cast:                 nonNil(m.Cast),
		ReleaseDate:          formatDay(m.ReleaseDate),
		Trailer:              m.Trailer,
		Poster:               m.Poster,
		Status:               m.Status,
		Subtitles:            m.Subtitles,
	}
}

func toMovies(ms []*biz.Movie) []*v1.Movie {
	out := make([]*v1.Movie, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMovie(m))
	}
	return out
}

func toCinema(c *biz.Cinema) *v1.Cinema {
	return &v1.Cinema{
		Id:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		Phone:     c.Phone,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func toCinemas(cs []*biz.Cinema) []*v1.Cinema {
	out := make([]*v1.Cinema, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCinema(c))
	}
	return out
}

func toRoom(r *biz.Room) *v1.Room {
	return &v1.Room{
		Id:         r.ID,
		CinemaId:   r.CinemaID,
		Name:       r.Name,
		Type:       r.Type,
		TotalSeats: r.TotalSeats,
	}
}

func toShowtime(s *biz.Showtime) *v1.Showtime {
	return &v1.Showtime{
		Id:            s.ID,
		MovieId:       s.MovieID,
		MovieTitle:    s.MovieTitle,
		CinemaId:      s.CinemaID,
		CinemaName:    s.CinemaName,
		CinemaAddress: s.CinemaAddress,
		RoomId:        s.RoomID,
		RoomName:      s.RoomName,
		StartTime:     formatTime(s.StartTime),
		Status:        s.Status,
		Price:         s.Price,
	}
}

func toShowtimes(ss []*biz.Showtime) []*v1.Showtime {
	out := make([]*v1.Showtime, 0, len(ss))
	for _, s := range ss {
		out = append(out, toShowtime(s))
	}
	return out
}

func toBooking(b *biz.Booking) *v1.Booking {
	return &v1.Booking{
		Id:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		ShowtimeId:       b.ShowtimeID,
		Status:           b.Status,
		TotalAmount:      b.TotalAmount,
		Customer: v1.Customer{
			FullName: b.Customer.FullName,
			Phone:    b.Customer.Phone,
			Email:    b.Customer.Email,
		},
		Seats:     nonNil(b.Seats),
		CreatedAt: formatTime(b.CreatedAt),
	}
}

func toConcession(c *biz.Concession) *v1.Concession {
	return &v1.Concession{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		ImageUrl:    c.ImageURL,
		Available:   c.Available,
	}
}

func toConcessions(cs []*biz.Concession) []*v1.Concession {
	out := make([]*v1.Concession, 0, len(cs))
	for _, c := range cs {
		out = append(out, toConcession(c))
	}
	return out
}
