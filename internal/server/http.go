package server

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/conf"
	"storefront/internal/service"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// envelope wraps every successful reply
type envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// errorEnvelope is the body of every failed reply
type errorEnvelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Status    int             `json:"status"`
	Reason    string          `json:"reason"`
	Details   json.RawMessage `json:"details"`
	Timestamp string          `json:"timestamp"`
}

var now = time.Now

// envelopeResponseEncoder wraps replies in the envelope. Replies that know
// their status code (e.g. created bookings) set it themselves.
func envelopeResponseEncoder(w http.ResponseWriter, r *http.Request, v interface{}) error {
	type StatusResponse interface {
		HTTPStatus() int
	}

	codec, _ := khttp.CodecForRequest(r, "Accept")
	body, err := codec.Marshal(&envelope{
		Success:   true,
		Message:   "OK",
		Data:      v,
		Timestamp: now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	if sr, ok := v.(StatusResponse); ok {
		w.WriteHeader(sr.HTTPStatus())
	}
	_, err = w.Write(body)
	return err
}

// envelopeErrorEncoder renders errors with their HTTP status and the upstream
// details carried in the error metadata.
func envelopeErrorEncoder(w http.ResponseWriter, r *http.Request, err error) {
	se := errors.FromError(err)
	reply := &errorEnvelope{
		Success:   false,
		Message:   se.Message,
		Status:    int(se.Code),
		Reason:    se.Reason,
		Timestamp: now().UTC().Format(time.RFC3339),
	}
	if d, ok := se.Metadata["details"]; ok && json.Valid([]byte(d)) {
		reply.Details = json.RawMessage(d)
	}

	codec, _ := khttp.CodecForRequest(r, "Accept")
	body, mErr := codec.Marshal(reply)
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(body)
}

// NewHTTPServer new an HTTP server.
func NewHTTPServer(
	c *conf.Server,
	movieSvc *service.MovieService,
	cinemaSvc *service.CinemaService,
	bookingSvc *service.BookingService,
	healthSvc *service.HealthService,
	logger log.Logger,
) *khttp.Server {
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			RequestIDMiddleware(),
			logging.Server(logger),
		),
		khttp.ResponseEncoder(envelopeResponseEncoder),
		khttp.ErrorEncoder(envelopeErrorEncoder),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := khttp.NewServer(opts...)
	v1.RegisterMovieServiceHTTPServer(srv, movieSvc)
	v1.RegisterCinemaServiceHTTPServer(srv, cinemaSvc)
	v1.RegisterBookingServiceHTTPServer(srv, bookingSvc)
	v1.RegisterHealthServiceHTTPServer(srv, healthSvc)
	return srv
}
