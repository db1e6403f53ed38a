package biz

import (
	"encoding/json"
	"errors"
)

// Custom errors
var (
	ErrMovieNotFound = errors.New("movie not found")
)

// ErrorKind tells how far a failed call to the cinema API got.
type ErrorKind int

const (
	// ErrorRejected: the server answered with a non-2xx status.
	ErrorRejected ErrorKind = iota + 1
	// ErrorUnreachable: the request was sent but no response arrived.
	ErrorUnreachable
	// ErrorLocal: the request was never sent.
	ErrorLocal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorRejected:
		return "rejected"
	case ErrorUnreachable:
		return "unreachable"
	case ErrorLocal:
		return "local"
	default:
		return "unknown"
	}
}

// APIError is the normalized failure of one cinema API call.
// Status is zero unless Kind is ErrorRejected.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	return e.Message
}

// HasStatus reports whether the server answered at all.
func (e *APIError) HasStatus() bool {
	return e.Status != 0
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
