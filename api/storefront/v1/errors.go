package v1

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// Error reasons of the storefront API.
const (
	ErrorReason_MOVIE_NOT_FOUND      = "MOVIE_NOT_FOUND"
	ErrorReason_NOT_FOUND            = "NOT_FOUND"
	ErrorReason_UPSTREAM_REJECTED    = "UPSTREAM_REJECTED"
	ErrorReason_UPSTREAM_UNREACHABLE = "UPSTREAM_UNREACHABLE"
	ErrorReason_INVALID_REQUEST      = "INVALID_REQUEST"
	ErrorReason_INVALID_ARGUMENT     = "INVALID_ARGUMENT"
)

func IsMovieNotFound(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_MOVIE_NOT_FOUND && e.Code == 404
}

func ErrorMovieNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_MOVIE_NOT_FOUND, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_NOT_FOUND && e.Code == 404
}

func ErrorNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_NOT_FOUND, fmt.Sprintf(format, args...))
}

func IsUpstreamRejected(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_UPSTREAM_REJECTED
}

// ErrorUpstreamRejected answers with the status the cinema API answered with.
func ErrorUpstreamRejected(code int, format string, args ...interface{}) *errors.Error {
	return errors.New(code, ErrorReason_UPSTREAM_REJECTED, fmt.Sprintf(format, args...))
}

func IsUpstreamUnreachable(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_UPSTREAM_UNREACHABLE && e.Code == 503
}

func ErrorUpstreamUnreachable(format string, args ...interface{}) *errors.Error {
	return errors.New(503, ErrorReason_UPSTREAM_UNREACHABLE, fmt.Sprintf(format, args...))
}

func IsInvalidRequest(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_INVALID_REQUEST && e.Code == 400
}

func ErrorInvalidRequest(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReason_INVALID_REQUEST, fmt.Sprintf(format, args...))
}

func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_INVALID_ARGUMENT && e.Code == 400
}

func ErrorInvalidArgument(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReason_INVALID_ARGUMENT, fmt.Sprintf(format, args...))
}
