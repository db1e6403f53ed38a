package server

import (
	"context"

	"storefront/internal/data"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

// RequestIDMiddleware makes sure every request carries an X-Request-Id. The id
// is echoed in the reply and forwarded on calls to the cinema API.
func RequestIDMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}

			id := tr.RequestHeader().Get(data.RequestIDHeader)
			if id == "" {
				if v7, err := uuid.NewV7(); err == nil {
					id = v7.String()
				} else {
					id = uuid.NewString()
				}
				tr.RequestHeader().Set(data.RequestIDHeader, id)
			}
			tr.ReplyHeader().Set(data.RequestIDHeader, id)

			return handler(ctx, req)
		}
	}
}
