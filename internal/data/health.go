package data

import (
	"context"
	"net/http"

	"storefront/internal/biz"
)

type healthRepo struct {
	data *Data
}

// NewHealthRepo creates a repository for the cinema API health check
func NewHealthRepo(data *Data) biz.HealthRepo {
	return &healthRepo{data: data}
}

func (r *healthRepo) Check(ctx context.Context) (*biz.HealthStatus, error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/health")
	if err != nil {
		return nil, normalizeError(err, "Unable to check system health.")
	}
	var h Health
	r.data.decode(res, &h, "/health")
	return &biz.HealthStatus{Status: h.Status, Database: h.Database}, nil
}
