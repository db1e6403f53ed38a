package service

import (
	"context"

	v1 "storefront/api/storefront/v1"
	"storefront/internal/biz"
)

// HealthService reports whether the cinema API is up
type HealthService struct {
	uc *biz.HealthUseCase
}

func NewHealthService(uc *biz.HealthUseCase) *HealthService {
	return &HealthService{uc: uc}
}

func (s *HealthService) Check(ctx context.Context, _ *v1.HealthRequest) (*v1.HealthReply, error) {
	status, err := s.uc.Check(ctx)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &v1.HealthReply{Status: status.Status, Database: status.Database}, nil
}
