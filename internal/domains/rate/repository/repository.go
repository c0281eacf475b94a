package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/rate/model"
)

// RepositoryInterface defines data access for rates.
type RepositoryInterface interface {
	Create(ctx context.Context, rate *model.Rate) (string, error)
	List(ctx context.Context, filter model.Filter, limit int64) ([]model.Rate, error)
	Update(ctx context.Context, id string, req *model.UpdateRateRequest, at time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}
