package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/giftcard/model"
)

// RepositoryInterface defines data access for giftcard brands.
type RepositoryInterface interface {
	Create(ctx context.Context, card *model.Giftcard) (string, error)
	List(ctx context.Context, filter model.Filter, limit int64) ([]model.Giftcard, error)
	Update(ctx context.Context, id string, req *model.UpdateGiftcardRequest, at time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}
