package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/trade/model"
)

// RepositoryInterface defines data access for trades.
type RepositoryInterface interface {
	// Create inserts a trade and returns its identifier
	Create(ctx context.Context, trade *model.Trade) (string, error)

	// List returns at most limit trades matching filter
	List(ctx context.Context, filter model.Filter, limit int64) ([]model.Trade, error)

	// Update applies the non-nil fields of req and stamps updated_at
	Update(ctx context.Context, id string, req *model.UpdateTradeRequest, at time.Time) (int64, error)

	// Count returns the number of trades matching filter
	Count(ctx context.Context, filter model.Filter) (int64, error)
}
