package service

import (
	"context"

	"giftcard-backend/internal/domains/rate/model"
)

type ServiceInterface interface {
	// ListActiveRates returns active rates for the public, read through the cache
	ListActiveRates(ctx context.Context, req *model.ListRatesRequest) ([]model.Rate, error)

	CreateRate(ctx context.Context, req *model.CreateRateRequest) (*model.CreateRateResponse, error)

	// UpdateRate applies a partial update and returns the modified count
	UpdateRate(ctx context.Context, id string, req *model.UpdateRateRequest) (int64, error)

	ListRates(ctx context.Context, req *model.AdminListRatesRequest) ([]model.Rate, error)

	CountRates(ctx context.Context) (int64, error)
}
