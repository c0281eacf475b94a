package service

import (
	"context"

	"giftcard-backend/internal/domains/trade/model"
)

// ServiceInterface defines the trade use cases.
type ServiceInterface interface {
	// CreateTrade validates a public submission and stores it as pending
	CreateTrade(ctx context.Context, req *model.CreateTradeRequest) (*model.CreateTradeResponse, error)

	// ListTrades returns trades filtered by optional email/status
	ListTrades(ctx context.Context, req *model.ListTradesRequest) ([]model.Trade, error)

	// AdminListTrades returns trades filtered by optional status
	AdminListTrades(ctx context.Context, req *model.AdminListTradesRequest) ([]model.Trade, error)

	// UpdateTrade applies a partial update and returns the modified count
	UpdateTrade(ctx context.Context, id string, req *model.UpdateTradeRequest) (int64, error)

	// CountTrades counts all trades, or only those with the given status
	CountTrades(ctx context.Context, status string) (int64, error)
}
