package service

import (
	"context"

	"giftcard-backend/internal/domains/giftcard/model"
)

type ServiceInterface interface {
	// CreateGiftcard stores a new brand and drops the cached brand list
	CreateGiftcard(ctx context.Context, req *model.CreateGiftcardRequest) (*model.CreateGiftcardResponse, error)

	// UpdateGiftcard applies a partial update and returns the modified count
	UpdateGiftcard(ctx context.Context, id string, req *model.UpdateGiftcardRequest) (int64, error)

	// ListGiftcards returns brands for the admin listing
	ListGiftcards(ctx context.Context, req *model.AdminListGiftcardsRequest) ([]model.Giftcard, error)

	// ListActiveBrands returns the sorted distinct names of active brands
	ListActiveBrands(ctx context.Context) ([]string, error)

	CountGiftcards(ctx context.Context) (int64, error)
}
