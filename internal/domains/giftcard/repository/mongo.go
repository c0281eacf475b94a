package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/giftcard/model"
	"giftcard-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *database.Collection[model.Giftcard]
}

func NewMongoRepository(coll *database.Collection[model.Giftcard]) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) Create(ctx context.Context, card *model.Giftcard) (string, error) {
	return r.coll.Create(ctx, card)
}

func (r *mongoRepository) List(ctx context.Context, filter model.Filter, limit int64) ([]model.Giftcard, error) {
	f := database.NewFilter()
	if filter.ActiveOnly {
		f = f.Eq("is_active", true)
	}
	return r.coll.List(ctx, f, limit)
}

func (r *mongoRepository) Update(ctx context.Context, id string, req *model.UpdateGiftcardRequest, at time.Time) (int64, error) {
	fields := database.NewFields()
	if req.Brand != nil {
		fields = fields.Set("brand", *req.Brand)
	}
	if req.Country != nil {
		fields = fields.Set("country", *req.Country)
	}
	if req.Notes != nil {
		fields = fields.Set("notes", *req.Notes)
	}
	if req.IsActive != nil {
		fields = fields.Set("is_active", *req.IsActive)
	}
	if !fields.Empty() {
		fields = fields.Set("updated_at", at)
	}
	return r.coll.Update(ctx, id, fields)
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx, database.NewFilter())
}
