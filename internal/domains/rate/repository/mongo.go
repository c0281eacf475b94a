package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/rate/model"
	"giftcard-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *database.Collection[model.Rate]
}

func NewMongoRepository(coll *database.Collection[model.Rate]) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) Create(ctx context.Context, rate *model.Rate) (string, error) {
	return r.coll.Create(ctx, rate)
}

func (r *mongoRepository) List(ctx context.Context, filter model.Filter, limit int64) ([]model.Rate, error) {
	f := database.NewFilter()
	if filter.ActiveOnly {
		f = f.Eq("is_active", true)
	}
	f = f.EqIfSet("brand", filter.Brand).EqIfSet("country", filter.Country)
	return r.coll.List(ctx, f, limit)
}

func (r *mongoRepository) Update(ctx context.Context, id string, req *model.UpdateRateRequest, at time.Time) (int64, error) {
	fields := database.NewFields()
	if req.Brand != nil {
		fields = fields.Set("brand", *req.Brand)
	}
	if req.Country != nil {
		fields = fields.Set("country", *req.Country)
	}
	if req.Currency != nil {
		fields = fields.Set("currency", *req.Currency)
	}
	if req.Buy != nil {
		fields = fields.Set("buy", *req.Buy)
	}
	if req.Sell != nil {
		fields = fields.Set("sell", *req.Sell)
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
