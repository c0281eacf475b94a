package repository

import (
	"context"
	"time"

	"giftcard-backend/internal/domains/trade/model"
	"giftcard-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *database.Collection[model.Trade]
}

func NewMongoRepository(coll *database.Collection[model.Trade]) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) Create(ctx context.Context, trade *model.Trade) (string, error) {
	return r.coll.Create(ctx, trade)
}

func (r *mongoRepository) List(ctx context.Context, filter model.Filter, limit int64) ([]model.Trade, error) {
	return r.coll.List(ctx, toFilter(filter), limit)
}

func (r *mongoRepository) Update(ctx context.Context, id string, req *model.UpdateTradeRequest, at time.Time) (int64, error) {
	fields := database.NewFields()
	if req.Status != nil {
		fields = fields.Set("status", *req.Status)
	}
	if req.Notes != nil {
		fields = fields.Set("notes", *req.Notes)
	}
	if !fields.Empty() {
		fields = fields.Set("updated_at", at)
	}
	return r.coll.Update(ctx, id, fields)
}

func (r *mongoRepository) Count(ctx context.Context, filter model.Filter) (int64, error) {
	return r.coll.Count(ctx, toFilter(filter))
}

func toFilter(f model.Filter) database.Filter {
	return database.NewFilter().
		EqIfSet("email", f.Email).
		EqIfSet("status", f.Status)
}
