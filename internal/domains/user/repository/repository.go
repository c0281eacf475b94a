package repository

import (
	"context"

	"giftcard-backend/internal/domains/user/model"
	"giftcard-backend/internal/infrastructure/database"
)

type RepositoryInterface interface {
	Create(ctx context.Context, user *model.User) (string, error)
	Count(ctx context.Context) (int64, error)
}

type mongoRepository struct {
	coll *database.Collection[model.User]
}

func NewMongoRepository(coll *database.Collection[model.User]) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) Create(ctx context.Context, user *model.User) (string, error) {
	return r.coll.Create(ctx, user)
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx, database.NewFilter())
}
