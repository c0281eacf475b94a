package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/domains/user/model"
	"giftcard-backend/internal/domains/user/repository"
)

type ServiceInterface interface {
	// CreateUser validates and stores a profile; is_verified defaults to false
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (string, error)

	CountUsers(ctx context.Context) (int64, error)
}

type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return "", model.NewCreateError(err)
	}

	log.Info().Str("user_id", id).Msg("user created")
	return id, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, model.NewCountError(err)
	}
	return n, nil
}
