package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/domains/giftcard/model"
	"giftcard-backend/internal/domains/giftcard/repository"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared"
	"giftcard-backend/pkg/cache"
)

// ActiveBrandsCacheKey holds the public brand list.
const ActiveBrandsCacheKey = "brands:active"

type giftcardService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewGiftcardService(repo repository.RepositoryInterface, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &giftcardService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *giftcardService) CreateGiftcard(ctx context.Context, req *model.CreateGiftcardRequest) (*model.CreateGiftcardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	card := req.ToEntity()
	id, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, model.NewCreateError(err)
	}

	s.invalidate(ctx)
	log.Info().Str("giftcard_id", id).Str("brand", card.Brand).Msg("giftcard created")

	return &model.CreateGiftcardResponse{ID: id}, nil
}

func (s *giftcardService) UpdateGiftcard(ctx context.Context, id string, req *model.UpdateGiftcardRequest) (int64, error) {
	if !database.IsValidID(id) {
		return 0, model.NewInvalidIDError(id)
	}
	if req.IsEmpty() {
		return 0, nil
	}

	updated, err := s.repo.Update(ctx, id, req, s.now())
	if err != nil {
		if errors.Is(err, database.ErrInvalidID) {
			return 0, model.NewInvalidIDError(id)
		}
		return 0, model.NewUpdateError(err)
	}

	if updated > 0 {
		s.invalidate(ctx)
	}
	return updated, nil
}

func (s *giftcardService) ListGiftcards(ctx context.Context, req *model.AdminListGiftcardsRequest) ([]model.Giftcard, error) {
	cards, err := s.repo.List(ctx, req.Filter(), shared.ResolveLimit(req.Limit))
	if err != nil {
		return nil, model.NewListError(err)
	}
	return cards, nil
}

func (s *giftcardService) ListActiveBrands(ctx context.Context) ([]string, error) {
	var brands []string
	found, err := s.cache.Get(ctx, ActiveBrandsCacheKey, &brands)
	if err != nil {
		log.Warn().Err(err).Str("key", ActiveBrandsCacheKey).Msg("cache read failed")
	}
	if found {
		return brands, nil
	}

	cards, err := s.repo.List(ctx, model.Filter{ActiveOnly: true}, shared.DefaultListLimit)
	if err != nil {
		return nil, model.NewListError(err)
	}
	brands = model.UniqueBrands(cards)

	if err := s.cache.Set(ctx, ActiveBrandsCacheKey, brands, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", ActiveBrandsCacheKey).Msg("cache write failed")
	}
	return brands, nil
}

func (s *giftcardService) CountGiftcards(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, model.NewCountError(err)
	}
	return n, nil
}

func (s *giftcardService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, ActiveBrandsCacheKey); err != nil {
		log.Warn().Err(err).Str("key", ActiveBrandsCacheKey).Msg("cache invalidation failed")
	}
}
