package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/domains/rate/model"
	"giftcard-backend/internal/domains/rate/repository"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared"
	"giftcard-backend/pkg/cache"
)

type rateService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewRateService(repo repository.RepositoryInterface, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &rateService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *rateService) ListActiveRates(ctx context.Context, req *model.ListRatesRequest) ([]model.Rate, error) {
	key := req.CacheKey()

	var rates []model.Rate
	found, err := s.cache.Get(ctx, key, &rates)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if found {
		return rates, nil
	}

	filter := model.Filter{Brand: req.Brand, Country: req.Country, ActiveOnly: true}
	rates, err = s.repo.List(ctx, filter, shared.DefaultListLimit)
	if err != nil {
		return nil, model.NewListError(err)
	}

	if err := s.cache.Set(ctx, key, rates, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return rates, nil
}

func (s *rateService) CreateRate(ctx context.Context, req *model.CreateRateRequest) (*model.CreateRateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rate := req.ToEntity()
	id, err := s.repo.Create(ctx, rate)
	if err != nil {
		return nil, model.NewCreateError(err)
	}

	s.invalidate(ctx)
	log.Info().
		Str("rate_id", id).
		Str("brand", rate.Brand).
		Str("currency", rate.Currency).
		Float64("buy", rate.Buy).
		Msg("rate created")

	return &model.CreateRateResponse{ID: id}, nil
}

func (s *rateService) UpdateRate(ctx context.Context, id string, req *model.UpdateRateRequest) (int64, error) {
	if !database.IsValidID(id) {
		return 0, model.NewInvalidIDError(id)
	}
	if err := req.Validate(); err != nil {
		return 0, err
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

func (s *rateService) ListRates(ctx context.Context, req *model.AdminListRatesRequest) ([]model.Rate, error) {
	rates, err := s.repo.List(ctx, req.Filter(), shared.ResolveLimit(req.Limit))
	if err != nil {
		return nil, model.NewListError(err)
	}
	return rates, nil
}

func (s *rateService) CountRates(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, model.NewCountError(err)
	}
	return n, nil
}

// invalidate drops every cached public listing; a rate change can affect any brand/country key.
func (s *rateService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, model.ActiveRatesCachePattern); err != nil {
		log.Warn().Err(err).Str("pattern", model.ActiveRatesCachePattern).Msg("cache invalidation failed")
	}
}
