package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/domains/trade/model"
	"giftcard-backend/internal/domains/trade/repository"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared"
)

type tradeService struct {
	repo repository.RepositoryInterface
	now  func() time.Time
}

func NewTradeService(repo repository.RepositoryInterface) ServiceInterface {
	return &tradeService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *tradeService) CreateTrade(ctx context.Context, req *model.CreateTradeRequest) (*model.CreateTradeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	trade := req.ToEntity()
	id, err := s.repo.Create(ctx, trade)
	if err != nil {
		log.Error().Err(err).Str("brand", trade.Brand).Msg("create trade failed")
		return nil, model.NewCreateError(err)
	}

	log.Info().
		Str("trade_id", id).
		Str("brand", trade.Brand).
		Str("card_currency", trade.CardCurrency).
		Float64("amount", trade.Amount).
		Msg("trade received")

	return &model.CreateTradeResponse{ID: id, Status: model.ReceivedStatus}, nil
}

func (s *tradeService) ListTrades(ctx context.Context, req *model.ListTradesRequest) ([]model.Trade, error) {
	filter := model.Filter{Email: req.Email, Status: req.Status}

	trades, err := s.repo.List(ctx, filter, shared.ResolveLimit(req.Limit))
	if err != nil {
		return nil, model.NewListError(err)
	}
	return trades, nil
}

func (s *tradeService) AdminListTrades(ctx context.Context, req *model.AdminListTradesRequest) ([]model.Trade, error) {
	trades, err := s.repo.List(ctx, model.Filter{Status: req.Status}, shared.ResolveLimit(req.Limit))
	if err != nil {
		return nil, model.NewListError(err)
	}
	return trades, nil
}

func (s *tradeService) UpdateTrade(ctx context.Context, id string, req *model.UpdateTradeRequest) (int64, error) {
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
	return updated, nil
}

func (s *tradeService) CountTrades(ctx context.Context, status string) (int64, error) {
	n, err := s.repo.Count(ctx, model.Filter{Status: status})
	if err != nil {
		return 0, model.NewCountError(err)
	}
	return n, nil
}
