package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"giftcard-backend/internal/domains/admin/model"
	trademodel "giftcard-backend/internal/domains/trade/model"
)

type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

type GiftcardCounter interface {
	CountGiftcards(ctx context.Context) (int64, error)
}

type RateCounter interface {
	CountRates(ctx context.Context) (int64, error)
}

// TradeCounter counts all trades for an empty status, otherwise only that status.
type TradeCounter interface {
	CountTrades(ctx context.Context, status string) (int64, error)
}

type ServiceInterface interface {
	Summary(ctx context.Context) (*model.SummaryResponse, error)
}

type adminService struct {
	users     UserCounter
	giftcards GiftcardCounter
	rates     RateCounter
	trades    TradeCounter
}

func NewAdminService(users UserCounter, giftcards GiftcardCounter, rates RateCounter, trades TradeCounter) ServiceInterface {
	return &adminService{
		users:     users,
		giftcards: giftcards,
		rates:     rates,
		trades:    trades,
	}
}

// Summary runs the five counts concurrently and fails on the first error.
func (s *adminService) Summary(ctx context.Context) (*model.SummaryResponse, error) {
	var out model.SummaryResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Users, err = s.users.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Giftcards, err = s.giftcards.CountGiftcards(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Rates, err = s.rates.CountRates(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Trades, err = s.trades.CountTrades(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		out.PendingTrades, err = s.trades.CountTrades(gctx, trademodel.StatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
