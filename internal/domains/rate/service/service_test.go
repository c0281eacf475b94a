package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"giftcard-backend/internal/domains/rate/model"
)

const rateID = "65f1c2a9e4b0a1b2c3d4e5f6"

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, rate *model.Rate) (string, error) {
	args := m.Called(ctx, rate)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter model.Filter, limit int64) ([]model.Rate, error) {
	args := m.Called(ctx, filter, limit)
	rates, _ := args.Get(0).([]model.Rate)
	return rates, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id string, req *model.UpdateRateRequest, at time.Time) (int64, error) {
	args := m.Called(ctx, id, req, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// DeletePattern supports trailing-star patterns only.
func (m *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newService(repo *mockRepository, c *memoryCache, now time.Time) *rateService {
	svc := NewRateService(repo, c, time.Minute).(*rateService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestListActiveRates(t *testing.T) {
	ctx := context.Background()

	t.Run("filters active rates and caches per query", func(t *testing.T) {
		repo := new(mockRepository)
		c := newMemoryCache()
		want := []model.Rate{{ID: rateID, Brand: "Amazon", Currency: "NGN", Buy: 750, IsActive: true}}
		repo.On("List", ctx, model.Filter{Brand: "Amazon", ActiveOnly: true}, int64(200)).Return(want, nil).Once()
		svc := newService(repo, c, time.Now())
		req := &model.ListRatesRequest{Brand: "Amazon"}

		first, err := svc.ListActiveRates(ctx, req)
		require.NoError(t, err)
		second, err := svc.ListActiveRates(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, want, first)
		assert.Equal(t, want, second)
		assert.Contains(t, c.data, "rates:active:Amazon:")
		repo.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("separator inside a filter does not share a cache entry", func(t *testing.T) {
		repo := new(mockRepository)
		c := newMemoryCache()
		colon := []model.Rate{{ID: rateID, Brand: "a:b", Currency: "USD", Buy: 1, IsActive: true}}
		plain := []model.Rate{{ID: rateID, Brand: "a", Country: strPtr("b:"), Currency: "USD", Buy: 2, IsActive: true}}
		repo.On("List", ctx, model.Filter{Brand: "a:b", ActiveOnly: true}, int64(200)).Return(colon, nil).Once()
		repo.On("List", ctx, model.Filter{Brand: "a", Country: "b:", ActiveOnly: true}, int64(200)).Return(plain, nil).Once()
		svc := newService(repo, c, time.Now())

		first, err := svc.ListActiveRates(ctx, &model.ListRatesRequest{Brand: "a:b"})
		require.NoError(t, err)
		second, err := svc.ListActiveRates(ctx, &model.ListRatesRequest{Brand: "a", Country: "b:"})
		require.NoError(t, err)

		assert.Equal(t, colon, first)
		require.Len(t, second, 1)
		assert.Equal(t, "a", second[0].Brand)
		repo.AssertNumberOfCalls(t, "List", 2)
	})

	t.Run("empty result is cached as empty", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("List", ctx, model.Filter{Country: "GH", ActiveOnly: true}, int64(200)).Return([]model.Rate{}, nil)

		rates, err := newService(repo, newMemoryCache(), time.Now()).ListActiveRates(ctx, &model.ListRatesRequest{Country: "GH"})

		require.NoError(t, err)
		assert.Empty(t, rates)
	})
}

func TestCreateRate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	c := newMemoryCache()
	require.NoError(t, c.Set(ctx, "rates:active:Amazon:", []model.Rate{}, time.Minute))
	require.NoError(t, c.Set(ctx, "rates:active::", []model.Rate{}, time.Minute))
	require.NoError(t, c.Set(ctx, "brands:active", []string{"Amazon"}, time.Minute))
	repo.On("Create", ctx, mock.MatchedBy(func(r *model.Rate) bool {
		return r.Currency == "USD" && r.Buy == 700 && r.IsActive
	})).Return(rateID, nil)

	resp, err := newService(repo, c, time.Now()).CreateRate(ctx, &model.CreateRateRequest{
		Brand: strPtr("Amazon"),
		Buy:   floatPtr(700),
	})

	require.NoError(t, err)
	assert.Equal(t, rateID, resp.ID)
	assert.NotContains(t, c.data, "rates:active:Amazon:")
	assert.NotContains(t, c.data, "rates:active::")
	assert.Contains(t, c.data, "brands:active")
}

func TestUpdateRate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stamps updated_at", func(t *testing.T) {
		repo := new(mockRepository)
		req := &model.UpdateRateRequest{Buy: floatPtr(800)}
		repo.On("Update", ctx, rateID, req, now).Return(int64(1), nil)

		n, err := newService(repo, newMemoryCache(), now).UpdateRate(ctx, rateID, req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("zero sell is rejected", func(t *testing.T) {
		repo := new(mockRepository)

		_, err := newService(repo, newMemoryCache(), now).UpdateRate(ctx, rateID, &model.UpdateRateRequest{Sell: floatPtr(0)})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty payload is a no-op", func(t *testing.T) {
		n, err := newService(new(mockRepository), newMemoryCache(), now).UpdateRate(ctx, rateID, &model.UpdateRateRequest{})

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := newService(new(mockRepository), newMemoryCache(), now).UpdateRate(ctx, "bad", &model.UpdateRateRequest{})

		assert.ErrorIs(t, err, model.ErrInvalidRateID)
	})
}

func TestListRates(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("List", ctx, model.Filter{Brand: "Steam"}, int64(200)).Return([]model.Rate{{ID: rateID}}, nil)

	rates, err := newService(repo, newMemoryCache(), time.Now()).ListRates(ctx, &model.AdminListRatesRequest{Brand: "Steam"})

	require.NoError(t, err)
	assert.Len(t, rates, 1)
}
