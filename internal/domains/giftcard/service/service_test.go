package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"giftcard-backend/internal/domains/giftcard/model"
	"giftcard-backend/internal/infrastructure/database"
)

const cardID = "65f1c2a9e4b0a1b2c3d4e5f6"

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, card *model.Giftcard) (string, error) {
	args := m.Called(ctx, card)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter model.Filter, limit int64) ([]model.Giftcard, error) {
	args := m.Called(ctx, filter, limit)
	cards, _ := args.Get(0).([]model.Giftcard)
	return cards, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id string, req *model.UpdateGiftcardRequest, at time.Time) (int64, error) {
	args := m.Called(ctx, id, req, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// memoryCache stores JSON like the Redis cache does.
type memoryCache struct {
	data    map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if m.failGet {
		return false, errors.New("cache down")
	}
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

func (m *memoryCache) DeletePattern(context.Context, string) error { return nil }
func (m *memoryCache) Ping(context.Context) error                  { return nil }

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newService(repo *mockRepository, c *memoryCache, now time.Time) *giftcardService {
	svc := NewGiftcardService(repo, c, time.Minute).(*giftcardService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestListActiveBrands(t *testing.T) {
	ctx := context.Background()

	t.Run("reads active cards and caches the result", func(t *testing.T) {
		repo := new(mockRepository)
		c := newMemoryCache()
		repo.On("List", ctx, model.Filter{ActiveOnly: true}, int64(200)).Return([]model.Giftcard{
			{Brand: "Steam"}, {Brand: "Amazon"}, {Brand: "Steam"},
		}, nil).Once()
		svc := newService(repo, c, time.Now())

		first, err := svc.ListActiveBrands(ctx)
		require.NoError(t, err)
		second, err := svc.ListActiveBrands(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"Amazon", "Steam"}, first)
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("cache failure falls back to storage", func(t *testing.T) {
		repo := new(mockRepository)
		c := newMemoryCache()
		c.failGet = true
		repo.On("List", ctx, model.Filter{ActiveOnly: true}, int64(200)).Return([]model.Giftcard{{Brand: "Amazon"}}, nil)

		brands, err := newService(repo, c, time.Now()).ListActiveBrands(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Amazon"}, brands)
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("List", ctx, mock.Anything, mock.Anything).Return(nil, database.ErrNotConnected)

		_, err := newService(repo, newMemoryCache(), time.Now()).ListActiveBrands(ctx)

		assert.ErrorIs(t, err, database.ErrNotConnected)
	})
}

func TestCreateGiftcardInvalidatesBrands(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	c := newMemoryCache()
	require.NoError(t, c.Set(ctx, ActiveBrandsCacheKey, []string{"Old"}, time.Minute))
	repo.On("Create", ctx, mock.MatchedBy(func(card *model.Giftcard) bool {
		return card.Brand == "Steam" && card.IsActive
	})).Return(cardID, nil)

	resp, err := newService(repo, c, time.Now()).CreateGiftcard(ctx, &model.CreateGiftcardRequest{Brand: strPtr("Steam")})

	require.NoError(t, err)
	assert.Equal(t, cardID, resp.ID)
	assert.NotContains(t, c.data, ActiveBrandsCacheKey)
}

func TestCreateGiftcardRequiresBrand(t *testing.T) {
	repo := new(mockRepository)

	_, err := newService(repo, newMemoryCache(), time.Now()).CreateGiftcard(context.Background(), &model.CreateGiftcardRequest{})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateGiftcard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	t.Run("updates and invalidates", func(t *testing.T) {
		repo := new(mockRepository)
		c := newMemoryCache()
		require.NoError(t, c.Set(ctx, ActiveBrandsCacheKey, []string{"Steam"}, time.Minute))
		req := &model.UpdateGiftcardRequest{IsActive: boolPtr(false)}
		repo.On("Update", ctx, cardID, req, now).Return(int64(1), nil)

		n, err := newService(repo, c, now).UpdateGiftcard(ctx, cardID, req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NotContains(t, c.data, ActiveBrandsCacheKey)
	})

	t.Run("empty payload is a no-op", func(t *testing.T) {
		repo := new(mockRepository)

		n, err := newService(repo, newMemoryCache(), now).UpdateGiftcard(ctx, cardID, &model.UpdateGiftcardRequest{})

		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := newService(new(mockRepository), newMemoryCache(), now).UpdateGiftcard(ctx, "123", &model.UpdateGiftcardRequest{})

		assert.ErrorIs(t, err, model.ErrInvalidGiftcardID)
	})
}

func TestListGiftcards(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("List", ctx, model.Filter{ActiveOnly: true}, int64(50)).Return([]model.Giftcard{{ID: cardID}}, nil)

	cards, err := newService(repo, newMemoryCache(), time.Now()).ListGiftcards(ctx, &model.AdminListGiftcardsRequest{
		IncludeInactive: boolPtr(false),
		Limit:           50,
	})

	require.NoError(t, err)
	assert.Len(t, cards, 1)
}
