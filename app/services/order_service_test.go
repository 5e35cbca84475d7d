package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderServiceSeedsSamples(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	repo := repositories.NewOrderHistoryRepository(store, repositories.JSONCodec{})
	svc := NewOrderService(repo, zap.NewNop())

	orders, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-2023-001", orders[0].ID)

	require.NoError(t, repo.Prepend(ctx, models.Order{ID: "ORD-NEW", Items: []models.LineItem{}}))
	orders, err = svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "ORD-NEW", orders[0].ID)

	found, ok, err := svc.Find(ctx, "ORD-2023-002")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "43.98", found.Subtotal.String())

	_, ok, err = svc.Find(ctx, "ORD-404")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderServiceMalformedHistory(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repositories.OrderHistoryKey, []byte("nope")))

	svc := NewOrderService(repositories.NewOrderHistoryRepository(store, repositories.JSONCodec{}), zap.NewNop())
	orders, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	raw, err := store.Get(ctx, repositories.OrderHistoryKey)
	require.NoError(t, err)
	assert.Equal(t, "nope", string(raw))
}
