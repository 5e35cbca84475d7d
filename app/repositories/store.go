package repositories

import (
	"context"
	"errors"
)

const (
	CartKey         = "restaurantCart"
	OrderHistoryKey = "orderHistory"
	PreferencesKey  = "userPreferences"
	ReservationsKey = "reservations"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable client-side storage the cart and history live in.
// Get returns ErrKeyNotFound when nothing was stored under key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var (
	_ KeyValueStore = (*MemoryStore)(nil)
	_ KeyValueStore = (*FileStore)(nil)
	_ KeyValueStore = (*RedisStore)(nil)
	_ KeyValueStore = (*GormStore)(nil)
)
