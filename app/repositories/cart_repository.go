package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/models"
)

type CartRepository interface {
	Load(ctx context.Context) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
}

type cartRepository struct {
	store KeyValueStore
	codec Codec
}

func NewCartRepository(store KeyValueStore, codec Codec) CartRepository {
	return &cartRepository{store: store, codec: codec}
}

// Load returns ErrKeyNotFound when no cart was ever saved and wraps ErrMalformed
// when the stored snapshot cannot be decoded.
func (r *cartRepository) Load(ctx context.Context) (models.Cart, error) {
	data, err := r.store.Get(ctx, CartKey)
	if err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := r.codec.Unmarshal(CartKey, data, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart models.Cart) error {
	data, err := r.codec.Marshal(CartKey, cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return r.store.Set(ctx, CartKey, data)
}
