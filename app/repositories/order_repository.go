package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/models"
)

var ErrDuplicateOrder = errors.New("order id already recorded")

// OrderHistoryRepository is an append-only log of orders, newest first.
type OrderHistoryRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Prepend(ctx context.Context, order models.Order) error
	// Seed writes orders only when no history has been stored yet.
	Seed(ctx context.Context, orders []models.Order) (bool, error)
}

type orderHistoryRepository struct {
	store KeyValueStore
	codec Codec
}

func NewOrderHistoryRepository(store KeyValueStore, codec Codec) OrderHistoryRepository {
	return &orderHistoryRepository{store: store, codec: codec}
}

// List returns ErrKeyNotFound when nothing has been stored and wraps ErrMalformed
// when the stored log cannot be decoded.
func (r *orderHistoryRepository) List(ctx context.Context) ([]models.Order, error) {
	data, err := r.store.Get(ctx, OrderHistoryKey)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := r.codec.Unmarshal(OrderHistoryKey, data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderHistoryRepository) Prepend(ctx context.Context, order models.Order) error {
	orders, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrKeyNotFound) && !errors.Is(err, ErrMalformed) {
		return err
	}

	for _, o := range orders {
		if o.ID == order.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
		}
	}

	history := make([]models.Order, 0, len(orders)+1)
	history = append(history, order)
	history = append(history, orders...)
	return r.write(ctx, history)
}

func (r *orderHistoryRepository) Seed(ctx context.Context, orders []models.Order) (bool, error) {
	_, err := r.store.Get(ctx, OrderHistoryKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return false, err
	}
	return true, r.write(ctx, orders)
}

func (r *orderHistoryRepository) write(ctx context.Context, orders []models.Order) error {
	data, err := r.codec.Marshal(OrderHistoryKey, orders)
	if err != nil {
		return fmt.Errorf("failed to encode order history: %w", err)
	}
	return r.store.Set(ctx, OrderHistoryKey, data)
}
