package services

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-restaurant/app/db/seeders"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"go.uber.org/zap"
)

// OrderService is the read side of the order history log.
type OrderService struct {
	orders repositories.OrderHistoryRepository
	logger *zap.Logger
}

func NewOrderService(orders repositories.OrderHistoryRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger.Named("orders")}
}

// History returns the log newest first. A first-time visitor gets the sample
// history; an unreadable log falls back to the samples without overwriting it.
func (s *OrderService) History(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	switch {
	case err == nil:
		return orders, nil
	case errors.Is(err, repositories.ErrKeyNotFound):
		if _, err := seeders.SeedOrderHistory(ctx, s.orders); err != nil {
			return nil, err
		}
		s.logger.Info("seeded sample order history")
		return seeders.SampleOrders(), nil
	case errors.Is(err, repositories.ErrMalformed):
		s.logger.Warn("order history unreadable, showing samples", zap.Error(err))
		return seeders.SampleOrders(), nil
	default:
		return nil, err
	}
}

func (s *OrderService) Find(ctx context.Context, id string) (models.Order, bool, error) {
	orders, err := s.History(ctx)
	if err != nil {
		return models.Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true, nil
		}
	}
	return models.Order{}, false, nil
}
