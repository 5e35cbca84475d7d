package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-restaurant/app/helpers"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxReservationIDAttempts = 3

// ReservationService books tables. It reads the cart for an optional pre-order
// but never changes it.
type ReservationService struct {
	repo     repositories.ReservationRepository
	cart     *CartService
	validate *validator.Validate
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewReservationService(repo repositories.ReservationRepository, cart *CartService, notifier Notifier, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		repo:     repo,
		cart:     cart,
		validate: helpers.NewValidator(),
		notifier: notifier,
		logger:   logger.Named("reservations"),
		now:      time.Now,
	}
}

// Reserve validates r, attaches a snapshot of the cart when preOrder is set and
// records the booking.
func (s *ReservationService) Reserve(ctx context.Context, r models.Reservation, preOrder bool) (models.Reservation, error) {
	if err := s.validate.Struct(r); err != nil {
		return models.Reservation{}, validationError(ErrInvalidReservation, err)
	}

	r.PreOrder = []models.LineItem{}
	r.PreOrderTotal = decimal.Zero
	if preOrder {
		snapshot := s.cart.State()
		r.PreOrder = snapshot.Items
		r.PreOrderTotal = snapshot.Total
	}

	now := s.now()
	for attempt := 0; ; attempt++ {
		r.ID = fmt.Sprintf("RES-%d", now.UnixMilli()+int64(attempt))
		err := s.repo.Append(ctx, r)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrDuplicateReservation) || attempt+1 == maxReservationIDAttempts {
			return models.Reservation{}, fmt.Errorf("failed to record reservation: %w", err)
		}
	}

	s.logger.Info("reservation recorded",
		zap.String("reservation_id", r.ID),
		zap.String("date", r.Date),
		zap.String("time", r.Time),
		zap.Int("guests", r.Guests),
		zap.Int("pre_order_items", len(r.PreOrder)),
	)
	if s.notifier != nil {
		s.notifier.Notify("Reservation confirmed! We look forward to serving you.", SeveritySuccess)
	}
	return r, nil
}

// List returns bookings oldest first. A missing or unreadable list is empty.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := s.repo.List(ctx)
	switch {
	case err == nil:
		return reservations, nil
	case errors.Is(err, repositories.ErrKeyNotFound):
		return []models.Reservation{}, nil
	case errors.Is(err, repositories.ErrMalformed):
		s.logger.Warn("reservations unreadable", zap.Error(err))
		return []models.Reservation{}, nil
	default:
		return nil, err
	}
}
