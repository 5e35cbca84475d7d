package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Rakhulsr/go-restaurant/app/helpers"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCustomer    = errors.New("invalid customer details")
	ErrInvalidReservation = errors.New("invalid reservation details")
)

// ValidationError carries per-field messages for rejected input. Kind is the
// sentinel it unwraps to.
type ValidationError struct {
	Kind   error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// validationError maps validator failures to a ValidationError of kind.
func validationError(kind, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &ValidationError{Kind: kind, Fields: helpers.FormatValidationErrors(verrs)}
	}
	return fmt.Errorf("%w: %v", kind, err)
}

const maxOrderIDAttempts = 3

type CheckoutService struct {
	cart     *CartService
	orders   repositories.OrderHistoryRepository
	validate *validator.Validate
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewCheckoutService(cart *CartService, orders repositories.OrderHistoryRepository, notifier Notifier, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		orders:   orders,
		validate: helpers.NewValidator(),
		notifier: notifier,
		logger:   logger.Named("checkout"),
		now:      time.Now,
	}
}

// Submit turns the current cart into an order, records it at the head of the
// order history, then clears and closes the cart. An empty cart still produces a
// zero-total order; callers are expected to block that earlier.
func (s *CheckoutService) Submit(ctx context.Context, customer models.Customer) (models.Order, error) {
	if err := s.validate.Struct(customer); err != nil {
		return models.Order{}, validationError(ErrInvalidCustomer, err)
	}

	var placed models.Order
	err := s.cart.Checkout(ctx, func(snapshot models.Cart) error {
		order, err := s.record(ctx, snapshot, customer)
		if err != nil {
			return err
		}
		placed = order
		return nil
	})
	if err != nil && placed.ID == "" {
		return models.Order{}, err
	}
	if err != nil {
		// The order is recorded; only the cart write failed.
		s.logger.Warn("order placed but cart reset was not saved", zap.String("order_id", placed.ID), zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order_id", placed.ID),
		zap.Int("items", len(placed.Items)),
		zap.Stringer("total", placed.Total),
	)
	if s.notifier != nil {
		s.notifier.Notify(fmt.Sprintf("Order %s placed", placed.ID), SeveritySuccess)
	}
	return placed, nil
}

func (s *CheckoutService) record(ctx context.Context, snapshot models.Cart, customer models.Customer) (models.Order, error) {
	now := s.now()
	c := customer
	order := models.Order{
		Date:            now.Format("2006-01-02"),
		Time:            now.Format("15:04"),
		Status:          models.OrderStatusProcessing,
		Items:           snapshot.Items,
		Subtotal:        snapshot.Subtotal,
		Tax:             snapshot.Tax,
		Total:           snapshot.Total,
		Discount:        snapshot.Discount,
		DeliveryAddress: customer.Address,
		Customer:        &c,
	}

	for attempt := 1; ; attempt++ {
		order.ID = NewOrderID(now)
		err := s.orders.Prepend(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateOrder) || attempt == maxOrderIDAttempts {
			return models.Order{}, fmt.Errorf("failed to record order: %w", err)
		}
		s.logger.Warn("order id collision, retrying", zap.String("order_id", order.ID))
	}
}

// NewOrderID builds ORD-<year>-<unix millis, base36>-<random suffix>.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s-%s", now.Year(), strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)), suffix)
}
