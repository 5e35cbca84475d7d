package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Rakhulsr/go-restaurant/app/cart"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/Rakhulsr/go-restaurant/app/utils/calc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService owns the cart state. Every operation runs to completion, including
// the persistence write, before the next one starts.
type CartService struct {
	mu       sync.Mutex
	state    models.Cart
	taxRate  decimal.Decimal
	repo     repositories.CartRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewCartService prices the cart at taxRate as given; a zero rate means tax free.
// Callers without a configured rate pass calc.DefaultTaxRate().
func NewCartService(repo repositories.CartRepository, notifier Notifier, logger *zap.Logger, taxRate decimal.Decimal) *CartService {
	return &CartService{
		state:    models.EmptyCart(),
		taxRate:  taxRate,
		repo:     repo,
		notifier: notifier,
		logger:   logger.Named("cart"),
	}
}

// Load restores the persisted cart. A snapshot is adopted only when it decodes and
// holds at least one item; anything else leaves the empty cart in place.
func (s *CartService) Load(ctx context.Context) models.Cart {
	snapshot, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repositories.ErrKeyNotFound):
		s.logger.Debug("no saved cart")
		return s.State()
	case err != nil:
		s.logger.Warn("discarding saved cart", zap.Error(err))
		return s.State()
	case len(snapshot.Items) == 0:
		return s.State()
	}

	state, err := s.ReplaceState(ctx, snapshot)
	if err != nil {
		s.logger.Warn("restored cart could not be written back", zap.Error(err))
	}
	s.logger.Info("cart restored", zap.Int("items", len(state.Items)))
	return state
}

func (s *CartService) AddItem(ctx context.Context, item *models.LineItem) (models.Cart, error) {
	return s.Dispatch(ctx, cart.AddItem{Item: item})
}

func (s *CartService) RemoveItem(ctx context.Context, item *models.LineItem) (models.Cart, error) {
	return s.Dispatch(ctx, cart.RemoveItem{Item: item})
}

func (s *CartService) Clear(ctx context.Context) (models.Cart, error) {
	return s.Dispatch(ctx, cart.Clear{})
}

// Toggle sets the drawer flag to *open, or flips it when open is nil.
func (s *CartService) Toggle(ctx context.Context, open *bool) (models.Cart, error) {
	return s.Dispatch(ctx, cart.Toggle{Open: open})
}

func (s *CartService) ApplyDiscount(ctx context.Context, code string, percent decimal.Decimal) (models.Cart, error) {
	return s.Dispatch(ctx, cart.ApplyDiscount{Code: code, Percent: percent})
}

func (s *CartService) ReplaceState(ctx context.Context, snapshot models.Cart) (models.Cart, error) {
	return s.Dispatch(ctx, cart.Replace{Snapshot: snapshot})
}

// Dispatch runs cmd through the reducer and persists the result. A failed write
// is returned, but the in-memory transition is kept.
func (s *CartService) Dispatch(ctx context.Context, cmd cart.Command) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, cmd)
}

// Checkout hands fn a snapshot of the cart; when fn succeeds the cart is cleared
// and closed before any other operation can run.
func (s *CartService) Checkout(ctx context.Context, fn func(snapshot models.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.state.Clone()); err != nil {
		return err
	}
	if _, err := s.apply(ctx, cart.Clear{}); err != nil {
		return err
	}
	_, err := s.apply(ctx, cart.Toggle{Open: cart.Open(false)})
	return err
}

func (s *CartService) apply(ctx context.Context, cmd cart.Command) (models.Cart, error) {
	prev := s.state
	next, changed := cart.Reduce(prev, cmd, s.taxRate)
	if !changed {
		s.logger.Debug("ignored command", zap.String("command", cmd.Name()))
		return s.state.Clone(), nil
	}
	s.state = next

	var saveErr error
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("failed to save cart", zap.String("command", cmd.Name()), zap.Error(err))
		saveErr = fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug("cart updated",
		zap.String("command", cmd.Name()),
		zap.Int("items", len(next.Items)),
		zap.Stringer("subtotal", next.Subtotal),
		zap.Stringer("total", next.Total),
	)
	s.announce(cmd, prev)

	return next.Clone(), saveErr
}

func (s *CartService) announce(cmd cart.Command, prev models.Cart) {
	if s.notifier == nil {
		return
	}
	switch c := cmd.(type) {
	case cart.AddItem:
		s.notifier.Notify(fmt.Sprintf("%s added to cart", displayName(c.Item, prev)), SeveritySuccess)
	case cart.RemoveItem:
		s.notifier.Notify(fmt.Sprintf("%s removed from cart", displayName(c.Item, prev)), SeverityInfo)
	case cart.Clear:
		s.notifier.Notify("Cart cleared", SeverityInfo)
	case cart.ApplyDiscount:
		s.notifier.Notify(fmt.Sprintf("Discount %s applied (%s%% off)", c.Code, calc.ClampPercent(c.Percent).String()), SeveritySuccess)
	}
}

// displayName prefers the name already in the cart since removal requests may
// carry only an id.
func displayName(item *models.LineItem, prev models.Cart) string {
	if i := prev.IndexOf(item.ID); i >= 0 && prev.Items[i].Name != "" {
		return prev.Items[i].Name
	}
	if item.Name != "" {
		return item.Name
	}
	return item.ID
}

func (s *CartService) State() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ItemCount()
}

func (s *CartService) TaxRate() decimal.Decimal {
	return s.taxRate
}
