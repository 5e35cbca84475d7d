package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Rakhulsr/go-restaurant/app/cart"
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validCustomer() models.Customer {
	return models.Customer{
		Name:    "John Doe",
		Email:   "user@example.com",
		Phone:   "555-123-4567",
		Address: "123 Main St, Anytown, USA",
	}
}

type checkoutFixture struct {
	store    *countingStore
	cart     *CartService
	history  repositories.OrderHistoryRepository
	checkout *CheckoutService
	notifier *recordingNotifier
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	store := newCountingStore()
	notifier := &recordingNotifier{}
	cartSvc := newTestCart(store, notifier)
	history := repositories.NewOrderHistoryRepository(store, repositories.JSONCodec{})
	checkout := NewCheckoutService(cartSvc, history, notifier, zap.NewNop())
	checkout.now = func() time.Time { return time.Date(2026, 10, 19, 19, 30, 5, 0, time.UTC) }
	return checkoutFixture{store: store, cart: cartSvc, history: history, checkout: checkout, notifier: notifier}
}

func TestCheckoutSubmit(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	_, _ = f.cart.Toggle(ctx, cart.Open(true))
	_, _ = f.cart.AddItem(ctx, salmon())
	_, _ = f.cart.AddItem(ctx, salmon())
	_, _ = f.cart.AddItem(ctx, soup())
	before := f.cart.State()

	order, err := f.checkout.Submit(ctx, validCustomer())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-2026-[0-9A-Z]+-[0-9A-F]{8}$`), order.ID)
	assert.Equal(t, "2026-10-19", order.Date)
	assert.Equal(t, "19:30", order.Time)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, "123 Main St, Anytown, USA", order.DeliveryAddress)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, before.Subtotal.Equal(order.Subtotal))
	assert.True(t, before.Tax.Equal(order.Tax))
	assert.True(t, before.Total.Equal(order.Total))

	state := f.cart.State()
	assert.Empty(t, state.Items)
	assert.False(t, state.IsOpen)
	assert.True(t, state.Total.IsZero())

	orders, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	assert.Contains(t, f.notifier.messages(), "Order "+order.ID+" placed")
}

func TestCheckoutNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	_, _ = f.cart.AddItem(ctx, salmon())
	first, err := f.checkout.Submit(ctx, validCustomer())
	require.NoError(t, err)

	_, _ = f.cart.AddItem(ctx, soup())
	second, err := f.checkout.Submit(ctx, validCustomer())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	orders, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestCheckoutKeepsDiscount(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	for i := 0; i < 4; i++ {
		_, _ = f.cart.AddItem(ctx, &models.LineItem{ID: "w1", Name: "Wine", Price: dec("25")})
	}
	_, _ = f.cart.ApplyDiscount(ctx, "SAVE10", dec("10"))

	order, err := f.checkout.Submit(ctx, validCustomer())
	require.NoError(t, err)
	assert.True(t, dec("90").Equal(order.Subtotal))
	assert.True(t, dec("97.425").Equal(order.Total))
	require.NotNil(t, order.Discount)
	assert.Equal(t, "SAVE10", order.Discount.Code)
	assert.Nil(t, f.cart.State().Discount)
}

func TestCheckoutEmptyCartProducesZeroOrder(t *testing.T) {
	order, err := newCheckoutFixture(t).checkout.Submit(context.Background(), validCustomer())
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}

func TestCheckoutRejectsInvalidCustomer(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	_, _ = f.cart.AddItem(ctx, salmon())

	customer := validCustomer()
	customer.Email = "not-an-email"
	customer.Phone = "12"
	customer.Address = ""

	_, err := f.checkout.Submit(ctx, customer)
	require.ErrorIs(t, err, ErrInvalidCustomer)

	var cerr *ValidationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Valid email is required", cerr.Fields["email"])
	assert.Equal(t, "Valid phone number is required", cerr.Fields["phone"])
	assert.Equal(t, "Address is required", cerr.Fields["address"])
	assert.Equal(t, "invalid customer details: address, email, phone", err.Error())

	assert.Len(t, f.cart.State().Items, 1)
	_, err = f.history.List(ctx)
	assert.ErrorIs(t, err, repositories.ErrKeyNotFound)
}

func TestCheckoutHistoryFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	_, _ = f.cart.AddItem(ctx, salmon())

	f.store.fail = errDiskFull
	_, err := f.checkout.Submit(ctx, validCustomer())
	require.ErrorIs(t, err, errDiskFull)
	assert.Len(t, f.cart.State().Items, 1)
}

func TestNewOrderIDIsUnique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewOrderID(now)
		require.False(t, seen[id], id)
		seen[id] = true
	}
}
