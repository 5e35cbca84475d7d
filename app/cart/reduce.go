package cart

import (
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/utils/calc"
	"github.com/shopspring/decimal"
)

// Reduce applies cmd to state and returns the next state. The input is never
// modified. changed is false when the command was a no-op.
func Reduce(state models.Cart, cmd Command, taxRate decimal.Decimal) (next models.Cart, changed bool) {
	switch c := cmd.(type) {
	case AddItem:
		return addItem(state, c.Item, taxRate)
	case RemoveItem:
		return removeItem(state, c.Item, taxRate)
	case Clear:
		next = models.EmptyCart()
		next.IsOpen = state.IsOpen
		return next, true
	case Toggle:
		next = state.Clone()
		if c.Open != nil {
			next.IsOpen = *c.Open
		} else {
			next.IsOpen = !state.IsOpen
		}
		return next, true
	case ApplyDiscount:
		next = state.Clone()
		next.Discount = &models.Discount{Code: c.Code, Percent: calc.ClampPercent(c.Percent)}
		return Recalculate(next, taxRate), true
	case Replace:
		if c.Snapshot.Items == nil {
			return state, false
		}
		return c.Snapshot.Clone(), true
	default:
		return state, false
	}
}

func addItem(state models.Cart, item *models.LineItem, taxRate decimal.Decimal) (models.Cart, bool) {
	if item == nil {
		return state, false
	}

	next := state.Clone()
	if i := next.IndexOf(item.ID); i >= 0 {
		next.Items[i].Quantity++
	} else {
		added := *item
		added.Quantity = 1
		next.Items = append(next.Items, added)
	}
	return Recalculate(next, taxRate), true
}

func removeItem(state models.Cart, item *models.LineItem, taxRate decimal.Decimal) (models.Cart, bool) {
	if item == nil {
		return state, false
	}
	i := state.IndexOf(item.ID)
	if i < 0 {
		return state, false
	}

	next := state.Clone()
	if next.Items[i].Quantity <= 1 {
		next.Items = append(next.Items[:i], next.Items[i+1:]...)
	} else {
		next.Items[i].Quantity--
	}
	return Recalculate(next, taxRate), true
}

// Recalculate refreshes subtotal, tax and total from the items and discount.
func Recalculate(state models.Cart, taxRate decimal.Decimal) models.Cart {
	totals := calc.CartTotals(state.Items, state.Discount, taxRate)
	state.Subtotal = totals.Subtotal
	state.Tax = totals.Tax
	state.Total = totals.Total
	return state
}
