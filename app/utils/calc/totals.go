package calc

import (
	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/shopspring/decimal"
)

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func Subtotal(items []models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// CartTotals computes the pricing of items in a single pass: gross sum, optional
// discount, then tax on the discounted subtotal.
func CartTotals(items []models.LineItem, discount *models.Discount, rate decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	if discount != nil {
		subtotal = ApplyDiscount(subtotal, discount.Percent)
	}
	tax := CalculateTax(subtotal, rate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    CalculateGrandTotal(subtotal, tax),
	}
}
