package models

import "github.com/shopspring/decimal"

// Discount is the promo code currently applied to the cart. Percent is on a 0-100 scale.
type Discount struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
}

// Cart is the persisted cart snapshot. Money fields are kept unrounded.
type Cart struct {
	Items    []LineItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	IsOpen   bool            `json:"isOpen"`
	Discount *Discount       `json:"discount,omitempty"`
}

func EmptyCart() Cart {
	return Cart{
		Items:    []LineItem{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}

// Clone returns a deep copy so callers never share the item slice with the owner.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]LineItem, len(c.Items))
	copy(out.Items, c.Items)
	if c.Discount != nil {
		d := *c.Discount
		out.Discount = &d
	}
	return out
}

func (c Cart) IndexOf(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
