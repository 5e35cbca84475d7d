package cart

import (
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/shopspring/decimal"
)

// Command is a cart transition request. The set of variants is closed.
type Command interface {
	command()
	Name() string
}

// AddItem adds one unit of Item, appending it when the id is new.
type AddItem struct {
	Item *models.LineItem
}

// RemoveItem takes one unit of Item away and drops the line at zero.
type RemoveItem struct {
	Item *models.LineItem
}

// Clear empties the cart and drops any discount. The open flag is kept.
type Clear struct{}

// Toggle sets the open flag to *Open, or flips it when Open is nil.
type Toggle struct {
	Open *bool
}

// ApplyDiscount replaces the promo code. Percent is clamped to [0, 100].
type ApplyDiscount struct {
	Code    string
	Percent decimal.Decimal
}

// Replace adopts Snapshot wholesale. A snapshot with nil Items is ignored.
type Replace struct {
	Snapshot models.Cart
}

func (AddItem) command()       {}
func (RemoveItem) command()    {}
func (Clear) command()         {}
func (Toggle) command()        {}
func (ApplyDiscount) command() {}
func (Replace) command()       {}

func (AddItem) Name() string       { return "ADD_ITEM" }
func (RemoveItem) Name() string    { return "REMOVE_ITEM" }
func (Clear) Name() string         { return "CLEAR_CART" }
func (Toggle) Name() string        { return "TOGGLE_CART" }
func (ApplyDiscount) Name() string { return "APPLY_DISCOUNT" }
func (Replace) Name() string       { return "REPLACE_CART" }

func (c ApplyDiscount) String() string {
	return fmt.Sprintf("%s(%s, %s%%)", c.Name(), c.Code, c.Percent.String())
}

func Open(v bool) *bool {
	return &v
}
