package models

import "github.com/shopspring/decimal"

const MaxReservationGuests = 8

// Reservation is a table booking. PreOrder is a copy of the cart items taken
// when the booking was made, and is empty unless the guest asked for it.
type Reservation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"required,usphone"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string          `json:"time" validate:"required,datetime=15:04"`
	Guests          int             `json:"guests" validate:"gte=1,lte=8"`
	SpecialRequests string          `json:"specialRequests"`
	PreOrder        []LineItem      `json:"preOrder"`
	PreOrderTotal   decimal.Decimal `json:"preOrderTotal"`
}
