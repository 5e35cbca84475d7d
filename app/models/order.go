package models

import "github.com/shopspring/decimal"

const (
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,usphone"`
	// Address doubles as the order delivery address.
	Address string `json:"address" validate:"required"`
}

// Order is written once at checkout and never mutated afterwards.
type Order struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Status          string          `json:"status"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Discount        *Discount       `json:"discount,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Customer        *Customer       `json:"customer,omitempty"`
}
