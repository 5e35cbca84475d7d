package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Vegetarian  bool            `json:"vegetarian"`
	Allergens   []string        `json:"allergens"`
}

func (m MenuItem) LineItem() *LineItem {
	return &LineItem{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Category:    m.Category,
	}
}
