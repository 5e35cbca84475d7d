package seeders

import (
	"context"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/shopspring/decimal"
)

const sampleAddress = "123 Main St, Anytown, USA"

func line(id, name, price string, qty int) models.LineItem {
	return models.LineItem{ID: id, Name: name, Price: decimal.RequireFromString(price), Quantity: qty}
}

func sampleOrder(id, date, clock, subtotal, tax, total string, items ...models.LineItem) models.Order {
	return models.Order{
		ID:              id,
		Date:            date,
		Time:            clock,
		Status:          models.OrderStatusDelivered,
		Items:           items,
		Subtotal:        decimal.RequireFromString(subtotal),
		Tax:             decimal.RequireFromString(tax),
		Total:           decimal.RequireFromString(total),
		DeliveryAddress: sampleAddress,
	}
}

// SampleOrders is the history shown to a first-time visitor, newest first.
func SampleOrders() []models.Order {
	return []models.Order{
		sampleOrder("ORD-2023-001", "2023-11-15", "19:30", "90.95", "7.50", "98.45",
			line("m1", "Grilled Salmon", "28.99", 2),
			line("s1", "Caesar Salad", "12.99", 1),
			line("d1", "Chocolate Fondant", "9.99", 2),
		),
		sampleOrder("ORD-2023-002", "2023-11-08", "20:15", "43.98", "3.63", "47.61",
			line("m2", "Beef Tenderloin", "34.99", 1),
			line("s2", "Soup of the Day", "8.99", 1),
		),
		sampleOrder("ORD-2023-003", "2023-10-25", "18:45", "31.98", "2.64", "34.62",
			line("m3", "Vegetable Risotto", "22.99", 1),
			line("d2", "Crème Brûlée", "8.99", 1),
		),
	}
}

func SeedOrderHistory(ctx context.Context, repo repositories.OrderHistoryRepository) (bool, error) {
	return repo.Seed(ctx, SampleOrders())
}
