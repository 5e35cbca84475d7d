package seeders

import (
	"strings"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/shopspring/decimal"
)

const (
	CategoryStarters   = "starters"
	CategoryMainCourse = "mainCourse"
	CategoryDesserts   = "desserts"
	CategorySpecials   = "specials"
)

func menuItem(id, name, price, category, description string, vegetarian bool, allergens ...string) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: description,
		Category:    category,
		Vegetarian:  vegetarian,
		Allergens:   allergens,
	}
}

var menu = []models.MenuItem{
	menuItem("starter1", "Caesar Salad", "12.99", CategoryStarters, "Fresh romaine lettuce, croutons, parmesan", true, "dairy", "gluten"),
	menuItem("s2", "Soup of the Day", "8.99", CategoryStarters, "Chef's special preparation, ask your server for today's selection", false, "varies"),
	menuItem("s3", "Bruschetta", "10.99", CategoryStarters, "Grilled bread rubbed with garlic and topped with diced tomatoes, fresh basil, and olive oil", true, "gluten"),
	menuItem("s4", "Calamari", "14.99", CategoryStarters, "Lightly fried squid served with marinara sauce and lemon wedges", false, "gluten", "seafood"),

	menuItem("m1", "Grilled Salmon", "28.99", CategoryMainCourse, "Fresh Atlantic salmon with seasonal vegetables and lemon butter sauce", false, "fish", "dairy"),
	menuItem("m2", "Beef Tenderloin", "34.99", CategoryMainCourse, "8oz tenderloin with mushroom sauce, garlic mashed potatoes, and roasted vegetables", false, "dairy"),
	menuItem("m3", "Vegetable Risotto", "22.99", CategoryMainCourse, "Creamy Arborio rice with seasonal vegetables, white wine, and parmesan cheese", true, "dairy"),
	menuItem("m4", "Chicken Parmesan", "24.99", CategoryMainCourse, "Breaded chicken breast topped with marinara sauce and mozzarella, served with spaghetti", false, "gluten", "dairy"),

	menuItem("d1", "Chocolate Fondant", "9.99", CategoryDesserts, "Warm chocolate cake with a molten center, served with vanilla ice cream", true, "dairy", "gluten", "eggs"),
	menuItem("d2", "Crème Brûlée", "8.99", CategoryDesserts, "Classic French custard with caramelized sugar top", true, "dairy", "eggs"),
	menuItem("d3", "Tiramisu", "10.99", CategoryDesserts, "Coffee-soaked ladyfingers layered with mascarpone cream and dusted with cocoa", true, "dairy", "gluten", "eggs"),
	menuItem("d4", "Seasonal Fruit Tart", "11.99", CategoryDesserts, "Buttery pastry shell filled with vanilla custard and topped with fresh seasonal fruits", true, "dairy", "gluten", "eggs"),

	// Weekly specials are sold at list price; the advertised offer is display-only.
	menuItem("special1", "Chef's Special Pasta", "24.99", CategorySpecials, "Handmade pasta with seasonal ingredients and truffle oil", false),
	menuItem("special2", "Weekend Brunch Set", "29.99", CategorySpecials, "Complete brunch with eggs benedict, fresh juice, and pastries", false),
	menuItem("special3", "Seafood Platter", "39.99", CategorySpecials, "Fresh selection of seafood including oysters, shrimp, and crab", false),
}

func Menu() []models.MenuItem {
	out := make([]models.MenuItem, len(menu))
	copy(out, menu)
	return out
}

func MenuByCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, m := range menu {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

func FindMenuItem(id string) (models.MenuItem, bool) {
	for _, m := range menu {
		if m.ID == id {
			return m, true
		}
	}
	return models.MenuItem{}, false
}
