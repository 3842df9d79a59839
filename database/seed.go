package database

import "github.com/yeremiapane/pidey-coffee/models"

// DefaultCatalog is the menu used when the catalog table is still empty.
func DefaultCatalog() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "cappuccino",
			Name:        "Cappuccino",
			Price:       25000,
			Stock:       10,
			Image:       "/images/cappuccino.jpg",
			Description: "Classic Italian coffee with steamed milk foam",
			Position:    1,
		},
		{
			ID:          "espresso",
			Name:        "Espresso",
			Price:       20000,
			Stock:       15,
			Image:       "/images/espresso.jpg",
			Description: "Strong and concentrated coffee shot",
			Position:    2,
		},
		{
			ID:          "latte",
			Name:        "Latte",
			Price:       28000,
			Stock:       8,
			Image:       "/images/latte.jpg",
			Description: "Smooth coffee with steamed milk",
			Position:    3,
		},
		{
			ID:          "americano",
			Name:        "Americano",
			Price:       22000,
			Stock:       12,
			Image:       "/images/americano.jpg",
			Description: "Espresso diluted with hot water",
			Position:    4,
		},
		{
			ID:          "mocha",
			Name:        "Mocha",
			Price:       30000,
			Stock:       6,
			Image:       "/images/mocha.jpg",
			Description: "Chocolate flavored coffee with milk",
			Position:    5,
		},
		{
			ID:          "caramel-macchiato",
			Name:        "Caramel Macchiato",
			Price:       32000,
			Stock:       5,
			Image:       "/images/caramel-macchiato.jpg",
			Description: "Vanilla syrup, espresso, and caramel",
			Position:    6,
		},
	}
}
