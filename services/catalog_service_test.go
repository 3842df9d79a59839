package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/pidey-coffee/models"
)

func TestListMenuSeedsDefaultCatalog(t *testing.T) {
	catalog, _, _ := newTestServices(t, nil)

	items, err := catalog.ListMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 6)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"cappuccino", "espresso", "latte", "americano", "mocha", "caramel-macchiato"}, ids)
	assert.Equal(t, int64(25000), items[0].Price)
	assert.Equal(t, 10, items[0].Stock)
	assert.Equal(t, "/images/cappuccino.jpg", items[0].Image)
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestServices(t, nil)

	item, err := catalog.AddProduct(ctx, ProductInput{Name: " Vanilla Latte ", Price: 30000, Stock: -4})
	require.NoError(t, err)
	assert.Equal(t, "vanilla-latte", item.ID)
	assert.Equal(t, "Vanilla Latte", item.Name)
	assert.Equal(t, 0, item.Stock, "negative stock is clamped")
	assert.Equal(t, "/images/vanilla-latte.jpg", item.Image)

	items, err := catalog.ListMenu(ctx)
	require.NoError(t, err)
	require.Len(t, items, 7)
	assert.Equal(t, "vanilla-latte", items[6].ID, "new products go to the end of the catalog")
}

func TestAddProductRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestServices(t, nil)

	tests := []struct {
		name  string
		input ProductInput
	}{
		{"empty name", ProductInput{Name: "   ", Price: 10000}},
		{"zero price", ProductInput{Name: "Tubruk", Price: 0}},
		{"negative price", ProductInput{Name: "Tubruk", Price: -1}},
		{"name without letters", ProductInput{Name: "!!!", Price: 10000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.AddProduct(ctx, tt.input)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}

	items, err := catalog.ListMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 6, "nothing is saved")
}

func TestAddProductRejectsDuplicate(t *testing.T) {
	catalog, _, _ := newTestServices(t, nil)

	_, err := catalog.AddProduct(context.Background(), ProductInput{Name: "Mocha", Price: 1000})
	assert.ErrorIs(t, err, ErrDuplicateMenuItem)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestServices(t, nil)

	item, err := catalog.UpdateProduct(ctx, "latte", ProductInput{Name: "Latte Besar", Price: 33000, Stock: 0, Description: "Lebih besar"})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
	assert.Equal(t, "/images/latte.jpg", item.Image, "empty image keeps the old one")

	stored, err := catalog.GetMenuItem(ctx, "latte")
	require.NoError(t, err)
	assert.Equal(t, "Latte Besar", stored.Name)
	assert.Equal(t, int64(33000), stored.Price)
	assert.Equal(t, 0, stored.Stock)
	assert.Equal(t, "Lebih besar", stored.Description)

	_, err = catalog.UpdateProduct(ctx, "latte", ProductInput{Name: "", Price: 33000})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = catalog.UpdateProduct(ctx, "teh", ProductInput{Name: "Teh", Price: 5000})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestSetAndAdjustStock(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestServices(t, nil)

	item, err := catalog.SetStock(ctx, "mocha", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Stock)

	item, err = catalog.AdjustStock(ctx, "mocha", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Stock)

	item, err = catalog.AdjustStock(ctx, "mocha", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	item, err = catalog.SetStock(ctx, "mocha", -1)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	stored, err := catalog.GetMenuItem(ctx, "mocha")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)

	_, err = catalog.SetStock(ctx, "teh", 1)
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestFilterStock(t *testing.T) {
	items := []models.MenuItem{
		{ID: "cappuccino", Name: "Cappuccino", Price: 25000, Stock: 10, Position: 1},
		{ID: "espresso", Name: "Espresso", Price: 20000, Stock: 0, Position: 2},
		{ID: "latte", Name: "Latte", Price: 28000, Stock: 4, Position: 3},
		{ID: "caramel-macchiato", Name: "Caramel Macchiato", Price: 32000, Stock: 5, Position: 4},
	}

	ids := func(items []models.MenuItem) []string {
		out := []string{}
		for _, item := range items {
			out = append(out, item.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		query StockQuery
		want  []string
	}{
		{"default keeps catalog order", StockQuery{}, []string{"cappuccino", "espresso", "latte", "caramel-macchiato"}},
		{"search is case insensitive", StockQuery{Search: "LAT"}, []string{"latte"}},
		{"search matches id", StockQuery{Search: "caramel-"}, []string{"caramel-macchiato"}},
		{"available", StockQuery{Level: "available"}, []string{"cappuccino", "latte", "caramel-macchiato"}},
		{"low", StockQuery{Level: "low"}, []string{"latte", "caramel-macchiato"}},
		{"out", StockQuery{Level: "out"}, []string{"espresso"}},
		{"sort by price", StockQuery{Sort: "price"}, []string{"espresso", "cappuccino", "latte", "caramel-macchiato"}},
		{"sort by stock desc", StockQuery{Sort: "stock", Desc: true}, []string{"cappuccino", "caramel-macchiato", "latte", "espresso"}},
		{"sort by name", StockQuery{Sort: "name"}, []string{"cappuccino", "caramel-macchiato", "espresso", "latte"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterStock(items, tt.query)))
		})
	}

	assert.Equal(t, 2, LowStockCount(items[2:]))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "caramel-macchiato", Slugify("Caramel Macchiato"))
	assert.Equal(t, "kopi-susu-gula-aren", Slugify("  Kopi Susu -- Gula Aren! "))
	assert.Equal(t, "v60", Slugify("V60"))
	assert.Equal(t, "", Slugify("!!!"))
}
