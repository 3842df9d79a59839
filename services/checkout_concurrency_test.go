package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/pidey-coffee/config"
	"github.com/yeremiapane/pidey-coffee/database"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/repository"
)

// newFileStore opens the database the way the server does, on a file in a temp dir.
func newFileStore(t *testing.T) repository.Store {
	t.Helper()

	cfg := config.Default()
	cfg.DBDSN = filepath.Join(t.TempDir(), "coffee.db")
	db, err := config.InitDB(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	store := repository.NewStore(db)
	_, err = store.Catalog().LoadStock(context.Background())
	require.NoError(t, err)
	return store
}

func TestConcurrentCheckouts(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	hub := kds.NewHub()
	catalog := NewCatalogService(store, hub)
	carts := NewCartService(store)
	orders := NewOrderService(store, hub, nil, OrderServiceConfig{ShopName: "Pidey Coffee"})

	const buyers = 8
	for i := 0; i < buyers; i++ {
		_, err := carts.AddToCart(ctx, fmt.Sprintf("cart-%d", i), "espresso")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(cartID string) {
			defer wg.Done()
			_, err := orders.PlaceOrder(ctx, cartID)
			errs <- err
		}(fmt.Sprintf("cart-%d", i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	espresso, err := catalog.GetMenuItem(ctx, "espresso")
	require.NoError(t, err)
	assert.Equal(t, 15-buyers, espresso.Stock, "every checkout takes its cup")

	placed, err := orders.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, placed, buyers)
}

func TestCheckoutKeepsAdminEditsOfOtherItems(t *testing.T) {
	ctx := context.Background()
	catalog, carts, orders := newTestServices(t, nil)

	fillCart(t, carts, "espresso")

	latte, err := catalog.GetMenuItem(ctx, "latte")
	require.NoError(t, err)
	latte.Price = 31000
	latte.Description = "Edisi musim hujan"
	require.NoError(t, orders.store.Catalog().UpdateMenuItem(ctx, latte))

	_, err = orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	stored, err := catalog.GetMenuItem(ctx, "latte")
	require.NoError(t, err)
	assert.Equal(t, int64(31000), stored.Price)
	assert.Equal(t, "Edisi musim hujan", stored.Description)
}
