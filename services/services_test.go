package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/pidey-coffee/database"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a fresh in-memory database with the default catalog seeded.
func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi supaya semua query melihat database memory yang sama
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	store := repository.NewStore(db)
	_, err = store.Catalog().LoadStock(context.Background())
	require.NoError(t, err)
	return store
}

type mockRelay struct {
	mock.Mock
}

func (m *mockRelay) PushMessage(topic, key string, message []byte) error {
	args := m.Called(topic, key, message)
	return args.Error(0)
}

func (m *mockRelay) Close() error {
	return nil
}

func newTestServices(t *testing.T, relay IRelayService) (*CatalogService, *CartService, *OrderService) {
	t.Helper()
	store := newTestStore(t)
	hub := kds.NewHub()
	orders := NewOrderService(store, hub, relay, OrderServiceConfig{
		ShopName:       "Pidey Coffee",
		WhatsAppNumber: "6285334679379",
		RelayTopic:     "coffee-orders",
	})
	return NewCatalogService(store, hub), NewCartService(store), orders
}
