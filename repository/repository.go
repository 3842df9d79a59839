package repository

import (
	"context"
	"errors"

	"github.com/yeremiapane/pidey-coffee/models"
	"gorm.io/gorm"
)

var (
	ErrMenuNotFound  = errors.New("menu item not found")
	ErrOrderNotFound = errors.New("order not found")
)

// CatalogStore reads and writes the menu catalog (menu items with their stock).
type CatalogStore interface {
	LoadStock(ctx context.Context) ([]models.MenuItem, error)
	SaveStock(ctx context.Context, items []models.MenuItem) error
	DecrementStock(ctx context.Context, ordered map[string]int) error
	FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
}

// OrderStore reads and writes submitted orders.
type OrderStore interface {
	LoadOrders(ctx context.Context) ([]models.Order, error)
	LoadOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	RecentOrders(ctx context.Context, limit int) ([]models.Order, error)
	SaveOrder(ctx context.Context, order *models.Order) error
	UpdateOrderStatus(ctx context.Context, sn string, status models.OrderStatus) error
	FindOrderBySN(ctx context.Context, sn string) (*models.Order, error)
	ExistsSN(ctx context.Context, sn string) (bool, error)
	CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error)
}

// CartStore keeps the in-progress carts, one per cart ID.
type CartStore interface {
	LoadCart(ctx context.Context, cartID string) ([]models.CartItem, error)
	SaveCartItem(ctx context.Context, item *models.CartItem) error
	DeleteCartItem(ctx context.Context, cartID, menuID string) error
	ClearCart(ctx context.Context, cartID string) error
}

// Store groups the stores so a service can run several writes in one transaction.
type Store interface {
	Catalog() CatalogStore
	Orders() OrderStore
	Carts() CartStore
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by gorm.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Catalog() CatalogStore { return &CatalogRepository{DB: s.db} }
func (s *gormStore) Orders() OrderStore    { return &OrderRepository{DB: s.db} }
func (s *gormStore) Carts() CartStore      { return &CartRepository{DB: s.db} }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
