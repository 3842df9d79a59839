package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/pidey-coffee/models"
	"gorm.io/gorm"
)

// OrderRepository implements OrderStore for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line ASC")
	})
}

// LoadOrders returns every order, newest first.
func (r *OrderRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// LoadOrdersByStatus
func (r *OrderRepository) LoadOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Where("status = ?", status).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load %s orders: %w", status, err)
	}
	return orders, nil
}

// RecentOrders -> untuk ringkasan dashboard
func (r *OrderRepository) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load recent orders: %w", err)
	}
	return orders, nil
}

// SaveOrder inserts the order together with its items.
func (r *OrderRepository) SaveOrder(ctx context.Context, order *models.Order) error {
	for i := range order.Items {
		order.Items[i].Line = i + 1
	}
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("save order %s: %w", order.SN, err)
	}
	return nil
}

// UpdateOrderStatus
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, sn string, status models.OrderStatus) error {
	result := r.DB.WithContext(ctx).Model(&models.Order{}).Where("sn = ?", sn).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update order %s: %w", sn, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// FindOrderBySN
func (r *OrderRepository) FindOrderBySN(ctx context.Context, sn string) (*models.Order, error) {
	var order models.Order
	if err := r.withItems(ctx).Where("sn = ?", sn).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", sn, err)
	}
	return &order, nil
}

// ExistsSN
func (r *OrderRepository) ExistsSN(ctx context.Context, sn string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Where("sn = ?", sn).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check serial %s: %w", sn, err)
	}
	return count > 0, nil
}

// CountByStatus returns the number of orders per status. Statuses without orders map to zero.
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	var rows []struct {
		Status models.OrderStatus
		Total  int64
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	counts := make(map[models.OrderStatus]int64, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
