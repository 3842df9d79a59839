package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/pidey-coffee/models"
	"gorm.io/gorm"
)

// CartRepository implements CartStore for GORM.
type CartRepository struct {
	DB *gorm.DB
}

// NewCartRepository creates a new CartRepository instance.
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// LoadCart returns the cart lines in the order they were added.
func (r *CartRepository) LoadCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}
	return items, nil
}

// SaveCartItem creates a new line or updates an existing one.
func (r *CartRepository) SaveCartItem(ctx context.Context, item *models.CartItem) error {
	var err error
	if item.ID == 0 {
		err = r.DB.WithContext(ctx).Create(item).Error
	} else {
		err = r.DB.WithContext(ctx).Save(item).Error
	}
	if err != nil {
		return fmt.Errorf("save cart item %s/%s: %w", item.CartID, item.MenuID, err)
	}
	return nil
}

// DeleteCartItem
func (r *CartRepository) DeleteCartItem(ctx context.Context, cartID, menuID string) error {
	if err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND menu_id = ?", cartID, menuID).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("delete cart item %s/%s: %w", cartID, menuID, err)
	}
	return nil
}

// ClearCart
func (r *CartRepository) ClearCart(ctx context.Context, cartID string) error {
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart %s: %w", cartID, err)
	}
	return nil
}
