package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/repository"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// CartService menangani keranjang pelanggan yang belum di-checkout
type CartService struct {
	store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{store: store}
}

// GetCart returns the cart with its totals. An unknown cart ID is an empty cart.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	return loadCart(ctx, s.store.Carts(), cartID)
}

// AddToCart adds one cup of menuID. A line that already exists is incremented.
// The add is refused when the stock left after what is already in the cart is zero.
func (s *CartService) AddToCart(ctx context.Context, cartID, menuID string) (*models.Cart, error) {
	item, err := s.store.Catalog().FindMenuItem(ctx, menuID)
	if err != nil {
		return nil, err
	}

	lines, err := s.store.Carts().LoadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	var line *models.CartItem
	for i := range lines {
		if lines[i].MenuID == menuID {
			line = &lines[i]
			break
		}
	}

	inCart := 0
	if line != nil {
		inCart = line.Quantity
	}
	if item.Stock-inCart <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfStock, item.Name)
	}

	if line != nil {
		line.Quantity++
	} else {
		line = &models.CartItem{
			CartID:   cartID,
			MenuID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
			Image:    item.Image,
		}
	}

	if err := s.store.Carts().SaveCartItem(ctx, line); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{"cart_id": cartID, "menu_id": menuID, "quantity": line.Quantity}).Info("added to cart")
	return s.GetCart(ctx, cartID)
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, menuID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, menuID)
	}

	lines, err := s.store.Carts().LoadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].MenuID != menuID {
			continue
		}
		lines[i].Quantity = quantity
		if err := s.store.Carts().SaveCartItem(ctx, &lines[i]); err != nil {
			return nil, err
		}
		return s.GetCart(ctx, cartID)
	}
	return nil, ErrCartItemNotFound
}

// RemoveItem deletes a line. Removing a missing line is not an error.
func (s *CartService) RemoveItem(ctx context.Context, cartID, menuID string) (*models.Cart, error) {
	if err := s.store.Carts().DeleteCartItem(ctx, cartID, menuID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, cartID)
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	return s.store.Carts().ClearCart(ctx, cartID)
}

func loadCart(ctx context.Context, carts repository.CartStore, cartID string) (*models.Cart, error) {
	lines, err := carts.LoadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	qty, total := CartTotals(lines)
	return &models.Cart{ID: cartID, Items: lines, TotalQuantity: qty, Total: total}, nil
}

// RemainingStock returns the menu with every stock reduced by what the cart already holds.
func RemainingStock(items []models.MenuItem, cart *models.Cart) []models.MenuItem {
	if cart == nil || cart.IsEmpty() {
		return items
	}
	lines := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		lines = append(lines, line.OrderItem())
	}
	return UpdateStockAfterOrder(items, lines)
}
