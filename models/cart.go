package models

import "time"

// CartItem is one line of a customer's unsubmitted order. CartID comes from the coffee_cart cookie.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_menu" json:"-"`
	MenuID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_menu" json:"menu_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Subtotal returns price x quantity.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// OrderItem copies the cart line into an order line.
func (i CartItem) OrderItem() OrderItem {
	return OrderItem{
		MenuID:   i.MenuID,
		Name:     i.Name,
		Price:    i.Price,
		Quantity: i.Quantity,
		Image:    i.Image,
	}
}

// Cart is the view of a cart with its derived totals.
type Cart struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	Total         int64      `json:"total"`
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
