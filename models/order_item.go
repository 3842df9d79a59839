package models

// OrderItem keeps a denormalized copy of the menu item at checkout time.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	OrderSN  string `gorm:"type:varchar(20);not null;index" json:"-"`
	Line     int    `gorm:"not null;default:0" json:"-"`
	MenuID   string `gorm:"type:varchar(64);not null" json:"menu_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Price    int64  `gorm:"not null" json:"price"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
}

// Subtotal returns price x quantity.
func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
