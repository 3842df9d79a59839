package models

import "time"

// MenuItem is a drink on the catalog. Stock is the number of cups that can still be sold.
type MenuItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"type:varchar(255); not null" json:"name"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	Position    int       `gorm:"not null;default:0;index" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// Stock levels, dipakai untuk badge warna di menu dan halaman stok
const (
	StockLevelOut  = "out"
	StockLevelLow  = "low"
	StockLevelHigh = "high"
)

// StockLevel returns out (habis), low (1..5) or high (>5).
func (m MenuItem) StockLevel() string {
	switch {
	case m.Stock <= 0:
		return StockLevelOut
	case m.Stock <= 5:
		return StockLevelLow
	default:
		return StockLevelHigh
	}
}

// IsAvailable reports whether at least one cup is left.
func (m MenuItem) IsAvailable() bool {
	return m.Stock > 0
}

// IsLimited -> badge "Limited!" di kartu menu
func (m MenuItem) IsLimited() bool {
	return m.Stock > 0 && m.Stock <= 3
}
