package models

import "time"

// OrderStatus hanya tiga nilai: PENDING -> PROSES -> SUKSES (admin bebas memilih)
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusProses  OrderStatus = "PROSES"
	OrderStatusSukses  OrderStatus = "SUKSES"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusProses, OrderStatusSukses}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	SN              string      `gorm:"primaryKey;type:varchar(20)" json:"sn"`
	Items           []OrderItem `gorm:"foreignKey:OrderSN;references:SN;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Total           int64       `gorm:"not null;default:0" json:"total"`
	Status          OrderStatus `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	WhatsAppMessage string      `gorm:"type:text" json:"whatsapp_message"`
	CreatedAt       time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

// ItemCount -> jumlah baris item (bukan jumlah cup)
func (o Order) ItemCount() int {
	return len(o.Items)
}
