package services

import (
	"errors"

	"github.com/yeremiapane/pidey-coffee/repository"
)

var (
	ErrMenuNotFound      = repository.ErrMenuNotFound
	ErrOrderNotFound     = repository.ErrOrderNotFound
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrOutOfStock        = errors.New("menu item is out of stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidProduct    = errors.New("product name is required and price must be positive")
	ErrInvalidStock      = errors.New("stock must be a whole number")
	ErrDuplicateMenuItem = errors.New("menu item already exists")
	ErrSNRequired        = errors.New("serial number is required")
	ErrSerialExhausted   = errors.New("could not allocate a unique serial number")
	ErrInvalidCredential = errors.New("invalid admin password")
	ErrUnauthorized      = errors.New("admin session is missing or expired")
)

// pesan yang ditampilkan ke pelanggan / admin di halaman web
var userMessages = map[error]string{
	ErrMenuNotFound:      "Menu tidak ditemukan",
	ErrOrderNotFound:     "Pesanan dengan SN tersebut tidak ditemukan",
	ErrCartItemNotFound:  "Item tidak ada di keranjang",
	ErrOutOfStock:        "Stok menu habis",
	ErrEmptyCart:         "Keranjang masih kosong",
	ErrInvalidStatus:     "Status pesanan tidak valid",
	ErrInvalidProduct:    "Nama produk wajib diisi dan harga harus lebih dari 0",
	ErrInvalidStock:      "Jumlah stok harus berupa angka",
	ErrDuplicateMenuItem: "Menu dengan ID tersebut sudah ada",
	ErrSNRequired:        "Masukkan Serial Number (SN) pesanan",
	ErrSerialExhausted:   "Gagal membuat nomor pesanan, silakan coba lagi",
	ErrInvalidCredential: "Password salah!",
	ErrUnauthorized:      "Silakan login sebagai admin",
}

// UserMessage returns the Indonesian text shown for err in the web pages.
func UserMessage(err error) string {
	for target, msg := range userMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Terjadi kesalahan saat memproses permintaan. Silakan coba lagi."
}
