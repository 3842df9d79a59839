package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/utils"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates parses every page and partial with the view helpers.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}

// Static serves the embedded stylesheet and images.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"rupiah":      utils.FormatRupiah,
		"thousands":   utils.FormatThousands,
		"coffeeIcon":  CoffeeIcon,
		"statusClass": StatusClass,
		"statusIcon":  StatusIcon,
		"stockClass":  StockClass,
		"dateTime":    formatDateTime,
		"subtotal":    func(price int64, qty int) int64 { return price * int64(qty) },
		"add":         func(a, b int) int { return a + b },
		"upper":       strings.ToUpper,
		"statusAtLeast": func(current, step models.OrderStatus) bool {
			return statusRank(current) >= statusRank(step)
		},
	}
}

// StatusClass -> class badge sesuai status pesanan
func StatusClass(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "badge-pending"
	case models.OrderStatusProses:
		return "badge-proses"
	case models.OrderStatusSukses:
		return "badge-sukses"
	}
	return "badge-unknown"
}

func StatusIcon(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "⏳"
	case models.OrderStatusProses:
		return "🔄"
	case models.OrderStatusSukses:
		return "✅"
	}
	return "❓"
}

// StockClass maps a stock count to the green / yellow / red badge.
func StockClass(stock int) string {
	switch {
	case stock > 5:
		return "stock-high"
	case stock > 0:
		return "stock-low"
	}
	return "stock-out"
}

func statusRank(status models.OrderStatus) int {
	for i, s := range models.OrderStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

var jakarta = time.FixedZone("WIB", 7*60*60)

func formatDateTime(t time.Time) string {
	return t.In(jakarta).Format("02/01/2006 15.04.05")
}
