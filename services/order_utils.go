package services

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/utils"
)

const snPrefix = "CS-"

// GenerateSN builds a serial number CS-YYYYMMDD-NNN from the UTC date and rnd(1000).
// The result is not unique on its own; OrderService checks it against the store.
func GenerateSN(now time.Time, rnd func(n int) int) string {
	return fmt.Sprintf("%s%s-%03d", snPrefix, now.UTC().Format("20060102"), rnd(1000))
}

// NewSN -> GenerateSN dengan jam dinding dan math/rand
func NewSN() string {
	return GenerateSN(time.Now(), rand.Intn)
}

// CreateWhatsAppMessage formats the order summary sent to the shop.
func CreateWhatsAppMessage(order models.Order, shopName string) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s x%d = %s", item.Name, item.Quantity, utils.FormatRupiah(item.Subtotal())))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*PESANAN BARU - %s*\n\n", order.SN)
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\n*Total: %s*\n", utils.FormatRupiah(order.Total))
	fmt.Fprintf(&b, "*Status: %s*\n\n", order.Status)
	fmt.Fprintf(&b, "Terima kasih telah memesan di %s!", shopName)
	return b.String()
}

// WhatsAppURL returns the wa.me deep link prefilled with message. Spaces are sent as %20.
func WhatsAppURL(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + text
}

// UpdateStockAfterOrder returns a new list where every item that appears in orderItems
// is decremented by the ordered quantity, never below zero.
func UpdateStockAfterOrder(stock []models.MenuItem, orderItems []models.OrderItem) []models.MenuItem {
	ordered := OrderedQuantities(orderItems)

	updated := make([]models.MenuItem, len(stock))
	for i, item := range stock {
		if qty, ok := ordered[item.ID]; ok {
			item.Stock = max(0, item.Stock-qty)
		}
		updated[i] = item
	}
	return updated
}

// OrderedQuantities sums the ordered quantity per menu ID.
func OrderedQuantities(orderItems []models.OrderItem) map[string]int {
	ordered := make(map[string]int, len(orderItems))
	for _, item := range orderItems {
		ordered[item.MenuID] += item.Quantity
	}
	return ordered
}

// CartTotals returns the number of cups and the price total of the cart lines.
func CartTotals(items []models.CartItem) (quantity int, total int64) {
	for _, item := range items {
		quantity += item.Quantity
		total += item.Subtotal()
	}
	return quantity, total
}

// OrderTotal sums price x quantity over the order lines.
func OrderTotal(items []models.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
