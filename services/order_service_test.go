package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/pidey-coffee/models"
)

func fillCart(t *testing.T, carts *CartService, menuIDs ...string) {
	t.Helper()
	for _, id := range menuIDs {
		_, err := carts.AddToCart(context.Background(), testCart, id)
		require.NoError(t, err)
	}
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	ctx := context.Background()
	catalog, carts, orders := newTestServices(t, nil)
	orders.now = func() time.Time { return time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC) }
	orders.newSN = func() string { return "CS-20260102-042" }

	fillCart(t, carts, "mocha", "mocha")

	placed, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	order := placed.Order
	assert.Equal(t, "CS-20260102-042", order.SN)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, int64(60000), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Contains(t, order.WhatsAppMessage, "*PESANAN BARU - CS-20260102-042*")
	assert.Contains(t, order.WhatsAppMessage, "Mocha x2 = Rp60.000")
	assert.Contains(t, placed.WhatsAppURL, "https://wa.me/6285334679379?text=")

	mocha, err := catalog.GetMenuItem(ctx, "mocha")
	require.NoError(t, err)
	assert.Equal(t, 4, mocha.Stock)

	espresso, err := catalog.GetMenuItem(ctx, "espresso")
	require.NoError(t, err)
	assert.Equal(t, 15, espresso.Stock, "other items keep their stock")

	cart, err := carts.GetCart(ctx, testCart)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "cart is cleared after checkout")

	stored, err := orders.GetOrderBySN(ctx, order.SN)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
	assert.Equal(t, order.Total, stored.Total)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "mocha", stored.Items[0].MenuID)
}

func TestPlaceOrderFloorsStockAtZero(t *testing.T) {
	ctx := context.Background()
	catalog, carts, orders := newTestServices(t, nil)

	fillCart(t, carts, "caramel-macchiato")
	_, err := carts.UpdateQuantity(ctx, testCart, "caramel-macchiato", 9)
	require.NoError(t, err)

	_, err = orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	item, err := catalog.GetMenuItem(ctx, "caramel-macchiato")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	_, _, orders := newTestServices(t, nil)

	_, err := orders.PlaceOrder(context.Background(), testCart)
	assert.ErrorIs(t, err, ErrEmptyCart)

	all, err := orders.ListOrders(context.Background(), "ALL")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPlaceOrderRetriesSerialCollision(t *testing.T) {
	ctx := context.Background()
	_, carts, orders := newTestServices(t, nil)

	serials := []string{"CS-20260102-001", "CS-20260102-001", "CS-20260102-002"}
	orders.newSN = func() string {
		sn := serials[0]
		serials = serials[1:]
		return sn
	}

	fillCart(t, carts, "latte")
	first, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	fillCart(t, carts, "latte")
	second, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	assert.Equal(t, "CS-20260102-001", first.Order.SN)
	assert.Equal(t, "CS-20260102-002", second.Order.SN)
}

func TestPlaceOrderSerialExhausted(t *testing.T) {
	ctx := context.Background()
	catalog, carts, orders := newTestServices(t, nil)
	orders.newSN = func() string { return "CS-20260102-007" }

	fillCart(t, carts, "latte")
	_, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	fillCart(t, carts, "latte")
	_, err = orders.PlaceOrder(ctx, testCart)
	assert.ErrorIs(t, err, ErrSerialExhausted)

	// transaksi dibatalkan: stok dan keranjang tetap
	latte, err := catalog.GetMenuItem(ctx, "latte")
	require.NoError(t, err)
	assert.Equal(t, 7, latte.Stock)

	cart, err := carts.GetCart(ctx, testCart)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalQuantity)
}

func TestPlaceOrderPublishesToRelay(t *testing.T) {
	relay := new(mockRelay)
	relay.On("PushMessage", "coffee-orders", "CS-20260102-100", mock.MatchedBy(func(payload []byte) bool {
		var event struct {
			Event string       `json:"event"`
			Order models.Order `json:"order"`
		}
		return json.Unmarshal(payload, &event) == nil &&
			event.Event == "order_created" &&
			event.Order.Total == 25000
	})).Return(nil).Once()

	_, carts, orders := newTestServices(t, relay)
	orders.newSN = func() string { return "CS-20260102-100" }

	fillCart(t, carts, "cappuccino")
	_, err := orders.PlaceOrder(context.Background(), testCart)
	require.NoError(t, err)

	relay.AssertExpectations(t)
}

func TestRelayFailureDoesNotFailOrder(t *testing.T) {
	relay := new(mockRelay)
	relay.On("PushMessage", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, carts, orders := newTestServices(t, relay)

	fillCart(t, carts, "americano")
	placed, err := orders.PlaceOrder(context.Background(), testCart)
	require.NoError(t, err)
	assert.NotEmpty(t, placed.Order.SN)

	relay.AssertNumberOfCalls(t, "PushMessage", 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	_, carts, orders := newTestServices(t, nil)

	fillCart(t, carts, "espresso")
	placed, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)
	sn := placed.Order.SN

	updated, err := orders.UpdateOrderStatus(ctx, sn, models.OrderStatusSukses)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusSukses, updated.Status)

	found, err := orders.GetOrderBySN(ctx, sn)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusSukses, found.Status)

	// admin boleh mundur ke status sebelumnya
	_, err = orders.UpdateOrderStatus(ctx, sn, models.OrderStatusPending)
	require.NoError(t, err)

	_, err = orders.UpdateOrderStatus(ctx, sn, models.OrderStatus("BATAL"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = orders.UpdateOrderStatus(ctx, "CS-19990101-000", models.OrderStatusProses)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderBySN(t *testing.T) {
	ctx := context.Background()
	_, carts, orders := newTestServices(t, nil)

	fillCart(t, carts, "latte")
	placed, err := orders.PlaceOrder(ctx, testCart)
	require.NoError(t, err)

	for _, input := range []string{"", "   "} {
		_, err := orders.GetOrderBySN(ctx, input)
		assert.ErrorIs(t, err, ErrSNRequired)
		assert.Equal(t, "Masukkan Serial Number (SN) pesanan", UserMessage(err))
	}

	_, err = orders.GetOrderBySN(ctx, "CS-00000000-000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, "Pesanan dengan SN tersebut tidak ditemukan", UserMessage(err))

	found, err := orders.GetOrderBySN(ctx, "  "+placed.Order.SN+" ")
	require.NoError(t, err)
	assert.Equal(t, placed.Order.SN, found.SN)
}

func TestListOrdersAndDashboard(t *testing.T) {
	ctx := context.Background()
	catalog, carts, orders := newTestServices(t, nil)

	base := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	n := 0
	orders.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}

	var serials []string
	for n := 0; n < 3; n++ {
		fillCart(t, carts, "espresso")
		placed, err := orders.PlaceOrder(ctx, testCart)
		require.NoError(t, err)
		serials = append(serials, placed.Order.SN)
	}
	_, err := orders.UpdateOrderStatus(ctx, serials[0], models.OrderStatusProses)
	require.NoError(t, err)

	all, err := orders.ListOrders(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, serials[2], all[0].SN, "newest first")

	pending, err := orders.ListOrders(ctx, "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = orders.ListOrders(ctx, "DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = catalog.SetStock(ctx, "latte", 0)
	require.NoError(t, err)

	stats, err := orders.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.Count("PENDING"))
	assert.Equal(t, int64(1), stats.Count("PROSES"))
	assert.Equal(t, int64(0), stats.Count("SUKSES"))
	assert.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, 6, stats.MenuCount)
	// latte habis, caramel-macchiato stok 5
	assert.Equal(t, 2, stats.LowStockCount)
}
