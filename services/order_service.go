package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/repository"
	"github.com/yeremiapane/pidey-coffee/utils"
)

const (
	maxSNAttempts     = 10
	recentOrdersLimit = 5
	orderFilterAll    = "ALL"
	relayEventCreated = "order_created"
	relayEventStatus  = "order_status_update"
)

type OrderServiceConfig struct {
	ShopName       string
	WhatsAppNumber string
	RelayTopic     string
}

// PlacedOrder is the result of a checkout.
type PlacedOrder struct {
	Order       *models.Order `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// DashboardStats ringkasan untuk halaman dashboard admin
type DashboardStats struct {
	TotalOrders   int64                        `json:"total_orders"`
	StatusCounts  map[models.OrderStatus]int64 `json:"status_counts"`
	RecentOrders  []models.Order               `json:"recent_orders"`
	MenuCount     int                          `json:"menu_count"`
	LowStockCount int                          `json:"low_stock_count"`
}

// Count returns the number of orders with the given status.
func (d DashboardStats) Count(status string) int64 {
	return d.StatusCounts[models.OrderStatus(status)]
}

// relayEvent is the payload pushed to the relay topic.
type relayEvent struct {
	Event string       `json:"event"`
	Order models.Order `json:"order"`
}

type OrderService struct {
	store  repository.Store
	hub    *kds.Hub
	relay  IRelayService
	config OrderServiceConfig

	newSN func() string
	now   func() time.Time
}

func NewOrderService(store repository.Store, hub *kds.Hub, relay IRelayService, config OrderServiceConfig) *OrderService {
	if relay == nil {
		relay = NoopRelayService{}
	}
	return &OrderService{
		store:  store,
		hub:    hub,
		relay:  relay,
		config: config,
		newSN:  NewSN,
		now:    time.Now,
	}
}

// PlaceOrder turns the cart into a PENDING order. The order insert, the stock
// decrement and the cart clear happen in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, cartID string) (*PlacedOrder, error) {
	var order *models.Order

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		lines, err := tx.Carts().LoadCart(ctx, cartID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		sn, err := s.allocateSN(ctx, tx.Orders())
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, line.OrderItem())
		}

		order = &models.Order{
			SN:        sn,
			Items:     items,
			Total:     OrderTotal(items),
			Status:    models.OrderStatusPending,
			CreatedAt: s.now(),
		}
		order.WhatsAppMessage = CreateWhatsAppMessage(*order, s.config.ShopName)

		if err := tx.Orders().SaveOrder(ctx, order); err != nil {
			return err
		}

		if err := tx.Catalog().DecrementStock(ctx, OrderedQuantities(items)); err != nil {
			return err
		}

		return tx.Carts().ClearCart(ctx, cartID)
	})
	if err != nil {
		if !errors.Is(err, ErrEmptyCart) {
			utils.ErrorLogger.Errorf("checkout for cart %s failed: %v", cartID, err)
		}
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"sn":    order.SN,
		"items": order.ItemCount(),
		"total": order.Total,
	}).Info("order placed")

	if s.hub != nil {
		s.hub.BroadcastOrderCreated(*order)
	}
	s.publish(relayEventCreated, *order)

	return &PlacedOrder{
		Order:       order,
		WhatsAppURL: s.WhatsAppURL(order),
	}, nil
}

func (s *OrderService) allocateSN(ctx context.Context, orders repository.OrderStore) (string, error) {
	for attempt := 0; attempt < maxSNAttempts; attempt++ {
		sn := s.newSN()
		exists, err := orders.ExistsSN(ctx, sn)
		if err != nil {
			return "", err
		}
		if !exists {
			return sn, nil
		}
	}
	return "", ErrSerialExhausted
}

// UpdateOrderStatus sets any of the three statuses on an existing order.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, sn string, status models.OrderStatus) (*models.Order, error) {
	sn = strings.TrimSpace(sn)
	if sn == "" {
		return nil, ErrSNRequired
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.store.Orders().UpdateOrderStatus(ctx, sn, status); err != nil {
		return nil, err
	}
	order, err := s.store.Orders().FindOrderBySN(ctx, sn)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{"sn": sn, "status": status}).Info("order status updated")

	if s.hub != nil {
		s.hub.BroadcastOrderUpdate(*order)
	}
	s.publish(relayEventStatus, *order)
	return order, nil
}

// GetOrderBySN looks up an order for the status page. Surrounding spaces are ignored.
func (s *OrderService) GetOrderBySN(ctx context.Context, sn string) (*models.Order, error) {
	sn = strings.TrimSpace(sn)
	if sn == "" {
		return nil, ErrSNRequired
	}
	return s.store.Orders().FindOrderBySN(ctx, sn)
}

// ListOrders returns all orders newest first, or only those with the given status.
func (s *OrderService) ListOrders(ctx context.Context, filter string) ([]models.Order, error) {
	filter = strings.ToUpper(strings.TrimSpace(filter))
	if filter == "" || filter == orderFilterAll {
		return s.store.Orders().LoadOrders(ctx)
	}

	status := models.OrderStatus(filter)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter)
	}
	return s.store.Orders().LoadOrdersByStatus(ctx, status)
}

// Dashboard collects the numbers shown on the admin landing page.
func (s *OrderService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.store.Orders().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.Orders().RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	stock, err := s.store.Catalog().LoadStock(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		StatusCounts:  counts,
		RecentOrders:  recent,
		MenuCount:     len(stock),
		LowStockCount: LowStockCount(stock),
	}
	for _, n := range counts {
		stats.TotalOrders += n
	}
	return stats, nil
}

// WhatsAppURL returns the deep link that sends the order message to the shop.
func (s *OrderService) WhatsAppURL(order *models.Order) string {
	return WhatsAppURL(s.config.WhatsAppNumber, order.WhatsAppMessage)
}

// publish never fails the caller; the order is already stored.
func (s *OrderService) publish(event string, order models.Order) {
	if s.config.RelayTopic == "" {
		return
	}
	payload, err := json.Marshal(relayEvent{Event: event, Order: order})
	if err != nil {
		utils.ErrorLogger.Errorf("marshal relay event for %s: %v", order.SN, err)
		return
	}
	if err := s.relay.PushMessage(s.config.RelayTopic, order.SN, payload); err != nil {
		utils.ErrorLogger.Errorf("relay event %s for %s: %v", event, order.SN, err)
	}
}
