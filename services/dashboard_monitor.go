package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// DashboardBroadcaster is the part of the kds hub the monitor needs.
type DashboardBroadcaster interface {
	ClientCount() int
	BroadcastDashboardUpdate(data interface{})
}

// DashboardMonitor periodically pushes the dashboard summary to connected admin clients.
// A summary is only sent when it differs from the last one sent.
type DashboardMonitor struct {
	orders   *OrderService
	hub      DashboardBroadcaster
	interval time.Duration
	last     string
}

func NewDashboardMonitor(orders *OrderService, hub DashboardBroadcaster, interval time.Duration) *DashboardMonitor {
	return &DashboardMonitor{orders: orders, hub: hub, interval: interval}
}

// Start runs the monitor until ctx is cancelled. A non-positive interval disables it.
func (m *DashboardMonitor) Start(ctx context.Context) {
	if m.interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := m.check(ctx); err != nil && ctx.Err() == nil {
					utils.ErrorLogger.Errorf("dashboard monitor: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// check reports whether a summary was broadcast.
func (m *DashboardMonitor) check(ctx context.Context) (bool, error) {
	if m.hub.ClientCount() == 0 {
		return false, nil
	}

	stats, err := m.orders.Dashboard(ctx)
	if err != nil {
		return false, err
	}

	key := dashboardKey(stats)
	if key == m.last {
		return false, nil
	}
	m.last = key
	m.hub.BroadcastDashboardUpdate(stats)
	return true, nil
}

func dashboardKey(stats *DashboardStats) string {
	key := fmt.Sprintf("%d/%d/%d", stats.TotalOrders, stats.MenuCount, stats.LowStockCount)
	for _, status := range models.OrderStatuses {
		key += fmt.Sprintf("/%d", stats.StatusCounts[status])
	}
	// status berubah tanpa mengubah jumlah -> lihat pesanan terbaru juga
	for _, order := range stats.RecentOrders {
		key += "/" + order.SN + ":" + string(order.Status)
	}
	return key
}
