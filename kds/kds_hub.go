package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// Event types
const (
	EventOrderCreated    = "order_created"
	EventOrderUpdate     = "order_status_update"
	EventStockUpdate     = "stock_update"
	EventDashboardUpdate = "dashboard_update"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client dashboard admin yang terhubung via websocket
type Hub struct {
	clients map[*websocket.Conn]string // conn -> remote addr
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

// RegisterClient -> menambahkan connection ke hub
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = conn.RemoteAddr().String()
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(conn)
}

// ClientCount returns the number of connected dashboards.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastOrderCreated -> pesanan baru masuk
func (h *Hub) BroadcastOrderCreated(order models.Order) {
	h.Broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdate -> status pesanan berubah
func (h *Hub) BroadcastOrderUpdate(order models.Order) {
	h.Broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastStockUpdate -> stok menu berubah
func (h *Hub) BroadcastStockUpdate(item models.MenuItem) {
	h.Broadcast(Message{Event: EventStockUpdate, Data: item})
}

// BroadcastDashboardUpdate -> ringkasan dashboard terbaru
func (h *Hub) BroadcastDashboardUpdate(data interface{}) {
	h.Broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

// Broadcast sends msg to every client. Clients that fail to receive it are dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.WithFields(logrus.Fields{"event": msg.Event, "clients": len(h.clients)}).Debug("broadcasting message")

	for conn, addr := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("Error sending message to client %s: %v", addr, err)
			h.drop(conn)
		}
	}
}

// drop assumes the mutex is held.
func (h *Hub) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
}
