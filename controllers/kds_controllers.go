package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // route sudah dijaga sesi admin
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// KDSHandler -> endpoint WebSocket untuk live feed dashboard admin
func (kc *KDSController) KDSHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("websocket upgrade failed: %v", err)
		return
	}

	kc.Hub.RegisterClient(ws)
	defer kc.Hub.UnregisterClient(ws)

	// client tidak mengirim apa-apa, baca sampai koneksi ditutup
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
