package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> checkout keranjang milik cookie / X-Cart-ID
func (oc *OrderController) CreateOrder(c *gin.Context) {
	placed, err := oc.Orders.PlaceOrder(c.Request.Context(), middlewares.CartID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", placed)
}

// GetOrderBySN
func (oc *OrderController) GetOrderBySN(c *gin.Context) {
	order, err := oc.Orders.GetOrderBySN(c.Request.Context(), c.Param("sn"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders supports ?status=ALL|PENDING|PROSES|SUKSES
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status is required"))
		return
	}

	order, err := oc.Orders.UpdateOrderStatus(c.Request.Context(), c.Param("sn"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// GetDashboard
func (oc *OrderController) GetDashboard(c *gin.Context) {
	stats, err := oc.Orders.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard", stats)
}

// ExportOrders streams all orders (or ?status=) as an Excel workbook.
func (oc *OrderController) ExportOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	file, err := services.BuildOrdersWorkbook(orders)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Status(http.StatusOK)

	if err := file.Write(c.Writer); err != nil {
		utils.ErrorLogger.Errorf("write orders workbook: %v", err)
	}
}
