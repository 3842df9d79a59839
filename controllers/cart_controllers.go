package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GetCart
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.Carts.GetCart(c.Request.Context(), middlewares.CartID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart", cart)
}

// AddItem menambah satu cup ke keranjang
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID string `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu_id is required"))
		return
	}

	cart, err := cc.Carts.AddToCart(c.Request.Context(), middlewares.CartID(c), req.MenuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cart)
}

// UpdateItem sets the quantity. Zero or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity is required"))
		return
	}

	cart, err := cc.Carts.UpdateQuantity(c.Request.Context(), middlewares.CartID(c), c.Param("menu_id"), *req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cart)
}

// RemoveItem
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.Carts.RemoveItem(c.Request.Context(), middlewares.CartID(c), c.Param("menu_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", cart)
}
