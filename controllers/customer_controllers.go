package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/services"
)

const featuredCount = 3

// CustomerController renders the customer pages: home, menu, order and status.
type CustomerController struct {
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Orders   *services.OrderService
	ShopName string
}

func NewCustomerController(catalog *services.CatalogService, carts *services.CartService, orders *services.OrderService, shopName string) *CustomerController {
	return &CustomerController{Catalog: catalog, Carts: carts, Orders: orders, ShopName: shopName}
}

func (cc *CustomerController) page(title, active string, data gin.H) gin.H {
	page := gin.H{"Title": title, "Active": active, "ShopName": cc.ShopName}
	for k, v := range data {
		page[k] = v
	}
	return page
}

// renderError logs unexpected errors and returns the text shown on the page.
func renderError(c *gin.Context, err error) (int, string) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	return code, services.UserMessage(err)
}

// Home
func (cc *CustomerController) Home(c *gin.Context) {
	items, err := cc.Catalog.ListMenu(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}
	featured := items
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	c.HTML(http.StatusOK, "home.html", cc.page("Home", "home", gin.H{"Featured": featured}))
}

// Menu
func (cc *CustomerController) Menu(c *gin.Context) {
	cc.renderMenu(c, http.StatusOK, "")
}

func (cc *CustomerController) renderMenu(c *gin.Context, code int, message string) {
	ctx := c.Request.Context()
	items, err := cc.Catalog.ListMenu(ctx)
	if err != nil {
		code, message = renderError(c, err)
	}
	cart, err := cc.Carts.GetCart(ctx, middlewares.CartID(c))
	if err != nil {
		code, message = renderError(c, err)
	}
	c.HTML(code, "menu.html", cc.page("Menu", "menu", gin.H{
		"Items": services.RemainingStock(items, cart),
		"Cart":  cart,
		"Error": message,
	}))
}

// AddToCart -> POST /menu/:id/add
func (cc *CustomerController) AddToCart(c *gin.Context) {
	if _, err := cc.Carts.AddToCart(c.Request.Context(), middlewares.CartID(c), c.Param("id")); err != nil {
		code, message := renderError(c, err)
		cc.renderMenu(c, code, message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/menu")
}

// Order shows the cart.
func (cc *CustomerController) Order(c *gin.Context) {
	cc.renderOrder(c, http.StatusOK, "")
}

func (cc *CustomerController) renderOrder(c *gin.Context, code int, message string) {
	cart, err := cc.Carts.GetCart(c.Request.Context(), middlewares.CartID(c))
	if err != nil {
		code, message = renderError(c, err)
	}
	c.HTML(code, "order.html", cc.page("Order", "order", gin.H{
		"Cart":  cart,
		"Error": message,
	}))
}

// UpdateQuantity -> POST /order/items/:id/quantity
func (cc *CustomerController) UpdateQuantity(c *gin.Context) {
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		cc.renderOrder(c, http.StatusBadRequest, "Jumlah tidak valid")
		return
	}
	if _, err := cc.Carts.UpdateQuantity(c.Request.Context(), middlewares.CartID(c), c.Param("id"), quantity); err != nil {
		code, message := renderError(c, err)
		cc.renderOrder(c, code, message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/order")
}

// RemoveItem -> POST /order/items/:id/remove
func (cc *CustomerController) RemoveItem(c *gin.Context) {
	if _, err := cc.Carts.RemoveItem(c.Request.Context(), middlewares.CartID(c), c.Param("id")); err != nil {
		code, message := renderError(c, err)
		cc.renderOrder(c, code, message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/order")
}

// Checkout places the order and sends the customer to the status page.
func (cc *CustomerController) Checkout(c *gin.Context) {
	placed, err := cc.Orders.PlaceOrder(c.Request.Context(), middlewares.CartID(c))
	if err != nil {
		code, message := renderError(c, err)
		cc.renderOrder(c, code, message)
		return
	}

	query := url.Values{"sn": {placed.Order.SN}, "placed": {"1"}}
	c.Redirect(http.StatusSeeOther, "/status?"+query.Encode())
}

// Status -> GET /status?sn=
func (cc *CustomerController) Status(c *gin.Context) {
	data := gin.H{"SN": "", "Order": nil, "Error": "", "Placed": false, "WhatsAppURL": ""}

	sn, submitted := c.GetQuery("sn")
	if !submitted {
		c.HTML(http.StatusOK, "status.html", cc.page("Status", "status", data))
		return
	}
	data["SN"] = sn

	order, err := cc.Orders.GetOrderBySN(c.Request.Context(), sn)
	if err != nil {
		code, message := renderError(c, err)
		data["Error"] = message
		c.HTML(code, "status.html", cc.page("Status", "status", data))
		return
	}

	data["Order"] = order
	if c.Query("placed") == "1" && order.Status == models.OrderStatusPending {
		data["Placed"] = true
		data["WhatsAppURL"] = cc.Orders.WhatsAppURL(order)
	}
	c.HTML(http.StatusOK, "status.html", cc.page("Status", "status", data))
}
