package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/services"
)

// AdminPageController renders the admin panel pages.
type AdminPageController struct {
	Admin    *services.AdminService
	Catalog  *services.CatalogService
	Orders   *services.OrderService
	ShopName string
}

func NewAdminPageController(admin *services.AdminService, catalog *services.CatalogService, orders *services.OrderService, shopName string) *AdminPageController {
	return &AdminPageController{Admin: admin, Catalog: catalog, Orders: orders, ShopName: shopName}
}

func (ac *AdminPageController) page(title, active string, data gin.H) gin.H {
	page := gin.H{"Title": title, "Active": active, "ShopName": ac.ShopName, "Error": "", "Flash": ""}
	for k, v := range data {
		page[k] = v
	}
	return page
}

// Index -> form login kalau belum login, dashboard kalau sudah
func (ac *AdminPageController) Index(c *gin.Context) {
	if !middlewares.IsAdmin(c, ac.Admin) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{"Title": "Admin Login", "Active": "admin", "ShopName": ac.ShopName})
		return
	}

	stats, err := ac.Orders.Dashboard(c.Request.Context())
	code, message := http.StatusOK, ""
	if err != nil {
		code, message = renderError(c, err)
	}
	c.HTML(code, "admin_dashboard.html", ac.page("Dashboard", "dashboard", gin.H{
		"Stats": stats,
		"Error": message,
	}))
}

// Login -> POST /admin/login
func (ac *AdminPageController) Login(c *gin.Context) {
	session, err := ac.Admin.Login(c.PostForm("password"))
	if err != nil {
		code, message := renderError(c, err)
		c.HTML(code, "admin_login.html", gin.H{
			"Title":    "Admin Login",
			"Active":   "admin",
			"ShopName": ac.ShopName,
			"Alert":    message,
		})
		return
	}
	setSessionCookie(c, session)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout -> POST /admin/logout
func (ac *AdminPageController) Logout(c *gin.Context) {
	if token := middlewares.SessionToken(c); token != "" {
		_ = ac.Admin.Logout(token)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// OrdersPage -> GET /admin/orders?status=
func (ac *AdminPageController) OrdersPage(c *gin.Context) {
	ac.renderOrders(c, http.StatusOK, c.Query("status"), "")
}

func (ac *AdminPageController) renderOrders(c *gin.Context, code int, filter, message string) {
	filter = strings.ToUpper(strings.TrimSpace(filter))
	if filter == "" {
		filter = "ALL"
	}

	orders, err := ac.Orders.ListOrders(c.Request.Context(), filter)
	if errors.Is(err, services.ErrInvalidStatus) {
		message = services.UserMessage(err)
		filter = "ALL"
		orders, err = ac.Orders.ListOrders(c.Request.Context(), filter)
	}
	if err != nil {
		code, message = renderError(c, err)
	}

	c.HTML(code, "admin_orders.html", ac.page("Orders", "orders", gin.H{
		"Orders":   orders,
		"Filter":   filter,
		"Statuses": models.OrderStatuses,
		"Error":    message,
	}))
}

// UpdateOrderStatus -> POST /admin/orders/:sn/status
func (ac *AdminPageController) UpdateOrderStatus(c *gin.Context) {
	filter := c.PostForm("filter")
	status := models.OrderStatus(strings.ToUpper(c.PostForm("status")))

	if _, err := ac.Orders.UpdateOrderStatus(c.Request.Context(), c.Param("sn"), status); err != nil {
		code, message := renderError(c, err)
		ac.renderOrders(c, code, filter, message)
		return
	}

	target := "/admin/orders"
	if filter != "" {
		target += "?" + url.Values{"status": {filter}}.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Menu -> GET /admin/menu[?edit=id]
func (ac *AdminPageController) Menu(c *gin.Context) {
	data := gin.H{"Form": services.ProductInput{}}
	code := http.StatusOK

	if id := c.Query("edit"); id != "" {
		item, err := ac.Catalog.GetMenuItem(c.Request.Context(), id)
		if err != nil {
			code, data["Error"] = renderError(c, err)
		} else {
			data["Edit"] = item
			data["Form"] = productForm(item)
		}
	}
	if c.Query("saved") == "1" {
		data["Flash"] = "Menu berhasil disimpan"
	}
	ac.renderMenu(c, code, data)
}

func (ac *AdminPageController) renderMenu(c *gin.Context, code int, data gin.H) {
	items, err := ac.Catalog.ListMenu(c.Request.Context())
	if err != nil {
		code, data["Error"] = renderError(c, err)
	}
	data["Items"] = items
	if _, ok := data["Edit"]; !ok {
		data["Edit"] = nil
	}
	c.HTML(code, "admin_menu.html", ac.page("Menu", "menu", data))
}

// CreateMenu -> POST /admin/menu
func (ac *AdminPageController) CreateMenu(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		ac.renderMenu(c, http.StatusBadRequest, gin.H{"Form": input, "Alert": services.UserMessage(services.ErrInvalidProduct)})
		return
	}

	if _, err := ac.Catalog.AddProduct(c.Request.Context(), input); err != nil {
		code, message := renderError(c, err)
		ac.renderMenu(c, code, gin.H{"Form": input, "Alert": message})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/menu?saved=1")
}

// UpdateMenu -> POST /admin/menu/:id
func (ac *AdminPageController) UpdateMenu(c *gin.Context) {
	id := c.Param("id")

	var input services.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		ac.renderEditError(c, id, input, services.ErrInvalidProduct)
		return
	}

	if _, err := ac.Catalog.UpdateProduct(c.Request.Context(), id, input); err != nil {
		ac.renderEditError(c, id, input, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/menu?saved=1")
}

func (ac *AdminPageController) renderEditError(c *gin.Context, id string, input services.ProductInput, err error) {
	code, message := renderError(c, err)
	data := gin.H{"Form": input, "Alert": message}
	if item, findErr := ac.Catalog.GetMenuItem(c.Request.Context(), id); findErr == nil {
		data["Edit"] = item
	}
	ac.renderMenu(c, code, data)
}

// Stock -> GET /admin/stock?q=&level=&sort=&dir=
func (ac *AdminPageController) Stock(c *gin.Context) {
	ac.renderStock(c, http.StatusOK, "")
}

func (ac *AdminPageController) renderStock(c *gin.Context, code int, message string) {
	query := stockQuery(c)

	all, err := ac.Catalog.ListMenu(c.Request.Context())
	if err != nil {
		code, message = renderError(c, err)
	}

	c.HTML(code, "admin_stock.html", ac.page("Stock", "stock", gin.H{
		"Items": services.FilterStock(all, query),
		"Total": len(all),
		"Query": query,
		"Error": message,
	}))
}

// UpdateStock -> POST /admin/stock/:id dengan field stock (absolut) atau delta
func (ac *AdminPageController) UpdateStock(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	if delta := c.PostForm("delta"); delta != "" {
		n, convErr := strconv.Atoi(delta)
		if convErr != nil {
			ac.renderStock(c, http.StatusBadRequest, services.UserMessage(services.ErrInvalidStock))
			return
		}
		_, err = ac.Catalog.AdjustStock(ctx, id, n)
	} else {
		n, convErr := strconv.Atoi(c.PostForm("stock"))
		if convErr != nil {
			ac.renderStock(c, http.StatusBadRequest, services.UserMessage(services.ErrInvalidStock))
			return
		}
		_, err = ac.Catalog.SetStock(ctx, id, n)
	}
	if err != nil {
		code, message := renderError(c, err)
		ac.renderStock(c, code, message)
		return
	}

	target := "/admin/stock"
	if ref := c.Request.Referer(); strings.Contains(ref, "/admin/stock?") {
		if u, parseErr := url.Parse(ref); parseErr == nil {
			target += "?" + u.RawQuery
		}
	}
	c.Redirect(http.StatusSeeOther, target)
}

func productForm(item *models.MenuItem) services.ProductInput {
	return services.ProductInput{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Stock:       item.Stock,
		Image:       item.Image,
		Description: item.Description,
	}
}
