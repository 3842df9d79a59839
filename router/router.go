package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/config"
	"github.com/yeremiapane/pidey-coffee/controllers"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/middlewares"
	"github.com/yeremiapane/pidey-coffee/repository"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/web"
	"gorm.io/gorm"
)

// SetupRouter wires services, middlewares and routes. A nil relay disables order event publishing.
// Background workers stop when ctx is cancelled.
func SetupRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, relay services.IRelayService) (*gin.Engine, error) {
	if relay == nil {
		relay = services.NoopRelayService{}
	}

	verifier, err := services.NewSharedSecretVerifier(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("admin credential: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	store := repository.NewStore(db)
	hub := kds.NewHub()

	relayTopic := ""
	if cfg.Kafka.Enabled {
		relayTopic = cfg.Kafka.Topic
	}

	catalogService := services.NewCatalogService(store, hub)
	cartService := services.NewCartService(store)
	orderService := services.NewOrderService(store, hub, relay, services.OrderServiceConfig{
		ShopName:       cfg.ShopName,
		WhatsAppNumber: cfg.WhatsAppNo,
		RelayTopic:     relayTopic,
	})
	adminService := services.NewAdminService(verifier, []byte(cfg.JWTSecret), cfg.SessionTTL)

	services.NewDashboardMonitor(orderService, hub, cfg.DashboardInterval).Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	// Apply middlewares
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	if cfg.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit, int(cfg.RateLimit)*2).RateLimit())
	}

	r.StaticFS("/static", web.Static())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	menuCtrl := controllers.NewMenuController(catalogService)
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService)
	adminCtrl := controllers.NewAdminController(adminService)
	kdsCtrl := controllers.NewKDSController(hub)
	customerCtrl := controllers.NewCustomerController(catalogService, cartService, orderService, cfg.ShopName)
	adminPageCtrl := controllers.NewAdminPageController(adminService, catalogService, orderService, cfg.ShopName)

	loginLimiter := middlewares.NewStrictRateLimiter().RateLimit()
	cartSession := middlewares.CartSession()
	audit := middlewares.OrderAuditMiddleware()

	// ---------------------------
	// CUSTOMER PAGES
	// ---------------------------
	r.GET("/", customerCtrl.Home)
	r.GET("/status", customerCtrl.Status)
	shop := r.Group("/", cartSession)
	{
		shop.GET("/menu", customerCtrl.Menu)
		shop.POST("/menu/:id/add", customerCtrl.AddToCart)
		shop.GET("/order", customerCtrl.Order)
		shop.POST("/order/items/:id/quantity", customerCtrl.UpdateQuantity)
		shop.POST("/order/items/:id/remove", customerCtrl.RemoveItem)
		shop.POST("/order/checkout", customerCtrl.Checkout)
	}

	// ---------------------------
	// ADMIN PAGES
	// ---------------------------
	r.GET("/admin", adminPageCtrl.Index)
	r.POST("/admin/login", loginLimiter, adminPageCtrl.Login)
	r.POST("/admin/logout", adminPageCtrl.Logout)
	r.GET("/admin/ws", middlewares.WebSocketAuthMiddleware(adminService), kdsCtrl.KDSHandler)
	adminPages := r.Group("/admin", middlewares.AdminPageMiddleware(adminService))
	{
		adminPages.GET("/orders", adminPageCtrl.OrdersPage)
		adminPages.POST("/orders/:sn/status", audit, adminPageCtrl.UpdateOrderStatus)
		adminPages.GET("/orders/export", orderCtrl.ExportOrders)
		adminPages.GET("/menu", adminPageCtrl.Menu)
		adminPages.POST("/menu", adminPageCtrl.CreateMenu)
		adminPages.POST("/menu/:id", adminPageCtrl.UpdateMenu)
		adminPages.GET("/stock", adminPageCtrl.Stock)
		adminPages.POST("/stock/:id", adminPageCtrl.UpdateStock)
	}

	// ---------------------------
	// JSON API
	// ---------------------------
	api := r.Group("/api")
	{
		api.GET("/menus", menuCtrl.GetAllMenus)
		api.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

		cart := api.Group("/cart", cartSession)
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:menu_id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:menu_id", cartCtrl.RemoveItem)

		api.POST("/orders", cartSession, orderCtrl.CreateOrder)
		api.GET("/orders/:sn", orderCtrl.GetOrderBySN)

		api.POST("/admin/login", loginLimiter, adminCtrl.Login)
	}

	admin := api.Group("/admin", middlewares.AdminAuthMiddleware(adminService))
	{
		admin.POST("/logout", adminCtrl.Logout)
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:sn", audit, orderCtrl.UpdateOrderStatus)

		admin.GET("/menus", menuCtrl.GetAllMenus)
		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)

		admin.GET("/stock", menuCtrl.GetStock)
		admin.PATCH("/stock/:menu_id", menuCtrl.UpdateStock)

		admin.GET("/reports/orders.xlsx", orderCtrl.ExportOrders)
	}

	return r, nil
}
