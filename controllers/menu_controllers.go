package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Catalog.ListMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", items)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, err := mc.Catalog.GetMenuItem(c.Request.Context(), c.Param("menu_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// CreateMenu -> admin menambah produk baru
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, err := mc.Catalog.AddProduct(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, err := mc.Catalog.UpdateProduct(c.Request.Context(), c.Param("menu_id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

// GetStock supports ?q=&level=&sort=&dir=
func (mc *MenuController) GetStock(c *gin.Context) {
	items, err := mc.Catalog.ListStock(c.Request.Context(), stockQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock list", items)
}

type stockRequest struct {
	Stock *int `json:"stock"`
	Delta *int `json:"delta"`
}

// UpdateStock accepts either an absolute {"stock": n} or a relative {"delta": n}.
func (mc *MenuController) UpdateStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Stock == nil) == (req.Delta == nil) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("send either stock or delta"))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("menu_id")

	var err error
	var item *models.MenuItem
	if req.Stock != nil {
		item, err = mc.Catalog.SetStock(ctx, id, *req.Stock)
	} else {
		item, err = mc.Catalog.AdjustStock(ctx, id, *req.Delta)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock updated", item)
}

func stockQuery(c *gin.Context) services.StockQuery {
	q := services.StockQuery{
		Search: c.Query("q"),
		Level:  c.DefaultQuery("level", "all"),
		Sort:   c.Query("sort"),
		Desc:   c.Query("dir") == "desc",
	}
	if q.Level == "" {
		q.Level = "all"
	}
	return q
}
