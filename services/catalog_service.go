package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/kds"
	"github.com/yeremiapane/pidey-coffee/models"
	"github.com/yeremiapane/pidey-coffee/repository"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// ProductInput is what the admin menu editor submits.
type ProductInput struct {
	ID          string `json:"id" form:"id"`
	Name        string `json:"name" form:"name"`
	Price       int64  `json:"price" form:"price"`
	Stock       int    `json:"stock" form:"stock"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.Price <= 0 {
		return ErrInvalidProduct
	}
	return nil
}

// StockQuery filters and sorts the stock editor table.
type StockQuery struct {
	Search string
	Level  string // all, available, low, out
	Sort   string // name, price, stock
	Desc   bool
}

// CatalogService menangani menu dan stok
type CatalogService struct {
	store repository.Store
	hub   *kds.Hub
}

func NewCatalogService(store repository.Store, hub *kds.Hub) *CatalogService {
	return &CatalogService{store: store, hub: hub}
}

// ListMenu returns the catalog in display order, seeding it on first use.
func (s *CatalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.Catalog().LoadStock(ctx)
}

// GetMenuItem
func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.store.Catalog().FindMenuItem(ctx, id)
}

// AddProduct creates a new menu item. The ID is derived from the name when left empty.
func (s *CatalogService) AddProduct(ctx context.Context, in ProductInput) (*models.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	id := Slugify(in.ID)
	if id == "" {
		id = Slugify(in.Name)
	}
	if id == "" {
		return nil, ErrInvalidProduct
	}

	_, err := s.store.Catalog().FindMenuItem(ctx, id)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMenuItem, id)
	case !errors.Is(err, ErrMenuNotFound):
		return nil, err
	}

	item := &models.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Stock:       max(0, in.Stock),
		Image:       strings.TrimSpace(in.Image),
		Description: strings.TrimSpace(in.Description),
	}
	if item.Image == "" {
		item.Image = "/images/" + id + ".jpg"
	}

	if err := s.store.Catalog().CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{"menu_id": item.ID, "stock": item.Stock}).Info("menu item added")
	s.broadcast(item)
	return item, nil
}

// UpdateProduct overwrites name, price, stock, image and description of an existing item.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*models.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := s.store.Catalog().FindMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Price = in.Price
	item.Stock = max(0, in.Stock)
	item.Description = strings.TrimSpace(in.Description)
	if img := strings.TrimSpace(in.Image); img != "" {
		item.Image = img
	}

	if err := s.store.Catalog().UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{"menu_id": item.ID, "stock": item.Stock}).Info("menu item updated")
	s.broadcast(item)
	return item, nil
}

// SetStock sets the stock of one item, clamped at zero.
func (s *CatalogService) SetStock(ctx context.Context, id string, stock int) (*models.MenuItem, error) {
	item, err := s.store.Catalog().FindMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.saveStock(ctx, item, stock)
}

// AdjustStock adds delta (may be negative) to the stock of one item, clamped at zero.
func (s *CatalogService) AdjustStock(ctx context.Context, id string, delta int) (*models.MenuItem, error) {
	item, err := s.store.Catalog().FindMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.saveStock(ctx, item, item.Stock+delta)
}

func (s *CatalogService) saveStock(ctx context.Context, item *models.MenuItem, stock int) (*models.MenuItem, error) {
	item.Stock = max(0, stock)
	if err := s.store.Catalog().UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	utils.InfoLogger.WithFields(logrus.Fields{"menu_id": item.ID, "stock": item.Stock}).Info("stock adjusted")
	s.broadcast(item)
	return item, nil
}

// ListStock returns the catalog filtered and sorted for the stock editor.
func (s *CatalogService) ListStock(ctx context.Context, q StockQuery) ([]models.MenuItem, error) {
	items, err := s.store.Catalog().LoadStock(ctx)
	if err != nil {
		return nil, err
	}
	return FilterStock(items, q), nil
}

// FilterStock applies a StockQuery to a list of items without touching the input.
func FilterStock(items []models.MenuItem, q StockQuery) []models.MenuItem {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.ID), search) {
			continue
		}
		switch q.Level {
		case "available":
			if !item.IsAvailable() {
				continue
			}
		case models.StockLevelLow, models.StockLevelOut:
			if item.StockLevel() != q.Level {
				continue
			}
		}
		out = append(out, item)
	}

	var less func(a, b models.MenuItem) bool
	switch q.Sort {
	case "name":
		less = func(a, b models.MenuItem) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "price":
		less = func(a, b models.MenuItem) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b models.MenuItem) bool { return a.Stock < b.Stock }
	default:
		less = func(a, b models.MenuItem) bool { return a.Position < b.Position }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if q.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// LowStockCount counts items that are low or out of stock.
func LowStockCount(items []models.MenuItem) int {
	n := 0
	for _, item := range items {
		if item.StockLevel() != models.StockLevelHigh {
			n++
		}
	}
	return n
}

func (s *CatalogService) broadcast(item *models.MenuItem) {
	if s.hub != nil {
		s.hub.BroadcastStockUpdate(*item)
	}
}

// Slugify turns "Caramel Macchiato" into "caramel-macchiato".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
