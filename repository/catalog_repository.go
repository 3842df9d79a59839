package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yeremiapane/pidey-coffee/database"
	"github.com/yeremiapane/pidey-coffee/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository implements CatalogStore for GORM.
type CatalogRepository struct {
	DB *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository instance.
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// LoadStock returns the catalog in display order. An empty catalog is seeded with the default menu.
func (r *CatalogRepository) LoadStock(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Order("position ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}

	// main memanggil LoadStock sekali sebelum server jalan, jadi seed tidak balapan dengan checkout
	if err := r.SaveStock(ctx, database.DefaultCatalog()); err != nil {
		return nil, fmt.Errorf("seed default catalog: %w", err)
	}
	if err := r.DB.WithContext(ctx).Order("position ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	return items, nil
}

// SaveStock writes the whole list back. The last writer wins.
func (r *CatalogRepository) SaveStock(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "stock", "image", "description", "position", "updated_at"}),
	}).Create(&items).Error
	if err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	return nil
}

// DecrementStock takes the ordered quantities off the matching rows, never below zero.
// Rows are updated in ID order and nothing else in the catalog is touched.
func (r *CatalogRepository) DecrementStock(ctx context.Context, ordered map[string]int) error {
	ids := make([]string, 0, len(ordered))
	for id := range ordered {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		qty := ordered[id]
		err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).
			Update("stock", gorm.Expr("CASE WHEN stock > ? THEN stock - ? ELSE 0 END", qty, qty)).Error
		if err != nil {
			return fmt.Errorf("decrement stock of %q: %w", id, err)
		}
	}
	return nil
}

// FindMenuItem
func (r *CatalogRepository) FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu item %q: %w", id, err)
	}
	return &item, nil
}

// CreateMenuItem appends the item at the end of the catalog.
func (r *CatalogRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	var last int
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Select("COALESCE(MAX(position), 0)").Row().Scan(&last); err != nil {
		return fmt.Errorf("read catalog position: %w", err)
	}
	item.Position = last + 1

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create menu item %q: %w", item.ID, err)
	}
	return nil
}

// UpdateMenuItem overwrites the editable fields, zero values included.
func (r *CatalogRepository) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	result := r.DB.WithContext(ctx).Model(item).
		Select("name", "price", "stock", "image", "description", "updated_at").
		Updates(item)
	if result.Error != nil {
		return fmt.Errorf("update menu item %q: %w", item.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}
