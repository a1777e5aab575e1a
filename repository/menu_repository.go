package repository

import (
	"database/sql"

	"fooddelivery/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuItemFilters compose with logical AND; nil pointers mean "no filter".
type MenuItemFilters struct {
	Category      string
	Vegetarian    *bool
	Vegan         *bool
	AvailableOnly bool
	Skip          int
	Limit         int
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) FindAll(skip, limit int) ([]entity.MenuItem, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	var out []entity.MenuItem
	err := r.DB.Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindByIDWithRestaurant(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindByRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("category, name").
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) Search(f MenuItemFilters) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Vegetarian != nil {
		q = q.Where("is_vegetarian = ?", *f.Vegetarian)
	}
	if f.Vegan != nil {
		q = q.Where("is_vegan = ?", *f.Vegan)
	}
	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	var out []entity.MenuItem
	err := q.Order("name").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

// AveragePrice returns the mean price of the restaurant's available items,
// or invalid when it has none.
func (r *MenuRepository) AveragePrice(restaurantID uint) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := r.DB.Model(&entity.MenuItem{}).
		Select("AVG(price)").
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Scan(&avg).Error
	return avg, err
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
