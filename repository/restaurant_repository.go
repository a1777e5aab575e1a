package repository

import (
	"fooddelivery/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindWithMenu loads the restaurant together with its menu,
// items ordered by category then name.
func (r *RestaurantRepository) FindWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("category, name")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateRating overwrites the derived aggregate rating.
func (r *RestaurantRepository) UpdateRating(tx *gorm.DB, id uint, rating float64) error {
	return tx.Model(&entity.Restaurant{}).Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Restaurant{}, id).Error
}

// DeleteMenuItems removes every menu item owned by the restaurant.
// Runs inside the same transaction as the restaurant delete.
func (r *RestaurantRepository) DeleteMenuItems(tx *gorm.DB, restaurantID uint) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.MenuItem{}).Error
}
