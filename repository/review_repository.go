package repository

import (
	"database/sql"

	"fooddelivery/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// AverageRating computes the mean rating over all reviews of a restaurant,
// inside the caller's transaction so the freshly inserted review counts.
func (r *ReviewRepository) AverageRating(tx *gorm.DB, restaurantID uint) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := tx.Model(&entity.Review{}).
		Select("AVG(rating)").
		Where("restaurant_id = ?", restaurantID).
		Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) ListByRestaurant(restaurantID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Preload("Customer").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByCustomer(customerID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Preload("Restaurant").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
