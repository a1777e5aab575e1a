package repository

import (
	"fooddelivery/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type PopularItem struct {
	ItemName     string `json:"itemName"`
	QuantitySold int64  `json:"quantitySold"`
}

// RestaurantRevenue sums total_amount over delivered orders only.
func (r *AnalyticsRepository) RestaurantRevenue(restaurantID uint) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("restaurant_id = ? AND order_status = ?", restaurantID, entity.StatusDelivered).
		Scan(&revenue).Error
	return revenue, err
}

func (r *AnalyticsRepository) RestaurantOrderCount(restaurantID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&cnt).Error
	return cnt, err
}

// PopularItems ranks menu items by total quantity sold across all order
// statuses, grouped by item name. Ties break by name ascending so the
// ranking is deterministic.
func (r *AnalyticsRepository) PopularItems(restaurantID uint, limit int) ([]PopularItem, error) {
	out := make([]PopularItem, 0, limit)
	err := r.DB.Table("order_items").
		Select("menu_items.name AS item_name, SUM(order_items.quantity) AS quantity_sold").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Where("order_items.deleted_at IS NULL AND orders.deleted_at IS NULL").
		Group("menu_items.name").
		Order("quantity_sold DESC, menu_items.name ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// CustomerSpending sums total_amount over the customer's delivered orders.
func (r *AnalyticsRepository) CustomerSpending(customerID uint) (decimal.Decimal, error) {
	var spending decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("customer_id = ? AND order_status = ?", customerID, entity.StatusDelivered).
		Scan(&spending).Error
	return spending, err
}

func (r *AnalyticsRepository) CustomerOrderCount(customerID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("customer_id = ?", customerID).
		Count(&cnt).Error
	return cnt, err
}

// FavoriteRestaurant returns the name of the restaurant the customer has
// ordered from most often (any status), nil when the customer has no orders.
// Ties break by restaurant name ascending.
func (r *AnalyticsRepository) FavoriteRestaurant(customerID uint) (*string, error) {
	var row struct {
		Name       string
		OrderCount int64
	}
	res := r.DB.Table("orders").
		Select("restaurants.name AS name, COUNT(orders.id) AS order_count").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("orders.customer_id = ?", customerID).
		Where("orders.deleted_at IS NULL").
		Group("restaurants.name").
		Order("order_count DESC, restaurants.name ASC").
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row.Name, nil
}
