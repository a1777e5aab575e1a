package repository

import (
	"fooddelivery/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindDetail loads the order with its customer, restaurant, items and the
// items' menu references, plus any attached review.
func (r *OrderRepository) FindDetail(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Customer").
		Preload("Restaurant").
		Preload("Items.MenuItem").
		Preload("Review").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).
		Update("order_status", status).Error
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("order_date DESC").
		Find(&out).Error
	return out, err
}
