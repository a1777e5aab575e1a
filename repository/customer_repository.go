package repository

import (
	"fooddelivery/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(cust *entity.Customer) error {
	return r.DB.Create(cust).Error
}

func (r *CustomerRepository) FindAll(skip, limit int) ([]entity.Customer, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	var out []entity.Customer
	err := r.DB.Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByEmail(email string) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.Where("email = ?", email).First(&cust).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) Save(cust *entity.Customer) error {
	return r.DB.Save(cust).Error
}

func (r *CustomerRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Customer{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---- Ownership-scoped cascade (customer -> orders -> order items, reviews) ----

func (r *CustomerRepository) OrderIDs(tx *gorm.DB, customerID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.Order{}).Where("customer_id = ?", customerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *CustomerRepository) DeleteOrderItems(tx *gorm.DB, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return tx.Where("order_id IN ?", orderIDs).Delete(&entity.OrderItem{}).Error
}

func (r *CustomerRepository) DeleteOrders(tx *gorm.DB, customerID uint) error {
	return tx.Where("customer_id = ?", customerID).Delete(&entity.Order{}).Error
}

func (r *CustomerRepository) DeleteReviews(tx *gorm.DB, customerID uint) error {
	return tx.Where("customer_id = ?", customerID).Delete(&entity.Review{}).Error
}

func (r *CustomerRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Customer{}, id).Error
}
