package services

import (
	"errors"
	"fmt"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB   *gorm.DB
	Repo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, Repo: repo}
}

type UpdateCustomerReq struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=20"`
	Address     *string `json:"address" binding:"omitempty,min=10"`
	IsActive    *bool   `json:"isActive"`
}

func (s *CustomerService) Create(cust *entity.Customer) error {
	if _, err := s.Repo.FindByEmail(cust.Email); err == nil {
		return fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.Repo.Create(cust); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email or phone number already registered", ErrConflict)
		}
		return err
	}
	return nil
}

func (s *CustomerService) List(skip, limit int) ([]entity.Customer, error) {
	return s.Repo.FindAll(skip, limit)
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	cust, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
		}
		return nil, err
	}
	return cust, nil
}

func (s *CustomerService) Update(id uint, req *UpdateCustomerReq) (*entity.Customer, error) {
	cust, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cust.Name = *req.Name
	}
	if req.Email != nil {
		cust.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		cust.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		cust.Address = *req.Address
	}
	if req.IsActive != nil {
		cust.IsActive = *req.IsActive
	}

	if err := s.Repo.Save(cust); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or phone number already registered", ErrConflict)
		}
		return nil, err
	}
	return cust, nil
}

// Delete removes the customer together with everything they own: reviews,
// orders, and the orders' items, all in one transaction.
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		orderIDs, err := s.Repo.OrderIDs(tx, id)
		if err != nil {
			return err
		}
		if err := s.Repo.DeleteOrderItems(tx, orderIDs); err != nil {
			return err
		}
		if err := s.Repo.DeleteOrders(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteReviews(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
}
