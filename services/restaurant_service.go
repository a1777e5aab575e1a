package services

import (
	"errors"
	"fmt"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

type UpdateRestaurantReq struct {
	Name        *string  `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string  `json:"description"`
	CuisineType *string  `json:"cuisineType"`
	Address     *string  `json:"address"`
	PhoneNumber *string  `json:"phoneNumber"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	IsActive    *bool    `json:"isActive"`
	OpeningTime *string  `json:"openingTime"`
	ClosingTime *string  `json:"closingTime"`
}

func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	if err := s.Repo.Create(rest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: phone number already registered", ErrConflict)
		}
		return err
	}
	return nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) GetWithMenu(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindWithMenu(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Menu(id uint) ([]entity.MenuItem, error) {
	if ok, err := s.Repo.Exists(id); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	return s.MenuRepo.FindByRestaurant(id)
}

// AveragePrice returns the mean price of the restaurant's available menu
// items rounded to 2 decimals, nil when it has no available items.
func (s *RestaurantService) AveragePrice(id uint) (*float64, error) {
	if ok, err := s.Repo.Exists(id); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	avg, err := s.MenuRepo.AveragePrice(id)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	v := round2(avg.Float64)
	return &v, nil
}

func (s *RestaurantService) Update(id uint, req *UpdateRestaurantReq) (*entity.Restaurant, error) {
	rest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.CuisineType != nil {
		rest.CuisineType = *req.CuisineType
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		rest.PhoneNumber = *req.PhoneNumber
	}
	if req.Rating != nil {
		rest.Rating = *req.Rating
	}
	if req.IsActive != nil {
		rest.IsActive = *req.IsActive
	}
	if req.OpeningTime != nil {
		rest.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		rest.ClosingTime = *req.ClosingTime
	}

	if err := s.Repo.Save(rest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: phone number already registered", ErrConflict)
		}
		return nil, err
	}
	return rest, nil
}

// Delete removes the restaurant and every menu item it owns in one
// transaction. Orders and reviews referencing it are kept as history.
func (s *RestaurantService) Delete(id uint) error {
	if ok, err := s.Repo.Exists(id); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteMenuItems(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
}
