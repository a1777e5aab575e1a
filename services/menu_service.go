package services

import (
	"errors"
	"fmt"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type UpdateMenuItemReq struct {
	Name            *string          `json:"name" binding:"omitempty,min=3,max=100"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Category        *string          `json:"category" binding:"omitempty,oneof=Appetizer 'Main Course' Dessert Beverage Snack 'Side Dish'"`
	IsVegetarian    *bool            `json:"isVegetarian"`
	IsVegan         *bool            `json:"isVegan"`
	IsAvailable     *bool            `json:"isAvailable"`
	PreparationTime *int             `json:"preparationTime" binding:"omitempty,gt=0"`
}

func (s *MenuService) Create(restaurantID uint, item *entity.MenuItem) error {
	if ok, err := s.RestRepo.Exists(restaurantID); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	item.RestaurantID = restaurantID
	item.Price = item.Price.Round(2)
	return s.Repo.Create(item)
}

func (s *MenuService) List(skip, limit int) ([]entity.MenuItem, error) {
	return s.Repo.FindAll(skip, limit)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) GetWithRestaurant(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByIDWithRestaurant(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Search(f repository.MenuItemFilters) ([]entity.MenuItem, error) {
	return s.Repo.Search(f)
}

func (s *MenuService) Update(id uint, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidReference)
		}
		item.Price = req.Price.Round(2)
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		item.IsVegan = *req.IsVegan
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item from the catalog. Historical order items keep
// their snapshot price and reference.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
