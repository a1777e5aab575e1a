package services

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	CustRepo *repository.CustomerRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
	custRepo *repository.CustomerRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, RestRepo: restRepo, CustRepo: custRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID      uint   `json:"menuItemId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests"`
}

type PlaceOrderReq struct {
	RestaurantID        uint          `json:"restaurantId" binding:"required"`
	DeliveryAddress     string        `json:"deliveryAddress" binding:"required"`
	SpecialInstructions string        `json:"specialInstructions"`
	Items               []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// Place validates every requested line against the catalog, snapshots the
// item prices, and persists the order with its items as one unit.
func (s *OrderService) Place(customerID uint, req *PlaceOrderReq) (*entity.Order, error) {
	if ok, err := s.CustRepo.Exists(customerID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
	}
	if ok, err := s.RestRepo.Exists(req.RestaurantID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidReference)
	}

	total := decimal.Zero
	rows := make([]entity.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		m, err := s.MenuRepo.FindByID(line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: invalid menu item id: %d", ErrInvalidReference, line.MenuItemID)
			}
			return nil, err
		}
		// Cross-restaurant ordering is rejected regardless of availability.
		if m.RestaurantID != req.RestaurantID {
			return nil, fmt.Errorf("%w: invalid menu item id: %d", ErrInvalidReference, line.MenuItemID)
		}
		if !m.IsAvailable {
			return nil, fmt.Errorf("%w: menu item '%s' is not available", ErrItemUnavailable, m.Name)
		}

		total = total.Add(m.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		rows = append(rows, entity.OrderItem{
			MenuItemID:      m.ID,
			Quantity:        line.Quantity,
			ItemPrice:       m.Price, // snapshot; later price edits do not touch it
			SpecialRequests: line.SpecialRequests,
		})
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerID:          customerID,
			RestaurantID:        req.RestaurantID,
			OrderStatus:         entity.StatusPlaced,
			TotalAmount:         total,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
			OrderDate:           time.Now(),
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindDetail(orderID)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindDetail(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListByCustomer(customerID uint) ([]entity.Order, error) {
	if ok, err := s.CustRepo.Exists(customerID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
	}
	return s.Repo.ListByCustomer(customerID)
}

func (s *OrderService) ListByRestaurant(restaurantID uint) ([]entity.Order, error) {
	if ok, err := s.RestRepo.Exists(restaurantID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	return s.Repo.ListByRestaurant(restaurantID)
}
