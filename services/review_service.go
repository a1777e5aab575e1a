package services

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
	CustRepo  *repository.CustomerRepository
}

func NewReviewService(
	db *gorm.DB,
	repo *repository.ReviewRepository,
	orderRepo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	custRepo *repository.CustomerRepository,
) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo, RestRepo: restRepo, CustRepo: custRepo}
}

// AddReview attaches the one allowed review to a delivered order and
// recomputes the restaurant's aggregate rating; both writes commit together.
func (s *ReviewService) AddReview(orderID uint, rating int, comment string) (*entity.Review, error) {
	order, err := s.OrderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	if order.OrderStatus != entity.StatusDelivered {
		return nil, fmt.Errorf("%w: review can only be added for delivered orders", ErrInvalidState)
	}
	if exists, err := s.Repo.ExistsForOrder(orderID); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: a review for this order already exists", ErrConflict)
	}

	review := entity.Review{
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		Rating:       rating,
		Comment:      comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &review); err != nil {
			// The unique index on order_id serializes concurrent attempts.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: a review for this order already exists", ErrConflict)
			}
			return err
		}

		avg, err := s.Repo.AverageRating(tx, order.RestaurantID)
		if err != nil {
			return err
		}
		newRating := 0.0
		if avg.Valid {
			newRating = round2(avg.Float64)
		}
		return s.RestRepo.UpdateRating(tx, order.RestaurantID, newRating)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListByRestaurant(restaurantID uint) ([]entity.Review, error) {
	if ok, err := s.RestRepo.Exists(restaurantID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	return s.Repo.ListByRestaurant(restaurantID)
}

func (s *ReviewService) ListByCustomer(customerID uint) ([]entity.Review, error) {
	if ok, err := s.CustRepo.Exists(customerID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
	}
	return s.Repo.ListByCustomer(customerID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
