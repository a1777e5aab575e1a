package services

import (
	"fmt"

	"fooddelivery/repository"

	"github.com/shopspring/decimal"
)

type AnalyticsService struct {
	Repo     *repository.AnalyticsRepository
	RestRepo *repository.RestaurantRepository
	CustRepo *repository.CustomerRepository
}

func NewAnalyticsService(
	repo *repository.AnalyticsRepository,
	restRepo *repository.RestaurantRepository,
	custRepo *repository.CustomerRepository,
) *AnalyticsService {
	return &AnalyticsService{Repo: repo, RestRepo: restRepo, CustRepo: custRepo}
}

type RestaurantPerformance struct {
	TotalRevenue  decimal.Decimal          `json:"totalRevenue"`
	TotalOrders   int64                    `json:"totalOrders"`
	AverageRating float64                  `json:"averageRating"`
	PopularItems  []repository.PopularItem `json:"popularItems"`
}

type CustomerAnalytics struct {
	TotalSpending      decimal.Decimal `json:"totalSpending"`
	TotalOrders        int64           `json:"totalOrders"`
	FavoriteRestaurant *string         `json:"favoriteRestaurant"`
}

// RestaurantPerformance: revenue over delivered orders, order count over all
// statuses, the current aggregate rating, and the top 5 items by quantity sold.
func (s *AnalyticsService) RestaurantPerformance(restaurantID uint) (*RestaurantPerformance, error) {
	rest, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}

	revenue, err := s.Repo.RestaurantRevenue(restaurantID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.RestaurantOrderCount(restaurantID)
	if err != nil {
		return nil, err
	}
	popular, err := s.Repo.PopularItems(restaurantID, 5)
	if err != nil {
		return nil, err
	}

	return &RestaurantPerformance{
		TotalRevenue:  revenue,
		TotalOrders:   orders,
		AverageRating: rest.Rating,
		PopularItems:  popular,
	}, nil
}

func (s *AnalyticsService) CustomerAnalytics(customerID uint) (*CustomerAnalytics, error) {
	if ok, err := s.CustRepo.Exists(customerID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
	}

	spending, err := s.Repo.CustomerSpending(customerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.CustomerOrderCount(customerID)
	if err != nil {
		return nil, err
	}
	favorite, err := s.Repo.FavoriteRestaurant(customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerAnalytics{
		TotalSpending:      spending,
		TotalOrders:        orders,
		FavoriteRestaurant: favorite,
	}, nil
}
