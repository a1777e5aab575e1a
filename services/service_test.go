package services

import (
	"path/filepath"
	"testing"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	DB          *gorm.DB
	Restaurants *RestaurantService
	Menu        *MenuService
	Customers   *CustomerService
	Orders      *OrderService
	Reviews     *ReviewService
	Analytics   *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Review{},
	))

	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	custRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	return &testEnv{
		DB:          db,
		Restaurants: NewRestaurantService(db, restRepo, menuRepo),
		Menu:        NewMenuService(menuRepo, restRepo),
		Customers:   NewCustomerService(db, custRepo),
		Orders:      NewOrderService(db, orderRepo, menuRepo, restRepo, custRepo),
		Reviews:     NewReviewService(db, reviewRepo, orderRepo, restRepo, custRepo),
		Analytics:   NewAnalyticsService(analyticsRepo, restRepo, custRepo),
	}
}

func (e *testEnv) createRestaurant(t *testing.T, name, phone string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:        name,
		CuisineType: "Thai",
		Address:     "1 Test Street",
		PhoneNumber: phone,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		IsActive:    true,
	}
	require.NoError(t, e.Restaurants.Create(rest))
	return rest
}

func (e *testEnv) createMenuItem(t *testing.T, restaurantID uint, name, price string, available bool) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:            name,
		Price:           decimal.RequireFromString(price),
		Category:        entity.CategoryMainCourse,
		IsAvailable:     available,
		PreparationTime: 15,
	}
	require.NoError(t, e.Menu.Create(restaurantID, item))
	return item
}

func (e *testEnv) createCustomer(t *testing.T, name, email, phone string) *entity.Customer {
	t.Helper()
	cust := &entity.Customer{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		Address:     "42 Long Enough Avenue",
		IsActive:    true,
	}
	require.NoError(t, e.Customers.Create(cust))
	return cust
}

func (e *testEnv) placeOrder(t *testing.T, customerID, restaurantID uint, items ...OrderItemIn) *entity.Order {
	t.Helper()
	order, err := e.Orders.Place(customerID, &PlaceOrderReq{
		RestaurantID:    restaurantID,
		DeliveryAddress: "42 Long Enough Avenue",
		Items:           items,
	})
	require.NoError(t, err)
	return order
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got.String())
}
