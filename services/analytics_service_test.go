package services

import (
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantPerformanceRevenueCountsDeliveredOnly(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "10.00", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	delivered := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 2})
	_, err := env.Orders.UpdateStatus(delivered.ID, entity.StatusDelivered)
	require.NoError(t, err)

	env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 5})

	perf, err := env.Analytics.RestaurantPerformance(rest.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "20.00", perf.TotalRevenue)
	assert.EqualValues(t, 2, perf.TotalOrders)
}

func TestRestaurantPerformanceZeroWithoutDeliveredOrders(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")

	perf, err := env.Analytics.RestaurantPerformance(rest.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "0", perf.TotalRevenue)
	assert.Zero(t, perf.TotalOrders)
	assert.Empty(t, perf.PopularItems)
}

func TestRestaurantPerformancePopularItemsRankedByQuantity(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	padThai := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	tomYum := env.createMenuItem(t, rest.ID, "Tom Yum", "11.00", true)
	springRoll := env.createMenuItem(t, rest.ID, "Spring Roll", "4.50", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	// Popularity counts every order status, not just delivered ones.
	env.placeOrder(t, cust.ID, rest.ID,
		OrderItemIn{MenuItemID: padThai.ID, Quantity: 1},
		OrderItemIn{MenuItemID: tomYum.ID, Quantity: 3},
	)
	env.placeOrder(t, cust.ID, rest.ID,
		OrderItemIn{MenuItemID: tomYum.ID, Quantity: 2},
		OrderItemIn{MenuItemID: springRoll.ID, Quantity: 1},
	)

	perf, err := env.Analytics.RestaurantPerformance(rest.ID)
	require.NoError(t, err)
	require.Len(t, perf.PopularItems, 3)
	assert.Equal(t, "Tom Yum", perf.PopularItems[0].ItemName)
	assert.EqualValues(t, 5, perf.PopularItems[0].QuantitySold)
	// Pad Thai and Spring Roll tie at 1; name ascending breaks the tie.
	assert.Equal(t, "Pad Thai", perf.PopularItems[1].ItemName)
	assert.Equal(t, "Spring Roll", perf.PopularItems[2].ItemName)
}

func TestCustomerAnalytics(t *testing.T) {
	env := newTestEnv(t)
	restA := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	restB := env.createRestaurant(t, "Sushi Corner", "02-222-2222")
	itemA := env.createMenuItem(t, restA.ID, "Pad Thai", "10.00", true)
	itemB := env.createMenuItem(t, restB.ID, "Salmon Roll", "12.00", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	delivered := env.placeOrder(t, cust.ID, restA.ID, OrderItemIn{MenuItemID: itemA.ID, Quantity: 1})
	_, err := env.Orders.UpdateStatus(delivered.ID, entity.StatusDelivered)
	require.NoError(t, err)

	env.placeOrder(t, cust.ID, restA.ID, OrderItemIn{MenuItemID: itemA.ID, Quantity: 1})
	env.placeOrder(t, cust.ID, restB.ID, OrderItemIn{MenuItemID: itemB.ID, Quantity: 1})

	stats, err := env.Analytics.CustomerAnalytics(cust.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "10.00", stats.TotalSpending)
	assert.EqualValues(t, 3, stats.TotalOrders)
	require.NotNil(t, stats.FavoriteRestaurant)
	assert.Equal(t, "Pad Thai House", *stats.FavoriteRestaurant)
}

func TestCustomerAnalyticsNoOrders(t *testing.T) {
	env := newTestEnv(t)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	stats, err := env.Analytics.CustomerAnalytics(cust.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "0", stats.TotalSpending)
	assert.Zero(t, stats.TotalOrders)
	assert.Nil(t, stats.FavoriteRestaurant)
}

func TestAnalyticsUnknownOwner(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Analytics.RestaurantPerformance(9999)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = env.Analytics.CustomerAnalytics(9999)
	require.ErrorIs(t, err, ErrNotFound)
}
