package services

import (
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the full lifecycle: catalog setup, placing an order, delivery,
// review, and the aggregates that fall out of it.
func TestOrderLifecycle(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	order := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 2})
	assert.Equal(t, entity.StatusPlaced, order.OrderStatus)
	requireDecimalEqual(t, "19.98", order.TotalAmount)

	for _, status := range []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	} {
		updated, err := env.Orders.UpdateStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.OrderStatus)
	}

	rev, err := env.Reviews.AddReview(order.ID, 4, "solid noodles")
	require.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)

	_, err = env.Reviews.AddReview(order.ID, 5, "changed my mind")
	require.ErrorIs(t, err, ErrConflict)

	got, err := env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.Rating, 0.001)

	perf, err := env.Analytics.RestaurantPerformance(rest.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "19.98", perf.TotalRevenue)
	assert.EqualValues(t, 1, perf.TotalOrders)
	require.Len(t, perf.PopularItems, 1)
	assert.Equal(t, "Pad Thai", perf.PopularItems[0].ItemName)
	assert.EqualValues(t, 2, perf.PopularItems[0].QuantitySold)

	stats, err := env.Analytics.CustomerAnalytics(cust.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "19.98", stats.TotalSpending)
	require.NotNil(t, stats.FavoriteRestaurant)
	assert.Equal(t, "Pad Thai House", *stats.FavoriteRestaurant)
}
