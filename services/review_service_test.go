package services

import (
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewOnlyForDeliveredOrders(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")
	order := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err := env.Reviews.AddReview(order.ID, 5, "great")
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = env.Orders.UpdateStatus(order.ID, entity.StatusDelivered)
	require.NoError(t, err)

	rev, err := env.Reviews.AddReview(order.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, cust.ID, rev.CustomerID)
	assert.Equal(t, rest.ID, rev.RestaurantID)
	assert.Equal(t, order.ID, rev.OrderID)
}

func TestAddReviewDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")
	order := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	_, err := env.Orders.UpdateStatus(order.ID, entity.StatusDelivered)
	require.NoError(t, err)

	_, err = env.Reviews.AddReview(order.ID, 4, "")
	require.NoError(t, err)

	_, err = env.Reviews.AddReview(order.ID, 2, "changed my mind")
	require.ErrorIs(t, err, ErrConflict)
}

func TestAddReviewUnknownOrder(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Reviews.AddReview(9999, 3, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddReviewRecomputesRestaurantRating(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	deliver := func() *entity.Order {
		order := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
		_, err := env.Orders.UpdateStatus(order.ID, entity.StatusDelivered)
		require.NoError(t, err)
		return order
	}

	first := deliver()
	_, err := env.Reviews.AddReview(first.ID, 4, "")
	require.NoError(t, err)

	got, err := env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.Rating, 0.001)

	second := deliver()
	_, err = env.Reviews.AddReview(second.ID, 5, "")
	require.NoError(t, err)

	got, err = env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got.Rating, 0.001)

	// 4, 5, 5 -> 4.666... rounds to 4.67.
	third := deliver()
	_, err = env.Reviews.AddReview(third.ID, 5, "")
	require.NoError(t, err)

	got, err = env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.67, got.Rating, 0.001)
}

func TestListReviewsChecksOwnerExists(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Reviews.ListByRestaurant(9999)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = env.Reviews.ListByCustomer(9999)
	require.ErrorIs(t, err, ErrNotFound)
}
