package services

import (
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	err := env.Customers.Create(&entity.Customer{
		Name:        "Impostor",
		Email:       "alice@example.com",
		PhoneNumber: "081-000-0002",
		Address:     "43 Long Enough Avenue",
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateCustomerStoresInactiveFlag(t *testing.T) {
	env := newTestEnv(t)
	cust := &entity.Customer{
		Name:        "Dormant Dana",
		Email:       "dana@example.com",
		PhoneNumber: "081-000-0003",
		Address:     "7 Long Enough Boulevard",
		IsActive:    false,
	}
	require.NoError(t, env.Customers.Create(cust))

	got, err := env.Customers.Get(cust.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateCustomerAppliesPartialFields(t *testing.T) {
	env := newTestEnv(t)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	addr := "99 Somewhere Else Road"
	updated, err := env.Customers.Update(cust.ID, &UpdateCustomerReq{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "99 Somewhere Else Road", updated.Address)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestDeleteCustomerCascadesOrdersAndReviews(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	cust := env.createCustomer(t, "Alice", "alice@example.com", "081-000-0001")

	order := env.placeOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	_, err := env.Orders.UpdateStatus(order.ID, entity.StatusDelivered)
	require.NoError(t, err)
	_, err = env.Reviews.AddReview(order.ID, 5, "")
	require.NoError(t, err)

	require.NoError(t, env.Customers.Delete(cust.ID))

	_, err = env.Customers.Get(cust.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var orders, items, reviews int64
	require.NoError(t, env.DB.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, env.DB.Model(&entity.OrderItem{}).Count(&items).Error)
	require.NoError(t, env.DB.Model(&entity.Review{}).Count(&reviews).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.Zero(t, reviews)

	// The restaurant itself is untouched.
	_, err = env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
}
