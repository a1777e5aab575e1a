package services

import (
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantDuplicatePhoneConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.createRestaurant(t, "Pad Thai House", "02-111-1111")

	err := env.Restaurants.Create(&entity.Restaurant{
		Name:        "Copycat Kitchen",
		CuisineType: "Thai",
		Address:     "2 Test Street",
		PhoneNumber: "02-111-1111",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateRestaurantStoresInactiveFlag(t *testing.T) {
	env := newTestEnv(t)
	rest := &entity.Restaurant{
		Name:        "Closed For Now",
		CuisineType: "Thai",
		Address:     "3 Test Street",
		PhoneNumber: "02-333-3333",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		IsActive:    false,
	}
	require.NoError(t, env.Restaurants.Create(rest))

	got, err := env.Restaurants.Get(rest.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateRestaurantAppliesPartialFields(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")

	name := "Pad Thai Palace"
	inactive := false
	updated, err := env.Restaurants.Update(rest.ID, &UpdateRestaurantReq{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai Palace", updated.Name)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Thai", updated.CuisineType)
	assert.Equal(t, "02-111-1111", updated.PhoneNumber)
}

func TestDeleteRestaurantCascadesMenuItems(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	item := env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)

	require.NoError(t, env.Restaurants.Delete(rest.ID))

	_, err := env.Restaurants.Get(rest.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = env.Menu.Get(item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantMenuRequiresRestaurant(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Restaurants.Menu(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetWithMenuPreloadsItems(t *testing.T) {
	env := newTestEnv(t)
	rest := env.createRestaurant(t, "Pad Thai House", "02-111-1111")
	env.createMenuItem(t, rest.ID, "Pad Thai", "9.99", true)
	env.createMenuItem(t, rest.ID, "Tom Yum", "11.00", true)

	got, err := env.Restaurants.GetWithMenu(rest.ID)
	require.NoError(t, err)
	assert.Len(t, got.MenuItems, 2)
}
