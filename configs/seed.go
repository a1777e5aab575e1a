package configs

import (
	"fooddelivery/entity"

	"github.com/shopspring/decimal"
)

// SeedDemo loads a small demo catalog for local development.
// Safe to run repeatedly; it skips when restaurants already exist.
func SeedDemo() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Mama Mia Trattoria",
			Description: "Wood-fired pizza and fresh pasta",
			CuisineType: "Italian",
			Address:     "12 Via Roma, Downtown",
			PhoneNumber: "+10000000001",
			IsActive:    true,
			OpeningTime: "11:00",
			ClosingTime: "23:00",
		},
		{
			Name:        "Golden Dragon",
			Description: "Cantonese classics",
			CuisineType: "Chinese",
			Address:     "88 Harbor Street",
			PhoneNumber: "+10000000002",
			IsActive:    true,
			OpeningTime: "10:30",
			ClosingTime: "22:00",
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{
			Name:            "Margherita Pizza",
			Description:     "Tomato, mozzarella, basil",
			Price:           decimal.NewFromFloat(9.99),
			Category:        entity.CategoryMainCourse,
			IsVegetarian:    true,
			IsAvailable:     true,
			PreparationTime: 20,
			RestaurantID:    restaurants[0].ID,
		},
		{
			Name:            "Tiramisu",
			Description:     "Espresso-soaked ladyfingers",
			Price:           decimal.NewFromFloat(5.50),
			Category:        entity.CategoryDessert,
			IsVegetarian:    true,
			IsAvailable:     true,
			PreparationTime: 5,
			RestaurantID:    restaurants[0].ID,
		},
		{
			Name:            "Kung Pao Chicken",
			Description:     "Spicy stir-fry with peanuts",
			Price:           decimal.NewFromFloat(11.25),
			Category:        entity.CategoryMainCourse,
			IsAvailable:     true,
			PreparationTime: 15,
			RestaurantID:    restaurants[1].ID,
		},
		{
			Name:            "Spring Rolls",
			Description:     "Vegetable spring rolls",
			Price:           decimal.NewFromFloat(4.75),
			Category:        entity.CategoryAppetizer,
			IsVegetarian:    true,
			IsVegan:         true,
			IsAvailable:     true,
			PreparationTime: 10,
			RestaurantID:    restaurants[1].ID,
		},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	customers := []entity.Customer{
		{
			Name:        "Alice Johnson",
			Email:       "alice@example.com",
			PhoneNumber: "+10000000100",
			Address:     "42 Elm Street, Apt 7",
			IsActive:    true,
		},
	}
	return db.Create(&customers).Error
}
