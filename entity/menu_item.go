package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu item categories accepted by the catalog.
const (
	CategoryAppetizer  = "Appetizer"
	CategoryMainCourse = "Main Course"
	CategoryDessert    = "Dessert"
	CategoryBeverage   = "Beverage"
	CategorySnack      = "Snack"
	CategorySideDish   = "Side Dish"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"not null" json:"category"`

	// No column defaults on the flags: GORM drops zero-valued fields that
	// carry a default tag on insert, which would flip false to the default.
	IsVegetarian bool `gorm:"not null" json:"isVegetarian"`
	IsVegan      bool `gorm:"not null" json:"isVegan"`
	IsAvailable  bool `gorm:"not null" json:"isAvailable"`

	PreparationTime int `gorm:"not null" json:"preparationTime"` // minutes

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload for with-restaurant detail

	OrderItems []OrderItem `json:"-"`
}
