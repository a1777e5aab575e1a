package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	CustomerID uint     `gorm:"not null" json:"customerId"`
	Customer   Customer `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// One review per order, enforced at the database level.
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `json:"comment"`
}
