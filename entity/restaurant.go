package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CuisineType string `gorm:"not null" json:"cuisineType"`
	Address     string `gorm:"not null" json:"address"`
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`

	// Derived from reviews, recomputed on every AddReview. Never edited directly.
	Rating float64 `gorm:"not null;default:0" json:"rating"`

	// No default tag: it would override an explicit false on insert.
	IsActive    bool   `gorm:"not null" json:"isActive"`
	OpeningTime string `gorm:"not null" json:"openingTime"` // "HH:MM"
	ClosingTime string `gorm:"not null" json:"closingTime"`

	MenuItems []MenuItem `json:"-"` // preload on with-menu endpoints only
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
