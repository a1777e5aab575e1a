package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Address     string `gorm:"not null" json:"address"`
	// No default tag: it would override an explicit false on insert.
	IsActive    bool   `gorm:"not null" json:"isActive"`

	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
