package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload when the item name/detail is needed

	Quantity int `gorm:"not null" json:"quantity"`

	// Snapshot of the menu item's price at order time; immune to later edits.
	ItemPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"itemPrice"`

	SpecialRequests string `json:"specialRequests"`
}
