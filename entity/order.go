package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus covers the full lifecycle of a delivery order.
// delivered and cancelled are terminal.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	CustomerID uint     `gorm:"not null" json:"customerId"`
	Customer   Customer `json:"-"` // preload on detail only

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderStatus OrderStatus `gorm:"not null;default:'placed'" json:"orderStatus"`

	// Fixed at placement from snapshot item prices; never recalculated.
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	DeliveryAddress     string     `gorm:"not null" json:"deliveryAddress"`
	SpecialInstructions string     `json:"specialInstructions"`
	OrderDate           time.Time  `gorm:"not null" json:"orderDate"`
	DeliveryTime        *time.Time `json:"deliveryTime"`

	Items  []OrderItem `json:"-"`
	Review *Review     `json:"-"`
}
