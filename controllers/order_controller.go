package controllers

import (
	"time"

	"fooddelivery/entity"
	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// ====== Request DTO ======

type UpdateOrderStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required,oneof=placed confirmed preparing out_for_delivery delivered cancelled"`
}

// ====== Response DTO ======

type OrderItemResponse struct {
	ID              uint              `json:"id"`
	MenuItemID      uint              `json:"menuItemId"`
	Quantity        int               `json:"quantity"`
	ItemPrice       decimal.Decimal   `json:"itemPrice"`
	SpecialRequests string            `json:"specialRequests"`
	MenuItem        *MenuItemResponse `json:"menuItem,omitempty"`
}

type OrderResponse struct {
	ID                  uint               `json:"id"`
	CustomerID          uint               `json:"customerId"`
	RestaurantID        uint               `json:"restaurantId"`
	OrderStatus         entity.OrderStatus `json:"orderStatus"`
	TotalAmount         decimal.Decimal    `json:"totalAmount"`
	DeliveryAddress     string             `json:"deliveryAddress"`
	SpecialInstructions string             `json:"specialInstructions"`
	OrderDate           time.Time          `json:"orderDate"`
	DeliveryTime        *time.Time         `json:"deliveryTime"`
}

type OrderDetailsResponse struct {
	OrderResponse
	Customer   CustomerResponse    `json:"customer"`
	Restaurant RestaurantResponse  `json:"restaurant"`
	Items      []OrderItemResponse `json:"items"`
}

func toOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		RestaurantID:        o.RestaurantID,
		OrderStatus:         o.OrderStatus,
		TotalAmount:         o.TotalAmount,
		DeliveryAddress:     o.DeliveryAddress,
		SpecialInstructions: o.SpecialInstructions,
		OrderDate:           o.OrderDate,
		DeliveryTime:        o.DeliveryTime,
	}
}

func toOrderDetailsResponse(o *entity.Order) OrderDetailsResponse {
	out := OrderDetailsResponse{
		OrderResponse: toOrderResponse(o),
		Customer:      toCustomerResponse(&o.Customer),
		Restaurant:    toRestaurantResponse(&o.Restaurant),
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
	}
	for i := range o.Items {
		it := &o.Items[i]
		item := OrderItemResponse{
			ID:              it.ID,
			MenuItemID:      it.MenuItemID,
			Quantity:        it.Quantity,
			ItemPrice:       it.ItemPrice,
			SpecialRequests: it.SpecialRequests,
		}
		if it.MenuItem.ID != 0 {
			m := toMenuItemResponse(&it.MenuItem)
			item.MenuItem = &m
		}
		out.Items = append(out.Items, item)
	}
	return out
}

// ====== Handlers ======

// POST /customers/:id/orders
func (ctl *OrderController) Place(c *gin.Context) {
	customerID, ok := pathID(c)
	if !ok {
		return
	}
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Service.Place(customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, toOrderDetailsResponse(order))
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := ctl.Service.Detail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toOrderDetailsResponse(order))
}

// PUT /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toOrderResponse(order))
}

// GET /customers/:id/orders
func (ctl *OrderController) ListForCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders, err := ctl.Service.ListByCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/orders
func (ctl *OrderController) ListForRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders, err := ctl.Service.ListByRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	resp.OK(c, out)
}
