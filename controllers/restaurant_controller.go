package controllers

import (
	"time"

	"fooddelivery/entity"
	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// ====== Request DTO ======

type CreateRestaurantReq struct {
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description string  `json:"description"`
	CuisineType string  `json:"cuisineType" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	PhoneNumber string  `json:"phoneNumber" binding:"required,max=20"`
	Rating      float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	IsActive    *bool   `json:"isActive"`
	OpeningTime string  `json:"openingTime" binding:"required"`
	ClosingTime string  `json:"closingTime" binding:"required"`
}

// ====== Response DTO ======

type RestaurantResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CuisineType string    `json:"cuisineType"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"isActive"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RestaurantWithMenuResponse struct {
	RestaurantResponse
	MenuItems []MenuItemResponse `json:"menuItems"`
}

func toRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CuisineType: r.CuisineType,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Rating:      r.Rating,
		IsActive:    r.IsActive,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ====== Handlers ======

// POST /restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	rest := entity.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		CuisineType: req.CuisineType,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Rating:      req.Rating,
		IsActive:    active,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}
	if err := ctl.Service.Create(&rest); err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, toRestaurantResponse(&rest))
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]RestaurantResponse, 0, len(rests))
	for i := range rests {
		out = append(out, toRestaurantResponse(&rests[i]))
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rest, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toRestaurantResponse(rest))
}

// GET /restaurants/:id/with-menu
func (ctl *RestaurantController) WithMenu(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rest, err := ctl.Service.GetWithMenu(id)
	if err != nil {
		respondError(c, err)
		return
	}

	out := RestaurantWithMenuResponse{RestaurantResponse: toRestaurantResponse(rest)}
	out.MenuItems = make([]MenuItemResponse, 0, len(rest.MenuItems))
	for i := range rest.MenuItems {
		out.MenuItems = append(out.MenuItems, toMenuItemResponse(&rest.MenuItems[i]))
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/menu
func (ctl *RestaurantController) Menu(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := ctl.Service.Menu(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/average-price
func (ctl *RestaurantController) AveragePrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	avg, err := ctl.Service.AveragePrice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"averagePrice": avg})
}

// PUT /restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := ctl.Service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toRestaurantResponse(rest))
}

// DELETE /restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "Restaurant deleted"})
}
