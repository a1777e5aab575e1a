package controllers

import (
	"strconv"
	"time"

	"fooddelivery/entity"
	"fooddelivery/pkg/resp"
	"fooddelivery/repository"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// ====== Request DTO ======

type CreateMenuItemReq struct {
	Name            string          `json:"name" binding:"required,min=3,max=100"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Category        string          `json:"category" binding:"required,oneof=Appetizer 'Main Course' Dessert Beverage Snack 'Side Dish'"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsVegan         bool            `json:"isVegan"`
	IsAvailable     *bool           `json:"isAvailable"`
	PreparationTime int             `json:"preparationTime" binding:"required,gt=0"`
}

// ====== Response DTO ======

type MenuItemResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsVegan         bool            `json:"isVegan"`
	IsAvailable     bool            `json:"isAvailable"`
	PreparationTime int             `json:"preparationTime"`
	RestaurantID    uint            `json:"restaurantId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type MenuItemWithRestaurantResponse struct {
	MenuItemResponse
	Restaurant RestaurantResponse `json:"restaurant"`
}

func toMenuItemResponse(m *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		Category:        m.Category,
		IsVegetarian:    m.IsVegetarian,
		IsVegan:         m.IsVegan,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		RestaurantID:    m.RestaurantID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ====== Handlers ======

// POST /menu-items?restaurant_id=
func (ctl *MenuController) Create(c *gin.Context) {
	restID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restID <= 0 {
		resp.BadRequest(c, "restaurant_id query parameter is required")
		return
	}

	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		resp.BadRequest(c, "price must be positive")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := entity.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsAvailable:     available,
		PreparationTime: req.PreparationTime,
	}
	if err := ctl.Service.Create(uint(restID), &item); err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, toMenuItemResponse(&item))
}

// GET /menu-items
func (ctl *MenuController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := ctl.Service.List(skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	resp.OK(c, out)
}

// GET /menu-items/search?category=&vegetarian=&vegan=&available_only=
func (ctl *MenuController) Search(c *gin.Context) {
	f := repository.MenuItemFilters{
		Category:      c.Query("category"),
		AvailableOnly: true,
	}
	if v := c.Query("vegetarian"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "vegetarian must be a boolean")
			return
		}
		f.Vegetarian = &b
	}
	if v := c.Query("vegan"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "vegan must be a boolean")
			return
		}
		f.Vegan = &b
	}
	if v := c.Query("available_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "available_only must be a boolean")
			return
		}
		f.AvailableOnly = b
	}
	f.Skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := ctl.Service.Search(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	resp.OK(c, out)
}

// GET /menu-items/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toMenuItemResponse(item))
}

// GET /menu-items/:id/with-restaurant
func (ctl *MenuController) WithRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := ctl.Service.GetWithRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := MenuItemWithRestaurantResponse{
		MenuItemResponse: toMenuItemResponse(item),
		Restaurant:       toRestaurantResponse(&item.Restaurant),
	}
	resp.OK(c, out)
}

// PUT /menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toMenuItemResponse(item))
}

// DELETE /menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "Menu item deleted successfully"})
}
