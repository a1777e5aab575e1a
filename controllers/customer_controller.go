package controllers

import (
	"strconv"
	"time"

	"fooddelivery/entity"
	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Service: s}
}

type CreateCustomerReq struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Address     string `json:"address" binding:"required,min=10"`
}

type CustomerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCustomerResponse(cust *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		Email:       cust.Email,
		PhoneNumber: cust.PhoneNumber,
		Address:     cust.Address,
		IsActive:    cust.IsActive,
		CreatedAt:   cust.CreatedAt,
		UpdatedAt:   cust.UpdatedAt,
	}
}

// POST /customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var req CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust := entity.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsActive:    true,
	}
	if err := ctl.Service.Create(&cust); err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, toCustomerResponse(&cust))
}

// GET /customers
func (ctl *CustomerController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	custs, err := ctl.Service.List(skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]CustomerResponse, 0, len(custs))
	for i := range custs {
		out = append(out, toCustomerResponse(&custs[i]))
	}
	resp.OK(c, out)
}

// GET /customers/:id
func (ctl *CustomerController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toCustomerResponse(cust))
}

// PUT /customers/:id
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := ctl.Service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, toCustomerResponse(cust))
}

// DELETE /customers/:id
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}
