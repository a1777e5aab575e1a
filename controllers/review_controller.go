package controllers

import (
	"time"

	"fooddelivery/entity"
	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID           uint                `json:"id"`
	CustomerID   uint                `json:"customerId"`
	RestaurantID uint                `json:"restaurantId"`
	OrderID      uint                `json:"orderId"`
	Rating       int                 `json:"rating"`
	Comment      string              `json:"comment"`
	CreatedAt    time.Time           `json:"createdAt"`
	Customer     *CustomerResponse   `json:"customer,omitempty"`
	Restaurant   *RestaurantResponse `json:"restaurant,omitempty"`
}

func toReviewResponse(rev *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           rev.ID,
		CustomerID:   rev.CustomerID,
		RestaurantID: rev.RestaurantID,
		OrderID:      rev.OrderID,
		Rating:       rev.Rating,
		Comment:      rev.Comment,
		CreatedAt:    rev.CreatedAt,
	}
}

// POST /orders/:id/review
func (ctl *ReviewController) Create(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := ctl.Service.AddReview(orderID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, toReviewResponse(rev))
}

// GET /restaurants/:id/reviews
func (ctl *ReviewController) ListForRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := ctl.Service.ListByRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		item := toReviewResponse(&reviews[i])
		cust := toCustomerResponse(&reviews[i].Customer)
		item.Customer = &cust
		out = append(out, item)
	}
	resp.OK(c, out)
}

// GET /customers/:id/reviews
func (ctl *ReviewController) ListForCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := ctl.Service.ListByCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		item := toReviewResponse(&reviews[i])
		rest := toRestaurantResponse(&reviews[i].Restaurant)
		item.Restaurant = &rest
		out = append(out, item)
	}
	resp.OK(c, out)
}
