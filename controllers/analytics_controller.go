package controllers

import (
	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(s *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: s}
}

// GET /restaurants/:id/analytics
func (ctl *AnalyticsController) RestaurantPerformance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	perf, err := ctl.Service.RestaurantPerformance(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, perf)
}

// GET /customers/:id/analytics
func (ctl *AnalyticsController) CustomerAnalytics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := ctl.Service.CustomerAnalytics(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}
