package routes

import (
	"fooddelivery/controllers"
	"fooddelivery/repository"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	custRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	restaurantCtl := controllers.NewRestaurantController(
		services.NewRestaurantService(db, restRepo, menuRepo),
	)
	menuCtl := controllers.NewMenuController(
		services.NewMenuService(menuRepo, restRepo),
	)
	customerCtl := controllers.NewCustomerController(
		services.NewCustomerService(db, custRepo),
	)
	orderCtl := controllers.NewOrderController(
		services.NewOrderService(db, orderRepo, menuRepo, restRepo, custRepo),
	)
	reviewCtl := controllers.NewReviewController(
		services.NewReviewService(db, reviewRepo, orderRepo, restRepo, custRepo),
	)
	analyticsCtl := controllers.NewAnalyticsController(
		services.NewAnalyticsService(analyticsRepo, restRepo, custRepo),
	)

	restaurants := r.Group("/restaurants")
	{
		restaurants.POST("", restaurantCtl.Create)
		restaurants.GET("", restaurantCtl.List)
		restaurants.GET("/:id", restaurantCtl.Detail)
		restaurants.GET("/:id/with-menu", restaurantCtl.WithMenu)
		restaurants.GET("/:id/menu", restaurantCtl.Menu)
		restaurants.GET("/:id/average-price", restaurantCtl.AveragePrice)
		restaurants.PUT("/:id", restaurantCtl.Update)
		restaurants.DELETE("/:id", restaurantCtl.Delete)
		restaurants.GET("/:id/orders", orderCtl.ListForRestaurant)
		restaurants.GET("/:id/reviews", reviewCtl.ListForRestaurant)
		restaurants.GET("/:id/analytics", analyticsCtl.RestaurantPerformance)
	}

	menuItems := r.Group("/menu-items")
	{
		menuItems.POST("", menuCtl.Create)
		menuItems.GET("", menuCtl.List)
		menuItems.GET("/search", menuCtl.Search)
		menuItems.GET("/:id", menuCtl.Detail)
		menuItems.GET("/:id/with-restaurant", menuCtl.WithRestaurant)
		menuItems.PUT("/:id", menuCtl.Update)
		menuItems.DELETE("/:id", menuCtl.Delete)
	}

	customers := r.Group("/customers")
	{
		customers.POST("", customerCtl.Create)
		customers.GET("", customerCtl.List)
		customers.GET("/:id", customerCtl.Detail)
		customers.PUT("/:id", customerCtl.Update)
		customers.DELETE("/:id", customerCtl.Delete)
		customers.POST("/:id/orders", orderCtl.Place)
		customers.GET("/:id/orders", orderCtl.ListForCustomer)
		customers.GET("/:id/reviews", reviewCtl.ListForCustomer)
		customers.GET("/:id/analytics", analyticsCtl.CustomerAnalytics)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/:id", orderCtl.Detail)
		orders.PUT("/:id/status", orderCtl.UpdateStatus)
		orders.POST("/:id/review", reviewCtl.Create)
	}
}
