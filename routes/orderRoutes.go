package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/controllers"
	"github.com/littlelemon/littlelemon-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("/", controllers.GetOrders)
		orders.POST("/", controllers.PlaceOrder)
		orders.GET("/:id", controllers.GetOrder)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.PATCH("/:id", controllers.UpdateOrder)
	}
}
