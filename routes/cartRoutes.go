package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/controllers"
	"github.com/littlelemon/littlelemon-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("/menu-items/", controllers.GetCart)
		cart.POST("/menu-items/", controllers.AddToCart)
		cart.DELETE("/menu-items/", controllers.ClearCart)
	}
}
