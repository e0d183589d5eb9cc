package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/controllers"
	"github.com/littlelemon/littlelemon-api/middlewares"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu-items/", controllers.GetMenuItems)
	server.GET("/menu-items/:id", controllers.GetMenuItem)
	server.GET("/categories/", controllers.GetCategories)

	manager := server.Group("/", middlewares.RequireAuth(), middlewares.RequireManager())
	{
		manager.POST("/menu-items/", controllers.CreateMenuItem)
		manager.PUT("/menu-items/:id", controllers.UpdateMenuItem)
		manager.PATCH("/menu-items/:id", controllers.UpdateMenuItem)
		manager.DELETE("/menu-items/:id", controllers.DeleteMenuItem)
		manager.POST("/menu-items/:id/image", controllers.UploadMenuItemImage)
		manager.POST("/categories/", controllers.CreateCategory)
	}
}
