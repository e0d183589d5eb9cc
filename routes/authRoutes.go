package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/controllers"
	"github.com/littlelemon/littlelemon-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/users/", controllers.Signup)
	server.GET("/users/users/me/", middlewares.RequireAuth(), controllers.CurrentUser)
	server.POST("/auth/login", controllers.Login)
}
