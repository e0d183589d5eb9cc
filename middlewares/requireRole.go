package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/models"
)

// RequireManager must run after RequireAuth. Only members of the Manager
// group pass; delivery crew and customers get a 403.
func RequireManager() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, exists := ctx.Get("role")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}
		if role.(models.Role) != models.RoleManager {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Manager access required"})
			return
		}
		ctx.Next()
	}
}
