package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/initializers"
	"github.com/littlelemon/littlelemon-api/models"
	"gorm.io/gorm"
)

// GetCart returns all of the caller's cart lines, oldest first.
func GetCart(ctx *gin.Context) {
	user := currentUser(ctx)

	cartItems := []models.CartItem{}
	result := initializers.DB.
		Where("user_id = ?", user.ID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Order("id asc").
		Find(&cartItems)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	ctx.JSON(http.StatusOK, cartItems)
}

// AddToCart appends a line to the caller's cart. The unit price is copied
// from the current menu item price. Identical items are kept as separate
// lines rather than merged.
func AddToCart(ctx *gin.Context) {
	user := currentUser(ctx)

	var input struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, input.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Menu item not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu item")
		}
		return
	}

	cartItem := models.CartItem{
		UserID:     user.ID,
		MenuItemID: menuItem.ID,
		Quantity:   input.Quantity,
		UnitPrice:  menuItem.Price,
		Price:      menuItem.Price * float64(input.Quantity),
	}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":    "Cart item created successfully",
		"cartItemId": cartItem.ID,
	})
}

// ClearCart deletes the caller's cart lines only, never anyone else's.
func ClearCart(ctx *gin.Context) {
	user := currentUser(ctx)

	if result := initializers.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}); result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu items in cart deleted successfully"})
}
