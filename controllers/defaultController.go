package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Little Lemon API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/users/" - Register a new user
- POST "/auth/login" - Obtain an access token
- GET "/users/users/me/" - Current user details

MENU
- GET "/menu-items/" - List menu items (search, ordering, pagination)
- POST "/menu-items/" - Create menu item (Manager)
- GET "/menu-items/{id}" - Menu item details
- PUT/PATCH "/menu-items/{id}" - Update menu item (Manager)
- DELETE "/menu-items/{id}" - Delete menu item (Manager)
- POST "/menu-items/{id}/image" - Upload menu item image (Manager)
- GET "/categories/" - List categories
- POST "/categories/" - Create category (Manager)

CART
- GET "/cart/menu-items/" - View your cart
- POST "/cart/menu-items/" - Add a menu item to your cart
- DELETE "/cart/menu-items/" - Clear your cart

ORDERS
- GET "/orders/" - List orders visible to you
- POST "/orders/" - Place an order from your cart
- GET "/orders/{id}" - Order details
- PUT/PATCH "/orders/{id}" - Update delivery crew / status

GROUPS (Manager only)
- GET/POST "/groups/manager/users" - List / add managers
- DELETE "/groups/manager/users/{id}" - Remove a manager
- GET/POST "/groups/delivery-crew/users" - List / add delivery crew
- DELETE "/groups/delivery-crew/users/{id}" - Remove delivery crew`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
