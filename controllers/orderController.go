package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/initializers"
	"github.com/littlelemon/littlelemon-api/models"
	"github.com/littlelemon/littlelemon-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errEmptyCart    = errors.New("no item in cart")
	errInvalidOrder = errors.New("invalid order data")
)

// placeOrder converts the caller's whole cart into an order inside a single
// transaction: either the order and all of its items are created and the cart
// is emptied, or nothing happens. The cart rows are locked for the duration
// so a concurrent checkout by the same user cannot spend the same lines twice.
func placeOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		lines := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() == "mysql" {
			// sqlite (tests) has no row locks; its writes are serialized anyway
			lines = lines.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var cartItems []models.CartItem
		if err := lines.Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return errEmptyCart
		}

		var total float64
		for _, item := range cartItems {
			total += item.Price
		}

		order = models.Order{
			UserID: userID,
			Status: false,
			Total:  total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("%w: %v", errInvalidOrder, err)
		}

		lineIDs := make([]uint, 0, len(cartItems))
		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				Price:      item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("%w: %v", errInvalidOrder, err)
			}
			lineIDs = append(lineIDs, item.ID)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}, lineIDs).Error
	})
	if err != nil {
		return nil, err
	}

	db.Preload("OrderItems").Preload("OrderItems.MenuItem").First(&order, order.ID)
	return &order, nil
}

// PlaceOrder handles checkout for the authenticated caller.
func PlaceOrder(ctx *gin.Context) {
	user := currentUser(ctx)

	order, err := placeOrder(initializers.DB, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, errEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, errEmptyCart.Error())
		case errors.Is(err, errInvalidOrder):
			log.Println("Order creation error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, errInvalidOrder.Error())
		default:
			log.Println("Checkout error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	utils.NotifyOrder(order, "created")
	ctx.JSON(http.StatusCreated, order)
}

// GetOrders lists orders according to the caller's role: managers and admins
// see every order, delivery crew sees the orders assigned to them and
// customers see the orders they placed.
func GetOrders(ctx *gin.Context) {
	user := currentUser(ctx)

	query := initializers.DB.Preload("OrderItems").Preload("OrderItems.MenuItem")
	switch currentRole(ctx) {
	case models.RoleAdmin, models.RoleManager:
	case models.RoleDelivery:
		query = query.Where("delivery_crew_id = ?", user.ID)
	default:
		query = query.Where("user_id = ?", user.ID)
	}

	orders := []models.Order{}
	if result := query.Order("created_at desc").Find(&orders); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// visibleOrder fetches a single order with the same role filter as the list
// endpoint, so callers can never see orders that are not theirs to see.
func visibleOrder(ctx *gin.Context, orderID int) (*models.Order, error) {
	user := currentUser(ctx)

	query := initializers.DB.Preload("OrderItems").Preload("OrderItems.MenuItem")
	switch currentRole(ctx) {
	case models.RoleAdmin, models.RoleManager:
	case models.RoleDelivery:
		query = query.Where("delivery_crew_id = ?", user.ID)
	default:
		query = query.Where("user_id = ?", user.ID)
	}

	var order models.Order
	if err := query.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	order, err := visibleOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order")
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateOrder changes the delivery crew assignment and/or delivery status.
// Customers may never update an order through this path. Delivery crew may
// only flip the status of orders assigned to them; managers and admins may
// also reassign the crew.
func UpdateOrder(ctx *gin.Context) {
	role := currentRole(ctx)
	if role == models.RoleCustomer {
		sendErrorResponse(ctx, http.StatusForbidden, "Customers may not modify orders")
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	order, err := visibleOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order")
		}
		return
	}

	var input struct {
		DeliveryCrewID *uint `json:"deliveryCrewId"`
		Status         *bool `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	updates := map[string]any{}
	if input.DeliveryCrewID != nil {
		if role == models.RoleDelivery {
			sendErrorResponse(ctx, http.StatusForbidden, "Delivery crew may only update the order status")
			return
		}
		var crew models.User
		if err := initializers.DB.Preload("Groups").First(&crew, *input.DeliveryCrewID).Error; err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Delivery crew user not found")
			return
		}
		if !crew.InGroup(models.GroupDeliveryCrew) {
			sendErrorResponse(ctx, http.StatusBadRequest, "User is not in the Delivery crew group")
			return
		}
		updates["delivery_crew_id"] = *input.DeliveryCrewID
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}

	initializers.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").First(order, order.ID)
	utils.NotifyOrder(order, "updated")
	ctx.JSON(http.StatusOK, order)
}
