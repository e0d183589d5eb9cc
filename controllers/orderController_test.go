package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/initializers"
	"github.com/littlelemon/littlelemon-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrderAs(t *testing.T, server *gin.Engine, token string) models.Order {
	t.Helper()
	resp := doRequest(server, http.MethodPost, "/orders/", token, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &order))
	return order
}

func TestPlaceOrderConvertsCart(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	salad := createMenuItem(t, "Greek Salad", 5.00, category.ID)
	anna := createUser(t, "anna")
	token := loginAs(t, server, "anna")

	addCartLine(t, server, token, pasta.ID, 2)
	addCartLine(t, server, token, salad.ID, 1)

	order := placeOrderAs(t, server, token)
	assert.Equal(t, 30.00, order.Total)
	assert.Equal(t, anna.ID, order.UserID)
	assert.False(t, order.Status)
	assert.Nil(t, order.DeliveryCrewID)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, 25.00, order.OrderItems[0].Price)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)

	var cartCount int64
	initializers.DB.Model(&models.CartItem{}).Where("user_id = ?", anna.ID).Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	token := loginAs(t, server, "anna")

	addCartLine(t, server, token, pasta.ID, 1)
	order := placeOrderAs(t, server, token)

	require.NoError(t, initializers.DB.Model(&pasta).Update("price", 99.00).Error)

	var orderItem models.OrderItem
	require.NoError(t, initializers.DB.Where("order_id = ?", order.ID).First(&orderItem).Error)
	assert.Equal(t, 12.50, orderItem.Price)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	server := setupTest(t)
	createUser(t, "anna")
	token := loginAs(t, server, "anna")

	resp := doRequest(server, http.MethodPost, "/orders/", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var orderCount int64
	initializers.DB.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestListOrdersByRole(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	createUser(t, "ben")
	createUser(t, "manager", models.GroupManager)
	crew := createUser(t, "crew", models.GroupDeliveryCrew)

	annaToken := loginAs(t, server, "anna")
	addCartLine(t, server, annaToken, pasta.ID, 1)
	annaOrder := placeOrderAs(t, server, annaToken)

	require.NoError(t, initializers.DB.Model(&models.Order{}).
		Where("id = ?", annaOrder.ID).Update("delivery_crew_id", crew.ID).Error)

	listOrders := func(token string) []models.Order {
		resp := doRequest(server, http.MethodGet, "/orders/", token, nil)
		require.Equal(t, http.StatusOK, resp.Code)
		var orders []models.Order
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &orders))
		return orders
	}

	assert.Len(t, listOrders(loginAs(t, server, "manager")), 1)
	assert.Len(t, listOrders(loginAs(t, server, "crew")), 1)
	assert.Len(t, listOrders(annaToken), 1)
	assert.Empty(t, listOrders(loginAs(t, server, "ben")))
}

func TestGetOrderVisibility(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	createUser(t, "ben")
	createUser(t, "manager", models.GroupManager)

	annaToken := loginAs(t, server, "anna")
	addCartLine(t, server, annaToken, pasta.ID, 1)
	order := placeOrderAs(t, server, annaToken)
	path := "/orders/" + itoa(order.ID)

	resp := doRequest(server, http.MethodGet, path, annaToken, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(server, http.MethodGet, path, loginAs(t, server, "manager"), nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	// Another customer cannot fetch someone else's order by id
	resp = doRequest(server, http.MethodGet, path, loginAs(t, server, "ben"), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCustomerCannotUpdateOrder(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	annaToken := loginAs(t, server, "anna")

	addCartLine(t, server, annaToken, pasta.ID, 1)
	order := placeOrderAs(t, server, annaToken)

	resp := doRequest(server, http.MethodPatch, "/orders/"+itoa(order.ID), annaToken, gin.H{
		"status": true,
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var unchanged models.Order
	require.NoError(t, initializers.DB.First(&unchanged, order.ID).Error)
	assert.False(t, unchanged.Status)
	assert.Nil(t, unchanged.DeliveryCrewID)
}

func TestManagerAssignsDeliveryCrew(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	createUser(t, "manager", models.GroupManager)
	crew := createUser(t, "crew", models.GroupDeliveryCrew)
	outsider := createUser(t, "outsider")

	annaToken := loginAs(t, server, "anna")
	addCartLine(t, server, annaToken, pasta.ID, 1)
	order := placeOrderAs(t, server, annaToken)
	managerToken := loginAs(t, server, "manager")

	// Assigning a user outside the Delivery crew group is a validation error
	resp := doRequest(server, http.MethodPatch, "/orders/"+itoa(order.ID), managerToken, gin.H{
		"deliveryCrewId": outsider.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(server, http.MethodPatch, "/orders/"+itoa(order.ID), managerToken, gin.H{
		"deliveryCrewId": crew.ID,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated models.Order
	require.NoError(t, initializers.DB.First(&updated, order.ID).Error)
	require.NotNil(t, updated.DeliveryCrewID)
	assert.Equal(t, crew.ID, *updated.DeliveryCrewID)
}

func TestDeliveryCrewUpdatesStatusOnly(t *testing.T) {
	server := setupTest(t)
	category := createCategory(t, "mains", "Mains")
	pasta := createMenuItem(t, "Pasta", 12.50, category.ID)
	createUser(t, "anna")
	crew := createUser(t, "crew", models.GroupDeliveryCrew)
	other := createUser(t, "othercrew", models.GroupDeliveryCrew)

	annaToken := loginAs(t, server, "anna")
	addCartLine(t, server, annaToken, pasta.ID, 1)
	order := placeOrderAs(t, server, annaToken)
	require.NoError(t, initializers.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).Update("delivery_crew_id", crew.ID).Error)

	crewToken := loginAs(t, server, "crew")
	path := "/orders/" + itoa(order.ID)

	// Crew cannot reassign the order
	resp := doRequest(server, http.MethodPatch, path, crewToken, gin.H{"deliveryCrewId": other.ID})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Crew cannot touch orders assigned to someone else
	resp = doRequest(server, http.MethodPatch, path, loginAs(t, server, "othercrew"), gin.H{"status": true})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doRequest(server, http.MethodPatch, path, crewToken, gin.H{"status": true})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated models.Order
	require.NoError(t, initializers.DB.First(&updated, order.ID).Error)
	assert.True(t, updated.Status)
}
