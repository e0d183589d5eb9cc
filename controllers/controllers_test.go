package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/littlelemon/littlelemon-api/initializers"
	"github.com/littlelemon/littlelemon-api/models"
	"github.com/littlelemon/littlelemon-api/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "password123"

// setupTest wires the controllers to an in-memory SQLite database and builds
// the full route table, so tests exercise the same stack as production minus
// the MySQL server.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ORDER_WEBHOOK_URL", "")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	initializers.DB = db
	initializers.SeedGroups()

	gin.SetMode(gin.TestMode)
	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.MenuRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.GroupRoutes(server)
	return server
}

func createUser(t *testing.T, username string, groups ...string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@littlelemon.com",
		Password: string(hash),
	}
	for _, name := range groups {
		var group models.Group
		require.NoError(t, initializers.DB.Where("name = ?", name).First(&group).Error)
		user.Groups = append(user.Groups, group)
	}
	require.NoError(t, initializers.DB.Create(&user).Error)
	return user
}

func loginAs(t *testing.T, server *gin.Engine, username string) string {
	t.Helper()
	resp := doRequest(server, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func doRequest(server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createCategory(t *testing.T, slug, title string) models.Category {
	t.Helper()
	category := models.Category{Slug: slug, Title: title}
	require.NoError(t, initializers.DB.Create(&category).Error)
	return category
}

func createMenuItem(t *testing.T, title string, price float64, categoryID uint) models.MenuItem {
	t.Helper()
	menuItem := models.MenuItem{Title: title, Price: price, CategoryID: categoryID}
	require.NoError(t, initializers.DB.Create(&menuItem).Error)
	return menuItem
}

func addCartLine(t *testing.T, server *gin.Engine, token string, menuItemID uint, quantity int) {
	t.Helper()
	resp := doRequest(server, http.MethodPost, "/cart/menu-items/", token, gin.H{
		"menuItemId": menuItemID,
		"quantity":   quantity,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
}
