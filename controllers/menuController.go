package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/littlelemon/littlelemon-api/initializers"
	"github.com/littlelemon/littlelemon-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type menuItemInput struct {
	Title      string         `json:"title" binding:"required"`
	Price      float64        `json:"price" binding:"required,gt=0"`
	Featured   bool           `json:"featured"`
	CategoryID uint           `json:"categoryId" binding:"required"`
	Tags       datatypes.JSON `json:"tags"`
}

// menuItemTaken reports whether another menu item already uses the same
// (title, price) pair.
func menuItemTaken(title string, price float64, excludeID uint) (bool, error) {
	var count int64
	err := initializers.DB.Model(&models.MenuItem{}).
		Where("title = ? AND price = ? AND id <> ?", title, price, excludeID).
		Count(&count).Error
	return count > 0, err
}

func GetMenuItems(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Category")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	switch ctx.Query("ordering") {
	case "price":
		query = query.Order("price asc")
	case "-price":
		query = query.Order("price desc")
	}

	menuItems := []models.MenuItem{}
	if result := query.Limit(limit).Offset(offset).Find(&menuItems); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, menuItems)
}

func CreateMenuItem(ctx *gin.Context) {
	var input menuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, input.CategoryID).Error; err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Category not found", nil)
		return
	}

	taken, err := menuItemTaken(input.Title, input.Price, 0)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu item", err)
		return
	}
	if taken {
		respondWithError(ctx, http.StatusBadRequest, "A menu item with this title and price already exists", nil)
		return
	}

	menuItem := models.MenuItem{
		Title:      input.Title,
		Price:      input.Price,
		Featured:   input.Featured,
		CategoryID: input.CategoryID,
		Tags:       input.Tags,
	}
	if err := initializers.DB.Create(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}
	initializers.DB.Preload("Category").First(&menuItem, menuItem.ID)

	ctx.JSON(http.StatusCreated, menuItem)
}

func GetMenuItem(ctx *gin.Context) {
	menuItemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	result := initializers.DB.Preload("Category").First(&menuItem, menuItemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}

func UpdateMenuItem(ctx *gin.Context) {
	menuItemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	if ctx.Request.Method == http.MethodPut {
		var input menuItemInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		menuItem.Title = input.Title
		menuItem.Price = input.Price
		menuItem.Featured = input.Featured
		menuItem.CategoryID = input.CategoryID
		menuItem.Tags = input.Tags
	} else {
		var patch struct {
			Title      *string         `json:"title"`
			Price      *float64        `json:"price"`
			Featured   *bool           `json:"featured"`
			CategoryID *uint           `json:"categoryId"`
			Tags       *datatypes.JSON `json:"tags"`
		}
		if err := ctx.ShouldBindJSON(&patch); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if patch.Title != nil {
			menuItem.Title = *patch.Title
		}
		if patch.Price != nil {
			menuItem.Price = *patch.Price
		}
		if patch.Featured != nil {
			menuItem.Featured = *patch.Featured
		}
		if patch.CategoryID != nil {
			menuItem.CategoryID = *patch.CategoryID
		}
		if patch.Tags != nil {
			menuItem.Tags = *patch.Tags
		}
	}

	if menuItem.Price <= 0 {
		respondWithError(ctx, http.StatusBadRequest, "Price must be positive", nil)
		return
	}
	if err := initializers.DB.First(&models.Category{}, menuItem.CategoryID).Error; err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Category not found", nil)
		return
	}

	taken, err := menuItemTaken(menuItem.Title, menuItem.Price, menuItem.ID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu item", err)
		return
	}
	if taken {
		respondWithError(ctx, http.StatusBadRequest, "A menu item with this title and price already exists", nil)
		return
	}

	if err := initializers.DB.Save(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}
	initializers.DB.Preload("Category").First(&menuItem, menuItem.ID)

	ctx.JSON(http.StatusOK, menuItem)
}

func DeleteMenuItem(ctx *gin.Context) {
	menuItemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.MenuItem{}, menuItemID)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuItemImage stores an image for the menu item in S3 and saves the
// resulting URL on the item.
func UploadMenuItemImage(ctx *gin.Context) {
	menuItemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu item", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer f.Close()

	// Unique key to prevent overwrites
	key := fmt.Sprintf("menu-items/%d-%s-%s", menuItemID, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := initializers.DB.Model(&menuItem).Update("image_url", result.Location).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image URL", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"imageUrl": result.Location})
}

func GetCategories(ctx *gin.Context) {
	categories := []models.Category{}
	if result := initializers.DB.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var count int64
	initializers.DB.Model(&models.Category{}).Where("slug = ?", category.Slug).Count(&count)
	if count > 0 {
		respondWithError(ctx, http.StatusBadRequest, "A category with this slug already exists", nil)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}
