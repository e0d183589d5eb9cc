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
	"gorm.io/gorm"
)

type groupMember struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func listGroupMembers(ctx *gin.Context, groupName string) {
	members := []groupMember{}
	result := initializers.DB.Model(&models.User{}).
		Select("users.id, users.username, users.email").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN `groups` ON `groups`.id = user_groups.group_id").
		Where("`groups`.name = ?", groupName).
		Scan(&members)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch group members")
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// addGroupMember creates a user from the request body and puts it in the
// named group, mirroring the registration flow.
func addGroupMember(ctx *gin.Context, groupName string) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(input.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	var group models.Group
	if err := initializers.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
		log.Println("Group lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Groups:   []models.Group{group},
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": fmt.Sprintf("User added to %s group successfully", groupName),
		"userId":  user.ID,
	})
}

// removeGroupMember drops the user from the named group. Removing a user
// that is not a member is reported as a validation error and leaves group
// membership unchanged.
func removeGroupMember(ctx *gin.Context, groupName string) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var user models.User
	if err := initializers.DB.Preload("Groups").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if !user.InGroup(groupName) {
		sendErrorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("User is not in the %s group", groupName))
		return
	}

	var group models.Group
	if err := initializers.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
		log.Println("Group lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := initializers.DB.Model(&user).Association("Groups").Delete(&group); err != nil {
		log.Println("Association delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": fmt.Sprintf("User removed from the %s group", groupName),
	})
}

func GetManagers(ctx *gin.Context) { listGroupMembers(ctx, models.GroupManager) }

func AddManager(ctx *gin.Context) { addGroupMember(ctx, models.GroupManager) }

func RemoveManager(ctx *gin.Context) { removeGroupMember(ctx, models.GroupManager) }

func GetDeliveryCrew(ctx *gin.Context) { listGroupMembers(ctx, models.GroupDeliveryCrew) }

func AddDeliveryCrew(ctx *gin.Context) { addGroupMember(ctx, models.GroupDeliveryCrew) }

func RemoveDeliveryCrew(ctx *gin.Context) { removeGroupMember(ctx, models.GroupDeliveryCrew) }
