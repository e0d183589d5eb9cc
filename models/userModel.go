package models

import "gorm.io/gorm"

const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

// Role is resolved once per request from the user's group memberships.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleDelivery Role = "delivery"
	RoleCustomer Role = "customer"
)

type Group struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`
}

type User struct {
	gorm.Model
	Username string  `json:"username" gorm:"uniqueIndex"`
	Email    string  `json:"email"`
	Password string  `json:"-"`
	IsAdmin  bool    `json:"-"`
	Groups   []Group `json:"-" gorm:"many2many:user_groups"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InGroup reports whether the user belongs to the named role group.
func (u *User) InGroup(name string) bool {
	for _, group := range u.Groups {
		if group.Name == name {
			return true
		}
	}
	return false
}

// RoleOf derives the caller's role from admin status and group membership.
// A user in neither group is a customer.
func RoleOf(user *User) Role {
	switch {
	case user.IsAdmin:
		return RoleAdmin
	case user.InGroup(GroupManager):
		return RoleManager
	case user.InGroup(GroupDeliveryCrew):
		return RoleDelivery
	default:
		return RoleCustomer
	}
}
