package models

import "gorm.io/gorm"

// Order.Status is false while the order is pending and true once delivered.
// Total is the sum of the order item prices at creation time.
type Order struct {
	gorm.Model
	UserID         uint        `json:"userId"`
	DeliveryCrewID *uint       `json:"deliveryCrewId"`
	Status         bool        `json:"status"`
	Total          float64     `json:"total"`
	OrderItems     []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is an immutable snapshot of a cart line taken at checkout.
type OrderItem struct {
	gorm.Model
	OrderID    uint     `json:"orderId"`
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
}
