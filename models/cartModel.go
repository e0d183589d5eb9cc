package models

import "gorm.io/gorm"

// CartItem is one pending (menu item, quantity) selection owned by a user.
// UnitPrice is copied from the menu item when the line is added; Price is
// UnitPrice times Quantity, computed at write time and never recomputed.
type CartItem struct {
	gorm.Model
	UserID     uint     `json:"userId"`
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	Price      float64  `json:"price"`
}
