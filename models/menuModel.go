package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `json:"slug" binding:"required" gorm:"uniqueIndex"`
	Title string `json:"title" binding:"required"`
}

// MenuItem uniqueness on (title, price) is checked at write time in the
// controllers.
type MenuItem struct {
	gorm.Model
	Title      string         `json:"title" gorm:"index:idx_title_price"`
	Price      float64        `json:"price" gorm:"index:idx_title_price"`
	Featured   bool           `json:"featured"`
	CategoryID uint           `json:"categoryId"`
	Category   Category       `json:"category"`
	Tags       datatypes.JSON `json:"tags"`
	ImageURL   string         `json:"imageUrl"`
}
