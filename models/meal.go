package models

import (
	"gorm.io/gorm"
)

// Meal is one diary entry per user per day. A new submission for the
// same date replaces the previous entry as a whole, never merges.
type Meal struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_date;not null"`
	Date   string `gorm:"uniqueIndex:idx_user_date;type:varchar(10);not null"` // YYYY-MM-DD
	Items  []MealItem
}

// MealItem stores the nutrition snapshot as submitted by the client;
// values are never recomputed server-side.
type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index;not null"`

	FoodName     string  `gorm:"not null"`
	Weight       float64 // 克
	Calories     float64 // 千卡
	Protein      float64 // 克
	Fat          float64 // 克
	Carbohydrate float64 // 克
}
