package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
	Gender   string  // "男" | "女"
	Age      int
	Height   float64 // cm
	Weight   float64 // kg
}
