package models

import (
	"gorm.io/gorm"
)

// UserSpirit is the nutrition pet that grows with the user's diet.
// One spirit per account, created at registration.
type UserSpirit struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex;not null"`
	SpiritName string `gorm:"type:varchar(50);not null"`
	Level      int    `gorm:"not null;default:1"`
	Exp        int    `gorm:"not null;default:0"`

	Height   float64 // cm
	Weight   float64 // kg
	IQ       float64
	Strength float64
}
