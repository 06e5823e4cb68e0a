package services

import (
	"errors"

	"github.com/shlangelhu/AIDish/models"

	"gorm.io/gorm"
)

var ErrSpiritNotFound = errors.New("spirit not found")

type SpiritService struct{ db *gorm.DB }

func NewSpiritService(db *gorm.DB) *SpiritService { return &SpiritService{db: db} }

// SpiritGrowth reports what one recorded meal did to the pet.
type SpiritGrowth struct {
	Name         string  `json:"name"`
	Level        int     `json:"level"`
	Exp          int     `json:"exp"`
	NextLevelExp int     `json:"next_level_exp"`
	ExpGained    int     `json:"exp_gained"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	IQ           float64 `json:"iq"`
	Strength     float64 `json:"strength"`
}

// NewbornSpirit builds the initial pet for a fresh account. Starting
// attributes and name suffix depend on the account's gender.
func NewbornSpirit(userID uint, ownerName, gender string) models.UserSpirit {
	s := models.UserSpirit{UserID: userID, Level: 1}
	if gender == "女" {
		s.SpiritName = ownerName + "的小仙女"
		s.Height, s.Weight, s.IQ, s.Strength = 95, 18, 45, 35
	} else {
		s.SpiritName = ownerName + "的小勇士"
		s.Height, s.Weight, s.IQ, s.Strength = 100, 20, 40, 40
	}
	return s
}

func (s *SpiritService) Get(userID uint) (*models.UserSpirit, error) {
	var spirit models.UserSpirit
	err := s.db.Where("user_id = ?", userID).First(&spirit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSpiritNotFound
	}
	if err != nil {
		return nil, err
	}
	return &spirit, nil
}

func (s *SpiritService) Rename(userID uint, name string) (*models.UserSpirit, error) {
	spirit, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	spirit.SpiritName = name
	if err := s.db.Save(spirit).Error; err != nil {
		return nil, err
	}
	return spirit, nil
}

// Feed applies one recorded meal to the user's spirit inside the
// caller's transaction. A meal earns 5 exp plus 2 per macro actually
// present; attributes grow from the matching macro with hard caps.
// Accounts without a spirit are left untouched.
func (s *SpiritService) Feed(tx *gorm.DB, userID uint, calories, protein, fat, carbohydrate float64) (*SpiritGrowth, error) {
	var spirit models.UserSpirit
	err := tx.Where("user_id = ?", userID).First(&spirit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	expGain := 5
	for _, v := range []float64{calories, protein, fat, carbohydrate} {
		if v > 0 {
			expGain += 2
		}
	}
	spirit.Exp += expGain

	// Level-up threshold is level*200.
	nextLevelExp := spirit.Level * 200
	for spirit.Exp >= nextLevelExp {
		spirit.Exp -= nextLevelExp
		spirit.Level++
		nextLevelExp = spirit.Level * 200
	}

	// Calories feed weight, protein feeds strength, carbohydrate feeds
	// IQ; a meal covering all four macros also adds a bit of height.
	if calories > 0 {
		spirit.Weight = minf(spirit.Weight+minf(calories/2000*0.1, 0.1), 100)
	}
	if protein > 0 {
		spirit.Strength = minf(spirit.Strength+minf(protein/30*0.1, 0.1), 100)
	}
	if carbohydrate > 0 {
		spirit.IQ = minf(spirit.IQ+minf(carbohydrate/120*0.05, 0.05), 100)
	}
	if calories > 0 && protein > 0 && fat > 0 && carbohydrate > 0 {
		spirit.Height = minf(spirit.Height+0.05, 200)
	}

	if err := tx.Save(&spirit).Error; err != nil {
		return nil, err
	}

	return &SpiritGrowth{
		Name:         spirit.SpiritName,
		Level:        spirit.Level,
		Exp:          spirit.Exp,
		NextLevelExp: nextLevelExp,
		ExpGained:    expGain,
		Height:       round2(spirit.Height),
		Weight:       round2(spirit.Weight),
		IQ:           round2(spirit.IQ),
		Strength:     round2(spirit.Strength),
	}, nil
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
