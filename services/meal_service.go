package services

import (
	"errors"

	"github.com/shlangelhu/AIDish/models"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("no meal record for that date")

// MealService owns all meal records, keyed by (user, date).
type MealService struct {
	db      *gorm.DB
	spirits *SpiritService
}

func NewMealService(db *gorm.DB, spirits *SpiritService) *MealService {
	return &MealService{db: db, spirits: spirits}
}

// FoodItemRequest is one dish as submitted by the client; nutrient
// values arrive pre-computed and are stored as-is.
type FoodItemRequest struct {
	FoodName     string  `json:"food_name" binding:"required"`
	Weight       float64 `json:"weight" binding:"gte=0"`
	Calories     float64 `json:"calories" binding:"gte=0"`
	Protein      float64 `json:"protein" binding:"gte=0"`
	Fat          float64 `json:"fat" binding:"gte=0"`
	Carbohydrate float64 `json:"carbohydrate" binding:"gte=0"`
}

// RecordMeals replaces the whole record for (user, date) with the
// submitted items, in order. The swap runs in one transaction so a
// reader never observes a half-written record. Last write wins.
func (s *MealService) RecordMeals(userID uint, date string, items []FoodItemRequest) (*SpiritGrowth, error) {
	var calories, protein, fat, carbohydrate float64
	for _, it := range items {
		calories += it.Calories
		protein += it.Protein
		fat += it.Fat
		carbohydrate += it.Carbohydrate
	}

	var growth *SpiritGrowth
	replace := func() error {
		meal := models.Meal{UserID: userID, Date: date}
		for _, it := range items {
			meal.Items = append(meal.Items, models.MealItem{
				FoodName:     it.FoodName,
				Weight:       it.Weight,
				Calories:     it.Calories,
				Protein:      it.Protein,
				Fat:          it.Fat,
				Carbohydrate: it.Carbohydrate,
			})
		}
		return s.db.Transaction(func(tx *gorm.DB) error {
			var old models.Meal
			err := tx.Where("user_id = ? AND date = ?", userID, date).First(&old).Error
			switch {
			case err == nil:
				// Hard-delete the old record; a soft-deleted row would
				// still collide with the unique (user, date) index.
				if err := tx.Unscoped().Where("meal_id = ?", old.ID).Delete(&models.MealItem{}).Error; err != nil {
					return err
				}
				if err := tx.Unscoped().Delete(&old).Error; err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}

			if err := tx.Create(&meal).Error; err != nil {
				return err
			}

			growth, err = s.spirits.Feed(tx, userID, calories, protein, fat, carbohydrate)
			return err
		})
	}

	err := replace()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent submission created the row between our lookup and
		// insert. Rerun once: the lookup now sees that row, deletes it,
		// and this write wins.
		err = replace()
	}
	if err != nil {
		return nil, err
	}
	return growth, nil
}

// orderedItems keeps preloaded items in insertion order; without an
// explicit ORDER BY the engine row order is undefined.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// GetMeals returns the items recorded for one date, in submission order.
func (s *MealService) GetMeals(userID uint, date string) ([]models.MealItem, error) {
	var meal models.Meal
	err := s.db.Preload("Items", orderedItems).Where("user_id = ? AND date = ?", userID, date).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return meal.Items, nil
}

// Range returns the records whose date falls in [start, end], ascending
// by date. Days without a submission are simply absent.
func (s *MealService) Range(userID uint, start, end string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Preload("Items", orderedItems).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}
