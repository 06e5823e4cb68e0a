package services_test

import (
	"path/filepath"
	"testing"

	"github.com/shlangelhu/AIDish/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Meal{}, &models.MealItem{}, &models.UserSpirit{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
