package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shlangelhu/AIDish/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port      string
	JWTSecret string

	// DBDriver is "sqlite" (default, like the original deployment) or
	// "postgres".
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func Load(log *logrus.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using environment as-is")
	}

	return Config{
		Port:       getenv("PORT", "8080"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", filepath.Join("instance", "nutrition.db")),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the configured database and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the meal store relies on to
	// serialize concurrent writes to the same (user, date) key.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealItem{},
		&models.UserSpirit{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
