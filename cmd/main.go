package main

import (
	"github.com/shlangelhu/AIDish/config"
	"github.com/shlangelhu/AIDish/controllers"
	"github.com/shlangelhu/AIDish/routes"
	"github.com/shlangelhu/AIDish/services"
	"github.com/shlangelhu/AIDish/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load(log)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// A missing signing key is fatal at startup, never per-request.
	codec, err := utils.NewTokenCodec(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Token codec: %v", err)
	}

	spiritSvc := services.NewSpiritService(db)
	mealSvc := services.NewMealService(db, spiritSvc)
	statsSvc := services.NewStatisticsService(mealSvc)
	authSvc := services.NewAuthService(db, codec)
	userSvc := services.NewUserService(db)

	r := routes.SetupRouter(
		log,
		codec,
		controllers.NewAuthController(authSvc),
		controllers.NewNutritionController(mealSvc, statsSvc),
		controllers.NewSpiritController(spiritSvc),
		controllers.NewUserController(userSvc),
	)

	log.WithField("port", cfg.Port).Info("starting AIDish server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
