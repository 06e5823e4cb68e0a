package routes

import (
	"github.com/shlangelhu/AIDish/controllers"
	"github.com/shlangelhu/AIDish/middlewares"
	"github.com/shlangelhu/AIDish/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(
	log *logrus.Logger,
	codec *utils.TokenCodec,
	authC *controllers.AuthController,
	nutritionC *controllers.NutritionController,
	spiritC *controllers.SpiritController,
	userC *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authC.Register)
		auth.POST("/login", authC.Login)
	}

	// Protected nutrition routes
	nutrition := api.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware(codec))
	{
		nutrition.POST("/meals", nutritionC.RecordMeal)
		nutrition.GET("/meals/:date", nutritionC.GetMeals)
		nutrition.GET("/statistics", nutritionC.Statistics)
	}

	// Protected spirit routes
	spirit := api.Group("/spirit")
	spirit.Use(middlewares.AuthMiddleware(codec))
	{
		spirit.GET("/info", spiritC.GetInfo)
		spirit.POST("/name", spiritC.Rename)
	}

	// Protected user routes
	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware(codec))
	{
		user.GET("/profile", userC.GetProfile)
		user.PUT("/profile", userC.UpdateProfile)
	}

	return r
}
