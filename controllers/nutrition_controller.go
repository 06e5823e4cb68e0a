package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shlangelhu/AIDish/middlewares"
	"github.com/shlangelhu/AIDish/services"
	"github.com/shlangelhu/AIDish/utils"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	meals *services.MealService
	stats *services.StatisticsService
}

func NewNutritionController(meals *services.MealService, stats *services.StatisticsService) *NutritionController {
	return &NutritionController{meals: meals, stats: stats}
}

type mealSubmission struct {
	Date  string                     `json:"date"`
	Items []services.FoodItemRequest `json:"items" binding:"required,min=1,max=3,dive"`
}

// RecordMeal stores 1-3 dishes for one day. Resubmitting for a date
// that already has a record replaces it wholesale.
func (ct *NutritionController) RecordMeal(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	var body mealSubmission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请提供1-3个菜品"})
		return
	}

	date := body.Date
	if date == "" {
		date = time.Now().Format(utils.DateLayout)
	} else {
		var err error
		if date, err = utils.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "日期格式错误，请使用YYYY-MM-DD格式"})
			return
		}
	}

	growth, err := ct.meals.RecordMeals(userID, date, body.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "记录失败"})
		return
	}

	resp := gin.H{"message": "饮食记录添加成功", "date": date}
	if growth != nil {
		resp["spirit"] = growth
	}
	c.JSON(http.StatusCreated, resp)
}

// GetMeals returns the items recorded for the date in the path.
func (ct *NutritionController) GetMeals(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "日期格式错误，请使用YYYY-MM-DD格式"})
		return
	}

	items, err := ct.meals.GetMeals(userID, date)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "未找到该日期的记录"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查询失败"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, gin.H{
			"food_name":    it.FoodName,
			"weight":       it.Weight,
			"calories":     it.Calories,
			"protein":      it.Protein,
			"fat":          it.Fat,
			"carbohydrate": it.Carbohydrate,
		})
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "items": out})
}

// Statistics aggregates the range given by start_date/end_date. The
// range defaults to the last 7 days when the parameters are omitted.
func (ct *NutritionController) Statistics(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	end := c.Query("end_date")
	start := c.Query("start_date")

	var err error
	if end == "" {
		end = time.Now().Format(utils.DateLayout)
	} else if end, err = utils.ParseDate(end); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "日期格式错误，请使用YYYY-MM-DD格式"})
		return
	}
	if start == "" {
		t, _ := time.Parse(utils.DateLayout, end)
		start = t.AddDate(0, 0, -6).Format(utils.DateLayout)
	} else if start, err = utils.ParseDate(start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "日期格式错误，请使用YYYY-MM-DD格式"})
		return
	}
	if start > end {
		c.JSON(http.StatusBadRequest, gin.H{"message": "开始日期不能晚于结束日期"})
		return
	}

	result, err := ct.stats.Statistics(userID, start, end)
	if err != nil {
		if errors.Is(err, services.ErrNoRecordsInRange) {
			c.JSON(http.StatusNotFound, gin.H{"message": "所选时间段内没有记录"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "统计失败"})
		return
	}

	c.JSON(http.StatusOK, result)
}
