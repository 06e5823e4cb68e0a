package controllers

import (
	"errors"
	"net/http"

	"github.com/shlangelhu/AIDish/middlewares"
	"github.com/shlangelhu/AIDish/models"
	"github.com/shlangelhu/AIDish/services"
	"github.com/shlangelhu/AIDish/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func profilePayload(u *models.User) gin.H {
	payload := gin.H{
		"username": u.Username,
		"name":     u.Name,
		"gender":   u.Gender,
		"age":      u.Age,
		"height":   u.Height,
		"weight":   u.Weight,
	}
	if bmi, err := utils.CalculateBMI(u.Height, u.Weight); err == nil {
		payload["bmi"] = bmi
		payload["bmi_category"] = utils.BMICategory(bmi)
	}
	return payload
}

func (ct *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	user, err := ct.users.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profilePayload(user)})
}

type updateProfileInput struct {
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	Age    int     `json:"age" binding:"omitempty,gt=0,lte=150"`
	Height float64 `json:"height" binding:"omitempty,gt=0,lte=300"`
	Weight float64 `json:"weight" binding:"omitempty,gt=0,lte=500"`
}

func (ct *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求参数错误"})
		return
	}
	if input.Gender != "" && input.Gender != "男" && input.Gender != "女" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "性别必须是'男'或'女'"})
		return
	}

	user, err := ct.users.UpdateProfile(userID, services.ProfileUpdate{
		Name:   input.Name,
		Gender: input.Gender,
		Age:    input.Age,
		Height: input.Height,
		Weight: input.Weight,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "user": profilePayload(user)})
}
