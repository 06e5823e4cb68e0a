package controllers

import (
	"errors"
	"net/http"

	"github.com/shlangelhu/AIDish/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type RegisterInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Gender   string  `json:"gender"`
	Age      int     `json:"age" binding:"omitempty,gt=0,lte=150"`
	Height   float64 `json:"height" binding:"omitempty,gt=0,lte=300"`
	Weight   float64 `json:"weight" binding:"omitempty,gt=0,lte=500"`
}

func (ct *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求参数错误"})
		return
	}
	if input.Gender != "" && input.Gender != "男" && input.Gender != "女" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "性别必须是'男'或'女'"})
		return
	}

	user, spirit, token, err := ct.auth.Register(services.RegisterInput{
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Gender:   input.Gender,
		Age:      input.Age,
		Height:   input.Height,
		Weight:   input.Weight,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "用户名已存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "注册失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"gender":   user.Gender,
			"age":      user.Age,
			"height":   user.Height,
			"weight":   user.Weight,
		},
		"spirit": gin.H{
			"name":  spirit.SpiritName,
			"level": spirit.Level,
			"exp":   spirit.Exp,
			"attributes": gin.H{
				"height":   spirit.Height,
				"weight":   spirit.Weight,
				"iq":       spirit.IQ,
				"strength": spirit.Strength,
			},
		},
	})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ct *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "用户名或密码错误"})
		return
	}

	token, user, err := ct.auth.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "用户名或密码错误"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "登录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "登录成功",
		"user": gin.H{
			"username": user.Username,
			"name":     user.Name,
		},
	})
}
