package controllers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/shlangelhu/AIDish/middlewares"
	"github.com/shlangelhu/AIDish/models"
	"github.com/shlangelhu/AIDish/services"

	"github.com/gin-gonic/gin"
)

type SpiritController struct {
	spirits *services.SpiritService
}

func NewSpiritController(spirits *services.SpiritService) *SpiritController {
	return &SpiritController{spirits: spirits}
}

func spiritPayload(s *models.UserSpirit) gin.H {
	nextLevelExp := s.Level * 200
	return gin.H{
		"name":           s.SpiritName,
		"level":          s.Level,
		"exp":            s.Exp,
		"next_level_exp": nextLevelExp,
		"attributes": gin.H{
			"height":   s.Height,
			"weight":   s.Weight,
			"iq":       s.IQ,
			"strength": s.Strength,
		},
	}
}

func (ct *SpiritController) GetInfo(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	spirit, err := ct.spirits.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrSpiritNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "未找到营养精灵信息，请先创建精灵"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spirit": spiritPayload(spirit)})
}

func (ct *SpiritController) Rename(c *gin.Context) {
	userID := c.GetUint(middlewares.UserIDKey)

	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "精灵名称不能为空"})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "精灵名称不能为空"})
		return
	}
	if utf8.RuneCountInString(name) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "精灵名称不能超过50个字符"})
		return
	}

	spirit, err := ct.spirits.Rename(userID, name)
	if err != nil {
		if errors.Is(err, services.ErrSpiritNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "未找到营养精灵信息，请先创建精灵"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "更新失败，请稍后重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "精灵名称更新成功",
		"spirit":  spiritPayload(spirit),
	})
}
