package services_test

import (
	"testing"

	"github.com/shlangelhu/AIDish/models"
	"github.com/shlangelhu/AIDish/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewbornSpiritByGender(t *testing.T) {
	boy := services.NewbornSpirit(1, "张三", "男")
	assert.Equal(t, "张三的小勇士", boy.SpiritName)
	assert.Equal(t, 1, boy.Level)
	assert.Equal(t, 100.0, boy.Height)

	girl := services.NewbornSpirit(2, "李四", "女")
	assert.Equal(t, "李四的小仙女", girl.SpiritName)
	assert.Equal(t, 95.0, girl.Height)
	assert.Equal(t, 45.0, girl.IQ)
}

func TestFeedGrowsSpirit(t *testing.T) {
	db := newTestDB(t)
	spirits := services.NewSpiritService(db)
	meals := services.NewMealService(db, spirits)

	spirit := services.NewbornSpirit(1, "张三", "男")
	require.NoError(t, db.Create(&spirit).Error)

	growth, err := meals.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)
	require.NotNil(t, growth)

	// 5 base + 2 per macro present (all four covered).
	assert.Equal(t, 13, growth.ExpGained)
	assert.Equal(t, 13, growth.Exp)
	assert.Equal(t, 1, growth.Level)
	assert.Equal(t, 200, growth.NextLevelExp)

	// Attributes moved off their newborn values.
	assert.Greater(t, growth.Weight, 20.0)
	assert.Greater(t, growth.Strength, 40.0)
	assert.Greater(t, growth.IQ, 40.0)
	assert.Greater(t, growth.Height, 100.0)
}

func TestFeedWithoutSpiritIsNoop(t *testing.T) {
	db := newTestDB(t)
	meals := services.NewMealService(db, services.NewSpiritService(db))

	growth, err := meals.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)
	assert.Nil(t, growth)
}

func TestRename(t *testing.T) {
	db := newTestDB(t)
	spirits := services.NewSpiritService(db)

	spirit := services.NewbornSpirit(1, "张三", "男")
	require.NoError(t, db.Create(&spirit).Error)

	renamed, err := spirits.Rename(1, "小绿")
	require.NoError(t, err)
	assert.Equal(t, "小绿", renamed.SpiritName)

	var stored models.UserSpirit
	require.NoError(t, db.Where("user_id = ?", 1).First(&stored).Error)
	assert.Equal(t, "小绿", stored.SpiritName)

	_, err = spirits.Rename(99, "nobody")
	assert.ErrorIs(t, err, services.ErrSpiritNotFound)
}
