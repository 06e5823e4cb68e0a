package services_test

import (
	"testing"
	"time"

	"github.com/shlangelhu/AIDish/models"
	"github.com/shlangelhu/AIDish/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMealService(t *testing.T) *services.MealService {
	t.Helper()
	db := newTestDB(t)
	return services.NewMealService(db, services.NewSpiritService(db))
}

func threeDishes() []services.FoodItemRequest {
	return []services.FoodItemRequest{
		{FoodName: "红烧肉", Weight: 200, Calories: 440, Protein: 22, Fat: 38, Carbohydrate: 6},
		{FoodName: "青菜", Weight: 150, Calories: 45, Protein: 3, Fat: 0.5, Carbohydrate: 8},
		{FoodName: "米饭", Weight: 200, Calories: 260, Protein: 4.8, Fat: 0.4, Carbohydrate: 58},
	}
}

func TestRecordThenGetRoundTrip(t *testing.T) {
	svc := newMealService(t)

	_, err := svc.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)

	items, err := svc.GetMeals(1, "2025-03-14")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Submission order is preserved.
	assert.Equal(t, "红烧肉", items[0].FoodName)
	assert.Equal(t, "青菜", items[1].FoodName)
	assert.Equal(t, "米饭", items[2].FoodName)
	assert.Equal(t, 440.0, items[0].Calories)
	assert.Equal(t, 0.5, items[1].Fat)
	assert.Equal(t, 58.0, items[2].Carbohydrate)
}

func TestRecordReplacesExisting(t *testing.T) {
	svc := newMealService(t)

	_, err := svc.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)

	_, err = svc.RecordMeals(1, "2025-03-14", []services.FoodItemRequest{
		{FoodName: "面条", Weight: 300, Calories: 350, Protein: 12, Fat: 2, Carbohydrate: 70},
	})
	require.NoError(t, err)

	items, err := svc.GetMeals(1, "2025-03-14")
	require.NoError(t, err)
	// The second submission fully replaces the first, no merging.
	require.Len(t, items, 1)
	assert.Equal(t, "面条", items[0].FoodName)
}

func TestItemOrderSurvivesOverwrite(t *testing.T) {
	svc := newMealService(t)

	_, err := svc.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)

	// Resubmit the same dishes reversed; the rows are re-inserted, and
	// the read must follow the new submission order, not a field
	// ordering or leftover row order.
	reversed := threeDishes()
	reversed[0], reversed[2] = reversed[2], reversed[0]
	_, err = svc.RecordMeals(1, "2025-03-14", reversed)
	require.NoError(t, err)

	items, err := svc.GetMeals(1, "2025-03-14")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "米饭", items[0].FoodName)
	assert.Equal(t, "青菜", items[1].FoodName)
	assert.Equal(t, "红烧肉", items[2].FoodName)

	meals, err := svc.Range(1, "2025-03-14", "2025-03-14")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	require.Len(t, meals[0].Items, 3)
	assert.Equal(t, "米饭", meals[0].Items[0].FoodName)
}

func TestRecordWinsOverConcurrentInsert(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMealService(db, services.NewSpiritService(db))

	// Simulate a racing submission: just before our insert, another
	// writer claims the (user, date) key. The first attempt hits the
	// unique index; the store must retry and come out last-write-wins
	// instead of surfacing the conflict.
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("race_conflict", func(d *gorm.DB) {
		if fired || d.Statement.Table != "meals" {
			return
		}
		fired = true
		now := time.Now()
		d.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO meals (user_id, date, created_at, updated_at) VALUES (?, ?, ?, ?)",
			1, "2025-03-14", now, now,
		)
	})
	require.NoError(t, err)

	_, err = svc.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)
	assert.True(t, fired)

	items, err := svc.GetMeals(1, "2025-03-14")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "红烧肉", items[0].FoodName)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Where("user_id = ? AND date = ?", 1, "2025-03-14").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetMissingDate(t *testing.T) {
	svc := newMealService(t)

	_, err := svc.GetMeals(1, "2025-03-14")
	assert.ErrorIs(t, err, services.ErrMealNotFound)
}

func TestRecordsAreScopedPerUser(t *testing.T) {
	svc := newMealService(t)

	_, err := svc.RecordMeals(1, "2025-03-14", threeDishes())
	require.NoError(t, err)

	_, err = svc.GetMeals(2, "2025-03-14")
	assert.ErrorIs(t, err, services.ErrMealNotFound)
}

func TestRangeIsSparseAndAscending(t *testing.T) {
	svc := newMealService(t)

	one := []services.FoodItemRequest{{FoodName: "米饭", Weight: 200, Calories: 260, Protein: 4.8, Fat: 0.4, Carbohydrate: 58}}
	for _, date := range []string{"2025-03-20", "2025-03-10", "2025-03-15"} {
		_, err := svc.RecordMeals(1, date, one)
		require.NoError(t, err)
	}

	meals, err := svc.Range(1, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "2025-03-10", meals[0].Date)
	assert.Equal(t, "2025-03-15", meals[1].Date)
	assert.Equal(t, "2025-03-20", meals[2].Date)

	// Bounds are inclusive and gaps stay absent, not zero-filled.
	meals, err = svc.Range(1, "2025-03-10", "2025-03-15")
	require.NoError(t, err)
	require.Len(t, meals, 2)

	meals, err = svc.Range(1, "2025-04-01", "2025-04-30")
	require.NoError(t, err)
	assert.Empty(t, meals)
}
