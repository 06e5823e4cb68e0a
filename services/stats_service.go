package services

import (
	"errors"
	"math"
)

var ErrNoRecordsInRange = errors.New("no meal records in range")

// StatisticsService reads the meal store and derives range statistics.
// It never writes.
type StatisticsService struct {
	meals *MealService
}

func NewStatisticsService(meals *MealService) *StatisticsService {
	return &StatisticsService{meals: meals}
}

type StatisticsResult struct {
	TotalCalories     float64 `json:"total_calories"`
	TotalProtein      float64 `json:"total_protein"`
	TotalFat          float64 `json:"total_fat"`
	TotalCarbohydrate float64 `json:"total_carbohydrate"`

	DaysCount int `json:"days_count"`

	DailyAvgCalories     float64 `json:"daily_avg_calories"`
	DailyAvgProtein      float64 `json:"daily_avg_protein"`
	DailyAvgFat          float64 `json:"daily_avg_fat"`
	DailyAvgCarbohydrate float64 `json:"daily_avg_carbohydrate"`
}

// Statistics sums every item over [start, end] and averages per day
// with a record. Days without a submission do not dilute the averages:
// the divisor is the number of dates present, not the calendar span.
func (s *StatisticsService) Statistics(userID uint, start, end string) (*StatisticsResult, error) {
	meals, err := s.meals.Range(userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrNoRecordsInRange
	}

	res := &StatisticsResult{}
	for _, m := range meals {
		for _, it := range m.Items {
			res.TotalCalories += it.Calories
			res.TotalProtein += it.Protein
			res.TotalFat += it.Fat
			res.TotalCarbohydrate += it.Carbohydrate
		}
	}

	// One record per (user, date), so the record count is the count of
	// distinct dates with data.
	res.DaysCount = len(meals)
	n := float64(res.DaysCount)
	res.DailyAvgCalories = round2(res.TotalCalories / n)
	res.DailyAvgProtein = round2(res.TotalProtein / n)
	res.DailyAvgFat = round2(res.TotalFat / n)
	res.DailyAvgCarbohydrate = round2(res.TotalCarbohydrate / n)
	return res, nil
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
