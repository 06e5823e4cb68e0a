package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

// BMICategory follows the Chinese adult reference ranges.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "偏瘦"
	case bmi < 24.0:
		return "正常"
	case bmi < 28.0:
		return "超重"
	default:
		return "肥胖"
	}
}
