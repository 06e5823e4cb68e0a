package utils

import (
	"errors"
	"time"
)

// DateLayout is the only accepted date format across the API.
const DateLayout = "2006-01-02"

var ErrBadDate = errors.New("date must be a valid YYYY-MM-DD")

// ParseDate validates a strict YYYY-MM-DD calendar date and returns it
// in canonical form. Impossible dates like 2025-02-30 are rejected even
// though they match the textual pattern.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return "", ErrBadDate
	}
	return s, nil
}
