package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate accepts the wire formats the storefront sends for stay dates:
// full RFC 3339 timestamps or plain calendar dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format %q, expected RFC 3339 or YYYY-MM-DD", value)
}

// DigitsOnly reports whether s is non-empty and contains only ASCII digits.
func DigitsOnly(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
