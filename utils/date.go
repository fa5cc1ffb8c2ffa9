package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for date range bounds
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %q", value)
	}
	return t, nil
}
