package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatNumber renders v with the fewest digits that round-trip (12.5, 8, -2.1)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAbs renders |v| the same way as FormatNumber
func FormatAbs(v float64) string {
	if v < 0 {
		v = -v
	}
	return FormatNumber(v)
}

// FormatSignedPercent prefixes strictly positive values with "+" and appends "%"
func FormatSignedPercent(v float64) string {
	sign := ""
	if v > 0 {
		sign = "+"
	}
	return sign + FormatNumber(v) + "%"
}

// FormatCount renders an integer with thousands separators (44,123)
func FormatCount(v int) string {
	return countPrinter.Sprintf("%d", v)
}
