package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// The replacer tries its pairs in argument order at every position, so longer tokens come first.
var datePatternReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
)

var ErrInvalidDatePattern = errors.New("date pattern needs year, month and day tokens")

// DateLayout converts a human date pattern such as "MM-DD-YYYY" or "D.M.YY" into a Go
// reference layout.
func DateLayout(pattern string) (string, error) {
	pattern = strings.TrimSpace(pattern)
	if !strings.Contains(pattern, "YY") || !strings.Contains(pattern, "M") || !strings.Contains(pattern, "D") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDatePattern, pattern)
	}
	return datePatternReplacer.Replace(pattern), nil
}

// ParseDateInLocation parses value with pattern and returns the start of that day in loc.
func ParseDateInLocation(pattern, value string, loc *time.Location) (time.Time, error) {
	layout, err := DateLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := time.ParseInLocation(layout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(parsed), nil
}

// FormatDate renders t with pattern, falling back to the raw ISO date if the pattern is invalid.
func FormatDate(pattern string, t time.Time) string {
	layout, err := DateLayout(pattern)
	if err != nil {
		return t.Format(time.DateOnly)
	}
	return t.Format(layout)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
