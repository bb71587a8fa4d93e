package models

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// parseLayout also accepts single-digit months and days such as 2017-1-5.
const parseLayout = "2006-1-2"

// DateBounds is the earliest and latest observation date in the dataset.
type DateBounds struct {
	Earliest time.Time
	Latest   time.Time
}

func (b DateBounds) Contains(t time.Time) bool {
	return !t.Before(b.Earliest) && !t.After(b.Latest)
}

// TrailingYear returns the window ending at the latest date and starting one
// calendar year earlier, both ends inclusive.
func (b DateBounds) TrailingYear() (from, to time.Time) {
	return YearBefore(b.Latest), b.Latest
}

func (b DateBounds) String() string {
	return fmt.Sprintf("%s..%s", FormatDate(b.Earliest), FormatDate(b.Latest))
}

// ParseDate parses a YYYY-MM-DD date. Month and day may omit the leading zero.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %s: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// YearBefore keeps month and day and decrements the year. Feb 29 becomes Feb 28
// because the year before a leap year never has one.
func YearBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	if m == time.February && d == 29 {
		d = 28
	}
	return time.Date(y-1, m, d, 0, 0, 0, 0, t.Location())
}
