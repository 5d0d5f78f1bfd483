package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calendar rules
const (
	Quadrennial      = 4
	Centennial       = 100
	Quatercentennial = 400
	LeapFebruaryDays = 29
	MinimumAge       = 18
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar date without time of day or timezone.
// Invalid dates are representable; callers check IsValid at the boundary.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate creates a date from its components without validating it
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Today returns the current wall-clock date
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses "M/D/YYYY" or ISO "YYYY-MM-DD".
// Only malformed text is an error; out-of-range components are kept so that
// IsValid can reject them.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	var parts []string
	iso := false
	switch {
	case strings.Count(s, "/") == 2:
		parts = strings.Split(s, "/")
	case strings.Count(s, "-") >= 2 && !strings.HasPrefix(s, "-"):
		parts = strings.SplitN(s, "-", 3)
		iso = true
	default:
		return Date{}, fmt.Errorf("invalid date %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}

	if iso {
		return NewDate(nums[0], nums[1], nums[2]), nil
	}
	return NewDate(nums[2], nums[0], nums[1]), nil
}

// IsValid reports whether the date exists on the Gregorian calendar
func (d Date) IsValid() bool {
	if d.Year < 0 {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= d.monthLength()
}

// IsLeapYear applies the Gregorian leap-year rule
func (d Date) IsLeapYear() bool {
	return isLeapYear(d.Year)
}

func isLeapYear(year int) bool {
	if year%Quadrennial != 0 {
		return false
	}
	if year%Centennial == 0 {
		return year%Quatercentennial == 0
	}
	return true
}

func (d Date) monthLength() int {
	if d.Month == 2 && d.IsLeapYear() {
		return LeapFebruaryDays
	}
	return daysInMonth[d.Month-1]
}

// Age returns the conventional age on the given day.
func (d Date) Age(today Date) int {
	age := today.Year - d.Year
	if d.Month > today.Month || (d.Month == today.Month && d.Day > today.Day) {
		age--
	}
	return age
}

// IsAdult reports whether someone born on d is at least 18 on today
func (d Date) IsAdult(today Date) bool {
	return d.Age(today) >= MinimumAge
}

// Compare returns the raw difference of the first unequal component.
// Only the sign is meaningful.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return d.Year - o.Year
	}
	if d.Month != o.Month {
		return d.Month - o.Month
	}
	return d.Day - o.Day
}

// Equal reports whether both dates are the same day
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before reports whether d is strictly earlier than o
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly later than o
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from d to o (negative if o is earlier).
// Both dates are midnight UTC, so the seconds between them divide evenly.
func (d Date) DaysUntil(o Date) int {
	return int((o.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// AddMonths adds n calendar months, clamping the day to the end of the
// target month (Jan 31 + 1 month = Feb 28 or 29).
func (d Date) AddMonths(n int) Date {
	total := d.Year*12 + (d.Month - 1) + n
	out := Date{Year: total / 12, Month: total%12 + 1, Day: d.Day}
	if last := out.monthLength(); out.Day > last {
		out.Day = last
	}
	return out
}

// String renders the date as M/D/YYYY
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}
