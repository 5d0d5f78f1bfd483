package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_IsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2/29/2004", true},
		{"2/29/2009", false},
		{"4/31/2001", false},
		{"-1/1/2000", false},
		{"20/14/2009", false},
		{"4/11/2003", true},
		{"2/29/2000", true},
		{"2/29/1900", false},
		{"12/31/1999", true},
		{"1/0/2020", false},
		{"2024-02-29", true},
		{"2023-02-29", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.IsValid())
		})
	}
}

func TestDate_NegativeYear(t *testing.T) {
	assert.False(t, NewDate(-5, 1, 1).IsValid())
}

func TestParseDate(t *testing.T) {
	t.Run("slash form is month/day/year", func(t *testing.T) {
		d, err := ParseDate("7/4/1998")
		require.NoError(t, err)
		assert.Equal(t, NewDate(1998, 7, 4), d)
		assert.Equal(t, "7/4/1998", d.String())
	})

	t.Run("iso form", func(t *testing.T) {
		d, err := ParseDate("2024-01-09")
		require.NoError(t, err)
		assert.Equal(t, NewDate(2024, 1, 9), d)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{"", "abc", "1/2", "a/b/c", "2024/01"} {
			_, err := ParseDate(s)
			assert.Error(t, err, s)
		}
	})
}

func TestDate_IsLeapYear(t *testing.T) {
	assert.True(t, NewDate(2004, 1, 1).IsLeapYear())
	assert.True(t, NewDate(2000, 1, 1).IsLeapYear())
	assert.False(t, NewDate(1900, 1, 1).IsLeapYear())
	assert.False(t, NewDate(2009, 1, 1).IsLeapYear())
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2020, 5, 10)

	assert.Zero(t, a.Compare(NewDate(2020, 5, 10)))
	assert.Negative(t, a.Compare(NewDate(2021, 1, 1)))
	assert.Positive(t, a.Compare(NewDate(2020, 4, 30)))
	assert.Negative(t, a.Compare(NewDate(2020, 5, 11)))

	// magnitude is the raw component difference
	assert.Equal(t, -3, a.Compare(NewDate(2023, 1, 1)))
	assert.Equal(t, 5, a.Compare(NewDate(2020, 5, 5)))

	assert.True(t, a.Before(NewDate(2020, 5, 11)))
	assert.True(t, a.After(NewDate(2020, 5, 9)))
}

func TestDate_AgeAndAdult(t *testing.T) {
	today := NewDate(2025, 6, 15)

	tests := []struct {
		name  string
		dob   Date
		age   int
		adult bool
	}{
		{"birthday today", NewDate(2007, 6, 15), 18, true},
		{"birthday tomorrow", NewDate(2007, 6, 16), 17, false},
		{"birthday passed", NewDate(2007, 1, 1), 18, true},
		{"later month", NewDate(2007, 12, 1), 17, false},
		{"older", NewDate(1960, 3, 3), 65, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.age, tt.dob.Age(today))
			assert.Equal(t, tt.adult, tt.dob.IsAdult(today))
		})
	}
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		from   Date
		months int
		want   Date
	}{
		{NewDate(2024, 1, 1), 12, NewDate(2025, 1, 1)},
		{NewDate(2024, 1, 31), 1, NewDate(2024, 2, 29)},
		{NewDate(2023, 1, 31), 1, NewDate(2023, 2, 28)},
		{NewDate(2024, 11, 30), 3, NewDate(2025, 2, 28)},
		{NewDate(2024, 8, 31), 9, NewDate(2025, 5, 31)},
		{NewDate(2024, 3, 31), 6, NewDate(2024, 9, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonths(tt.months))
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	assert.Equal(t, 0, NewDate(2024, 1, 1).DaysUntil(NewDate(2024, 1, 1)))
	assert.Equal(t, 91, NewDate(2024, 1, 1).DaysUntil(NewDate(2024, 4, 1)))
	assert.Equal(t, 366, NewDate(2024, 1, 1).DaysUntil(NewDate(2025, 1, 1)))
	assert.Equal(t, -1, NewDate(2024, 1, 2).DaysUntil(NewDate(2024, 1, 1)))

	// spans longer than a time.Duration can hold
	assert.Equal(t, 118704, NewDate(1700, 1, 1).DaysUntil(NewDate(2025, 1, 1)))
	assert.Equal(t, -118704, NewDate(2025, 1, 1).DaysUntil(NewDate(1700, 1, 1)))
	assert.Equal(t, 730120, NewDate(0, 1, 1).DaysUntil(NewDate(1999, 1, 1)))
}

func TestDateOf(t *testing.T) {
	tm := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2024, 3, 5), DateOf(tm))
}
