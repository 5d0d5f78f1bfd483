package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/willfong/rubank/internal/utils"
)

func newTestCD(term int, balance int64) *Account {
	return NewCertificate(number(BranchPrinceton, KindCD, "0001"), testHolder, utils.Dollars(balance), term, NewDate(2024, 1, 1))
}

func TestCertificate_MaturityDate(t *testing.T) {
	assert.Equal(t, NewDate(2025, 1, 1), newTestCD(12, 1000).MaturityDate())
	assert.Equal(t, NewDate(2024, 4, 1), newTestCD(3, 1000).MaturityDate())

	cd := NewCertificate(number(BranchEdison, KindCD, "0001"), testHolder, utils.Dollars(1000), 3, NewDate(2024, 11, 30))
	assert.Equal(t, NewDate(2025, 2, 28), cd.MaturityDate())
}

func TestCertificate_DaysOpen(t *testing.T) {
	cd := newTestCD(12, 1000)
	assert.Equal(t, 1, cd.DaysOpen(NewDate(2024, 1, 1)))
	assert.Equal(t, 1, cd.DaysOpen(NewDate(2023, 6, 1)))
	assert.Equal(t, 92, cd.DaysOpen(NewDate(2024, 4, 1)))
	assert.Equal(t, 367, cd.DaysOpen(NewDate(2025, 1, 1)))
}

func TestEarlyWithdrawalRate(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "0.03"},
		{180, "0.03"},
		{181, "0.0325"},
		{270, "0.0325"},
		{271, "0.035"},
		{360, "0.035"},
		{361, "0.04"},
	}

	for _, tt := range tests {
		got := EarlyWithdrawalRate(tt.days)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "days %d: got %s", tt.days, got)
	}
}

func TestCertificate_EarlyClose(t *testing.T) {
	cd := newTestCD(12, 10000)
	close := NewDate(2024, 4, 1)

	assert.True(t, close.Before(cd.MaturityDate()))

	// 92 days at the 3% tier
	interest := cd.ClosingInterest(close)
	assert.Equal(t, "75.62", interest.String())

	penalty := cd.Penalty(close)
	assert.True(t, penalty.IsPositive())
	assert.Equal(t, "7.56", penalty.String())
}

func TestCertificate_MaturedClose(t *testing.T) {
	cd := newTestCD(12, 10000)
	close := cd.MaturityDate()

	// 367 days at the 12-month rate
	interest := cd.ClosingInterest(close)
	assert.Equal(t, "402.19", interest.String())

	// computed past maturity too
	assert.True(t, cd.Penalty(close).IsPositive())

	t.Run("centuries open", func(t *testing.T) {
		old := NewCertificate(number(BranchPrinceton, KindCD, "0002"), testHolder, utils.Dollars(1000), 12, NewDate(1700, 1, 1))
		close := NewDate(2025, 1, 1)

		assert.Equal(t, 118705, old.DaysOpen(close))
		assert.Equal(t, "13008.77", old.ClosingInterest(close).String())
	})
}

func TestCertificate_MaturedShortTerm(t *testing.T) {
	cd := newTestCD(3, 10000)
	close := NewDate(2024, 3, 31)

	// 91 days >= 90 so the 3-month term rate applies
	assert.Equal(t, 91, cd.DaysOpen(close))
	assert.Equal(t, "74.79", cd.ClosingInterest(close).String())
}

func TestCertificate_SameDayClose(t *testing.T) {
	cd := newTestCD(6, 3650)
	interest := cd.ClosingInterest(NewDate(2024, 1, 1))
	assert.Equal(t, "0.30", interest.String())
}
