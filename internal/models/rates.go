package models

import (
	"github.com/shopspring/decimal"
	"github.com/willfong/rubank/internal/utils"
)

// Annual interest rates
var (
	CheckingAnnualRate    = decimal.RequireFromString("0.015")
	SavingsAnnualRate     = decimal.RequireFromString("0.025")
	MoneyMarketAnnualRate = decimal.RequireFromString("0.035")
	LoyaltyBonusRate      = decimal.RequireFromString("0.0025")

	// CD rates by term in months
	CDRate3Months  = decimal.RequireFromString("0.03")
	CDRate6Months  = decimal.RequireFromString("0.0325")
	CDRate9Months  = decimal.RequireFromString("0.035")
	CDRate12Months = decimal.RequireFromString("0.04")

	EarlyWithdrawalPenalty = decimal.RequireFromString("0.10")

	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// Monthly fees and the balances at which they are waived
var (
	CheckingFee          = utils.Dollars(15)
	CheckingFeeWaiver    = utils.Dollars(1000)
	SavingsFee           = utils.Dollars(25)
	SavingsFeeWaiver     = utils.Dollars(500)
	MoneyMarketFee       = utils.Dollars(25)
	MoneyMarketFeeWaiver = utils.Dollars(2000)
	ExcessWithdrawalFee  = utils.Dollars(10)
)

const (
	// MaxFreeWithdrawals is the number of Money Market withdrawals per cycle without surcharge
	MaxFreeWithdrawals = 3

	// DaysPerMonth is the month length used for CD term arithmetic
	DaysPerMonth = 30

	// CollegeAgeLimit is the oldest age allowed to open College Checking
	CollegeAgeLimit = 24
)

// ValidTerms lists the allowed CD terms in months
var ValidTerms = []int{3, 6, 9, 12}

// IsValidTerm reports whether months is an offered CD term
func IsValidTerm(months int) bool {
	for _, t := range ValidTerms {
		if t == months {
			return true
		}
	}
	return false
}

// TermRate returns the annual CD rate for a term; unknown terms get the 12-month rate.
func TermRate(months int) decimal.Decimal {
	switch months {
	case 3:
		return CDRate3Months
	case 6:
		return CDRate6Months
	case 9:
		return CDRate9Months
	default:
		return CDRate12Months
	}
}
