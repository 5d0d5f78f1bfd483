package models

import (
	"github.com/shopspring/decimal"
	"github.com/willfong/rubank/internal/utils"
)

// MaturityDate is the open date plus the term in calendar months
func (a *Account) MaturityDate() Date {
	return a.Opened.AddMonths(a.Term)
}

// DaysOpen counts days from the open date to close inclusively: a same-day
// close is 1, and a close on or before the open date never goes below 1.
func (a *Account) DaysOpen(close Date) int {
	days := a.Opened.DaysUntil(close)
	if days < 0 {
		days = 0
	}
	return days + 1
}

// EarlyWithdrawalRate picks the tier rate from the months-equivalent the
// CD has been open (days / 30).
func EarlyWithdrawalRate(daysOpen int) decimal.Decimal {
	months := float64(daysOpen) / DaysPerMonth
	switch {
	case months <= 6:
		return CDRate3Months
	case months <= 9:
		return CDRate6Months
	case months <= 12:
		return CDRate9Months
	default:
		return CDRate12Months
	}
}

// accrue returns balance * rate/365 * days, counting zero days as one period
func accrue(balance utils.Money, rate decimal.Decimal, days int) utils.Money {
	daily := balance.MulRate(rate.Div(daysPerYear))
	if days == 0 {
		return daily
	}
	return daily.Mul(int64(days))
}

// CertificateClosingInterest returns the interest paid when the CD closes.
// A matured CD (open at least term*30 days) earns its own term rate;
// otherwise the early-withdrawal tier rate applies.
func (a *Account) CertificateClosingInterest(close Date) utils.Money {
	days := a.DaysOpen(close)
	if days >= a.Term*DaysPerMonth {
		return accrue(a.Balance, TermRate(a.Term), days)
	}
	return accrue(a.Balance, EarlyWithdrawalRate(days), days)
}

// Penalty is 10% of the early-withdrawal tier interest for the days open.
// It is computed even past maturity; callers decide whether it applies.
func (a *Account) Penalty(close Date) utils.Money {
	days := a.DaysOpen(close)
	return accrue(a.Balance, EarlyWithdrawalRate(days), days).MulRate(EarlyWithdrawalPenalty)
}
