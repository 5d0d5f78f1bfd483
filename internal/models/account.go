package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/willfong/rubank/internal/utils"
)

// Account is a bank account of any kind. Kind selects the interest and fee
// rules; the remaining kind-specific fields are only meaningful for the
// kinds noted beside them.
type Account struct {
	Number     AccountNumber
	Kind       AccountKind
	Holder     Profile
	Balance    utils.Money
	Opened     Date
	Activities []Activity

	Loyal       bool   // Savings, Money Market, CD (always true)
	Withdrawals int    // Money Market, withdrawals this statement cycle
	Campus      Campus // College Checking
	Term        int    // CD, months
}

// NewChecking opens a Checking account
func NewChecking(number AccountNumber, holder Profile, balance utils.Money, opened Date) *Account {
	return &Account{Number: number, Kind: KindChecking, Holder: holder, Balance: balance, Opened: opened}
}

// NewSavings opens a Savings account
func NewSavings(number AccountNumber, holder Profile, balance utils.Money, opened Date, loyal bool) *Account {
	return &Account{Number: number, Kind: KindSavings, Holder: holder, Balance: balance, Opened: opened, Loyal: loyal}
}

// NewMoneyMarket opens a Money Market account
func NewMoneyMarket(number AccountNumber, holder Profile, balance utils.Money, opened Date, loyal bool) *Account {
	return &Account{Number: number, Kind: KindMoneyMarket, Holder: holder, Balance: balance, Opened: opened, Loyal: loyal}
}

// NewCollegeChecking opens a College Checking account
func NewCollegeChecking(number AccountNumber, holder Profile, balance utils.Money, opened Date, campus Campus) *Account {
	return &Account{Number: number, Kind: KindCollegeChecking, Holder: holder, Balance: balance, Opened: opened, Campus: campus}
}

// NewCertificate opens a Certificate of Deposit. CDs are always loyal.
func NewCertificate(number AccountNumber, holder Profile, balance utils.Money, term int, open Date) *Account {
	return &Account{Number: number, Kind: KindCD, Holder: holder, Balance: balance, Opened: open, Term: term, Loyal: true}
}

// SetLoyal sets the loyalty flag on Savings and Money Market accounts.
// Other kinds ignore it.
func (a *Account) SetLoyal(loyal bool) {
	if a.Kind == KindSavings || a.Kind == KindMoneyMarket {
		a.Loyal = loyal
	}
}

// AnnualRate returns the current annual interest rate
func (a *Account) AnnualRate() decimal.Decimal {
	switch a.Kind {
	case KindSavings:
		if a.Loyal {
			return SavingsAnnualRate.Add(LoyaltyBonusRate)
		}
		return SavingsAnnualRate
	case KindMoneyMarket:
		if a.Loyal {
			return MoneyMarketAnnualRate.Add(LoyaltyBonusRate)
		}
		return MoneyMarketAnnualRate
	case KindCD:
		return TermRate(a.Term)
	default:
		return CheckingAnnualRate
	}
}

// Interest returns this cycle's interest: balance times the monthly rate
func (a *Account) Interest() utils.Money {
	return a.Balance.MulRate(a.AnnualRate().Div(monthsPerYear))
}

// Fee returns this cycle's fee
func (a *Account) Fee() utils.Money {
	switch a.Kind {
	case KindChecking:
		if a.Balance.GreaterThanOrEqual(CheckingFeeWaiver) {
			return utils.Zero
		}
		return CheckingFee
	case KindCollegeChecking:
		return utils.Zero
	case KindSavings, KindCD:
		if a.Balance.GreaterThanOrEqual(SavingsFeeWaiver) {
			return utils.Zero
		}
		return SavingsFee
	case KindMoneyMarket:
		fee := utils.Zero
		if a.Balance.LessThan(MoneyMarketFeeWaiver) {
			fee = fee.Add(MoneyMarketFee)
		}
		if a.Withdrawals > MaxFreeWithdrawals {
			fee = fee.Add(ExcessWithdrawalFee)
		}
		return fee
	}
	return utils.Zero
}

// Deposit adds a positive amount to the balance
func (a *Account) Deposit(amount utils.Money) {
	if amount.IsPositive() {
		a.Balance = a.Balance.Add(amount)
	}
}

// Withdraw removes amount when it is positive and covered by the balance.
// It reports whether the balance changed.
func (a *Account) Withdraw(amount utils.Money) bool {
	if !amount.IsPositive() || a.Balance.LessThan(amount) {
		return false
	}
	a.Balance = a.Balance.Sub(amount)
	return true
}

// AddActivity appends an activity to the account history
func (a *Account) AddActivity(act Activity) {
	a.Activities = append(a.Activities, act)
}

// RecordWithdrawal counts a Money Market withdrawal toward the excess fee
func (a *Account) RecordWithdrawal() {
	if a.Kind == KindMoneyMarket {
		a.Withdrawals++
	}
}

// CollegeEligible reports whether the holder may open College Checking on today.
// Age here is one year higher than Date.Age before the birthday has passed;
// the open-eligibility check has always used this count.
func (a *Account) CollegeEligible(today Date) bool {
	dob := a.Holder.DateOfBirth
	age := today.Year + 1 - dob.Year
	if today.Month < dob.Month || (today.Month == dob.Month && today.Day < dob.Day) {
		age--
	}
	return age <= CollegeAgeLimit
}

// ClosingInterest returns the interest paid out when the account closes on close.
// CDs follow the term/early-withdrawal rules; other kinds accrue daily at
// their annual rate for the days elapsed since opening, with Money Market
// earning its base rate only.
func (a *Account) ClosingInterest(close Date) utils.Money {
	if a.Kind == KindCD {
		return a.CertificateClosingInterest(close)
	}

	rate := a.AnnualRate()
	if a.Kind == KindMoneyMarket {
		rate = MoneyMarketAnnualRate
	}

	days := a.Opened.DaysUntil(close)
	if days < 0 {
		days = 0
	}
	return a.Balance.MulRate(rate.Div(daysPerYear)).Mul(int64(days))
}

// Equal compares holder, kind and number. An account without a number only
// equals another unnumbered account of the same holder and kind.
func (a *Account) Equal(o *Account) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil {
		return false
	}
	if !a.Holder.Equal(o.Holder) || a.Kind != o.Kind {
		return false
	}
	if a.Number.IsZero() || o.Number.IsZero() {
		return a.Number.IsZero() && o.Number.IsZero()
	}
	return a.Number.Equal(o.Number)
}

// String renders the account line used by the list reports
func (a *Account) String() string {
	s := fmt.Sprintf("Account#[%s] Holder[%s] Balance[%s] Branch[%s]",
		a.Number, a.Holder, a.Balance.FormatUSD(), a.Number.Branch)

	switch a.Kind {
	case KindSavings:
		if a.Loyal {
			s += " [LOYAL]"
		}
	case KindMoneyMarket:
		if a.Loyal {
			s += " [LOYAL]"
		}
		s += fmt.Sprintf(" Withdrawal[%d]", a.Withdrawals)
	case KindCollegeChecking:
		s += fmt.Sprintf(" Campus[%s]", a.Campus)
	case KindCD:
		s += fmt.Sprintf(" Term[%d] Date opened[%s] Maturity date[%s]", a.Term, a.Opened, a.MaturityDate())
	}
	return s
}
