package models

import (
	"fmt"

	"github.com/willfong/rubank/internal/utils"
)

// ActivityType marks an activity as a deposit or a withdrawal
type ActivityType byte

const (
	ActivityDeposit    ActivityType = 'D'
	ActivityWithdrawal ActivityType = 'W'
)

// ParseActivityType reads the leading 'D' or 'W' of a record field
func ParseActivityType(s string) (ActivityType, bool) {
	if s == "" {
		return 0, false
	}
	switch ActivityType(s[0]) {
	case ActivityDeposit:
		return ActivityDeposit, true
	case ActivityWithdrawal:
		return ActivityWithdrawal, true
	}
	return 0, false
}

func (t ActivityType) String() string {
	if t == ActivityDeposit {
		return "deposit"
	}
	return "withdrawal"
}

// Activity is one deposit or withdrawal recorded against an account.
// Activities are immutable once appended.
type Activity struct {
	Date   Date
	Branch Branch
	Type   ActivityType
	Amount utils.Money
	ATM    bool // made at an ATM (replayed from the activity file)
}

// String renders "M/D/YYYY::BRANCH[ATM]::deposit::$1,234.00"
func (a Activity) String() string {
	atm := ""
	if a.ATM {
		atm = "[ATM]"
	}
	return fmt.Sprintf("%s::%s%s::%s::%s", a.Date, a.Branch, atm, a.Type, a.Amount.FormatUSD())
}
