package models

import (
	"fmt"
	"strings"

	"github.com/willfong/rubank/internal/utils"
)

// Statement renders the account's activity, applies this cycle's interest
// and fee to the balance, and renders the new balance. Both hooks are
// evaluated on the balance before it changes.
func Statement(a *Account) string {
	var sb strings.Builder

	if len(a.Activities) > 0 {
		sb.WriteString("\t[Activity]\n")
		for _, act := range a.Activities {
			sb.WriteString("\t\t" + act.String() + "\n")
		}
	}

	interest, fee := ApplyCycle(a)
	sb.WriteString(fmt.Sprintf("\t[interest] %s [Fee] %s", interest.FormatUSD(), fee.FormatUSD()))
	sb.WriteString(fmt.Sprintf("\n\t[Balance] %s\n", a.Balance.FormatUSD()))

	return sb.String()
}

// ApplyCycle computes interest and fee on the current balance and posts
// balance += interest - fee. It returns the two amounts posted.
func ApplyCycle(a *Account) (interest, fee utils.Money) {
	interest = a.Interest()
	fee = a.Fee()
	a.Balance = a.Balance.Add(interest).Sub(fee)
	return interest, fee
}
