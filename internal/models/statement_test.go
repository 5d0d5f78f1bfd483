package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/willfong/rubank/internal/utils"
)

func TestStatement_PostsInterestMinusFee(t *testing.T) {
	accounts := []*Account{
		NewChecking(number(BranchEdison, KindChecking, "0001"), testHolder, utils.Dollars(500), testOpened),
		NewSavings(number(BranchEdison, KindSavings, "0002"), testHolder, utils.Dollars(250), testOpened, true),
		NewMoneyMarket(number(BranchEdison, KindMoneyMarket, "0003"), testHolder, utils.Dollars(1800), testOpened, false),
		NewCollegeChecking(number(BranchEdison, KindCollegeChecking, "0004"), testHolder, utils.Dollars(40), testOpened, CampusNewark),
		NewCertificate(number(BranchEdison, KindCD, "0005"), testHolder, utils.Dollars(1000), 9, testOpened),
	}

	for _, a := range accounts {
		t.Run(a.Kind.String(), func(t *testing.T) {
			before := a.Balance
			interest, fee := a.Interest(), a.Fee()

			Statement(a)

			assert.True(t, a.Balance.Equal(before.Add(interest).Sub(fee)),
				"balance %s, want %s + %s - %s", a.Balance, before, interest, fee)
		})
	}
}

func TestStatement_Format(t *testing.T) {
	a := NewChecking(number(BranchEdison, KindChecking, "0001"), testHolder, utils.Dollars(1500), testOpened)
	a.AddActivity(Activity{Date: NewDate(2024, 2, 3), Branch: BranchEdison, Type: ActivityDeposit, Amount: utils.Dollars(100), ATM: true})
	a.Deposit(utils.Dollars(100))

	want := "\t[Activity]\n" +
		"\t\t2/3/2024::EDISON[ATM]::deposit::$100.00\n" +
		"\t[interest] $2.00 [Fee] $0.00\n" +
		"\t[Balance] $1,602.00\n"
	assert.Equal(t, want, Statement(a))
}

func TestStatement_NoActivity(t *testing.T) {
	a := NewChecking(number(BranchEdison, KindChecking, "0001"), testHolder, utils.Dollars(800), testOpened)
	assert.Equal(t, "\t[interest] $1.00 [Fee] $15.00\n\t[Balance] $786.00\n", Statement(a))
}

func TestActivity_String(t *testing.T) {
	act := Activity{Date: NewDate(2024, 10, 7), Branch: BranchWarren, Type: ActivityWithdrawal, Amount: money("1234.05")}
	assert.Equal(t, "10/7/2024::WARREN::withdrawal::$1,234.05", act.String())

	typ, ok := ParseActivityType("D")
	assert.True(t, ok)
	assert.Equal(t, ActivityDeposit, typ)
	_, ok = ParseActivityType("X")
	assert.False(t, ok)
}
