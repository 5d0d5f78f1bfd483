package bank

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/willfong/rubank/internal/models"
)

// Close closes one account on closeDate and moves it to the archive. The
// returned text reports the interest earned and, for a CD closed before
// maturity, the early withdrawal penalty.
//
// Closing a Checking account takes loyalty away from the holder's Savings
// accounts.
func (m *Manager) Close(closeDate, number string) (string, error) {
	closed, err := parseCloseDate(closeDate)
	if err != nil {
		return "", m.rejected("close", err)
	}

	a := m.db.Find(number)
	if a == nil {
		return "", m.rejected("close", notFound(ErrAccountNotFound, "%s account does not exist.", number))
	}
	if err := checkCloseAfterOpen(a, closed); err != nil {
		return "", m.rejected("close", err)
	}

	var sb strings.Builder
	sb.WriteString("Closing account " + a.Number.String())

	interest := a.ClosingInterest(closed)
	sb.WriteString("\n--interest earned: " + interest.FormatUSD())
	if a.Kind == models.KindCD && closed.Before(a.MaturityDate()) {
		sb.WriteString("\n--penalty: " + a.Penalty(closed).FormatUSD())
	}

	m.db.Close(a, closed)
	if a.Kind == models.KindChecking {
		m.db.StripSavingsLoyalty(a.Holder)
	}

	m.logger.Info("account closed",
		zap.String("number", number),
		zap.String("kind", a.Kind.String()),
		zap.String("interest", interest.String()),
		zap.Stringer("closed", closed),
	)
	return sb.String(), nil
}

// CloseAll closes every account held by the profile on closeDate, newest
// first. CDs always report their penalty here.
func (m *Manager) CloseAll(closeDate, first, last, dob string) (string, error) {
	closed, err := parseCloseDate(closeDate)
	if err != nil {
		return "", m.rejected("close_all", err)
	}

	var accounts []*models.Account
	if birth, err := models.ParseDate(dob); err == nil {
		accounts = m.db.AccountsOf(models.NewProfile(first, last, birth))
	}
	if len(accounts) == 0 {
		return "", m.rejected("close_all", notFound(ErrHolderNotFound,
			"%s %s %s does not have any accounts in the database.", first, last, dob))
	}
	for _, a := range accounts {
		if err := checkCloseAfterOpen(a, closed); err != nil {
			return "", m.rejected("close_all", err)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Closing accounts for %s %s %s", first, last, dob)

	for _, a := range slices.Backward(accounts) {
		fmt.Fprintf(&sb, "\n--%s interest earned: %s", a.Number, a.ClosingInterest(closed).FormatUSD())
		if a.Kind == models.KindCD {
			sb.WriteString("\n  [penalty] " + a.Penalty(closed).FormatUSD())
		}
		m.db.Close(a, closed)
	}
	fmt.Fprintf(&sb, "\nAll accounts for %s %s %s are closed and moved to archive.", first, last, dob)

	m.logger.Info("holder accounts closed",
		zap.String("holder", first+" "+last),
		zap.Int("count", len(accounts)),
		zap.Stringer("closed", closed),
	)
	return sb.String(), nil
}

func parseCloseDate(s string) (models.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return d, invalid(ErrInvalidDate, "DOB invalid: %s not a valid calendar date!", s)
	}
	if !d.IsValid() {
		return d, invalid(ErrInvalidDate, "DOB invalid: %s not a valid calendar date!", d)
	}
	return d, nil
}

// checkCloseAfterOpen rejects closing a CD before the day it was opened
func checkCloseAfterOpen(a *models.Account, closed models.Date) error {
	if a.Kind == models.KindCD && closed.Before(a.Opened) {
		return refused(ErrCloseBeforeOpen, "%s cannot be closed before its open date %s.", a.Number, a.Opened)
	}
	return nil
}
