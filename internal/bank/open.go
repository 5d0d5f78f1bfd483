package bank

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

// OpenedMessage is the confirmation shown after an account is opened
func OpenedMessage(a *models.Account) string {
	return a.Kind.String() + " account " + a.Number.String() + " has been opened."
}

// Open validates req and, if every check passes, adds the new account to
// the ledger. Nothing is added when any check fails.
//
// Savings accounts open loyal when the holder already has a Checking
// account; Money Market accounts open loyal at the loyalty threshold.
func (m *Manager) Open(req OpenRequest) (*models.Account, error) {
	a, err := m.prepare(req)
	if err != nil {
		return nil, m.rejected("open", err)
	}

	m.db.Add(a)
	m.logger.Info("account opened",
		zap.String("number", a.Number.String()),
		zap.String("kind", a.Kind.String()),
		zap.String("branch", a.Number.Branch.String()),
		zap.String("balance", a.Balance.String()),
		zap.Bool("loyal", a.Loyal),
	)
	return a, nil
}

func (m *Manager) prepare(req OpenRequest) (*models.Account, error) {
	today := m.today()

	if err := m.validate.Struct(req); err != nil {
		return nil, MissingTokens("opening an account")
	}

	kind, ok := models.ParseAccountKind(req.Kind)
	if !ok {
		return nil, invalid(ErrInvalidKind, "%s - invalid account type.", req.Kind)
	}
	branch, ok := models.ParseBranch(req.Branch)
	if !ok {
		return nil, invalid(ErrInvalidBranch, "%s - invalid branch.", req.Branch)
	}

	dob, err := checkDate(req.DateOfBirth, today)
	if err != nil {
		return nil, err
	}
	if !dob.IsAdult(today) {
		return nil, refused(ErrUnderage, "Not eligible to open: %s under 18.", dob)
	}
	holder := models.NewProfile(req.FirstName, req.LastName, dob)

	deposit, err := utils.ParseMoney(req.Amount)
	if err != nil {
		return nil, invalidAmount(req.Amount)
	}

	term := 0
	if kind == models.KindCD {
		if req.Term == "" {
			return nil, MissingTokens("opening an account")
		}
		if err := m.validate.Var(req.Term, "cd_term"); err != nil {
			return nil, invalid(ErrInvalidTerm, "%s is not a valid term.", req.Term)
		}
		term, _ = strconv.Atoi(req.Term)
	}

	if m.db.FindDuplicate(holder, kind, term) != nil {
		return nil, refused(ErrDuplicateAccount, "%s %s already has a %s account.", req.FirstName, req.LastName, kind)
	}

	switch {
	case kind == models.KindMoneyMarket && deposit.LessThan(moneyMarketMinimum):
		return nil, refused(ErrBelowMinimum, "Minimum of %s to open a Money Market account.", moneyMarketMinimum.FormatWholeUSD())
	case kind == models.KindCD && deposit.LessThan(cdMinimum):
		return nil, refused(ErrBelowMinimum, "Minimum of %s to open a Certificate Deposit account.", cdMinimum.FormatWholeUSD())
	case !deposit.IsPositive():
		return nil, invalid(ErrNonPositive, "Initial deposit cannot be 0 or negative.")
	}

	// draw the number last: a rejected request must not consume a suffix
	var a *models.Account
	switch kind {
	case models.KindSavings:
		loyal := m.db.HolderHasChecking(holder)
		a = models.NewSavings(models.AccountNumber{}, holder, deposit, today, loyal)

	case models.KindMoneyMarket:
		loyal := deposit.GreaterThanOrEqual(moneyMarketLoyalty)
		a = models.NewMoneyMarket(models.AccountNumber{}, holder, deposit, today, loyal)

	case models.KindCollegeChecking:
		if req.Campus == "" {
			return nil, MissingTokens("opening an account")
		}
		if err := m.validate.Var(req.Campus, "campus_code"); err != nil {
			return nil, invalid(ErrInvalidCampus, "%s - not a valid campus.", req.Campus)
		}
		campus, _ := models.ParseCampus(req.Campus)
		a = models.NewCollegeChecking(models.AccountNumber{}, holder, deposit, today, campus)
		if !a.CollegeEligible(today) {
			return nil, refused(ErrNotEligible, "Not eligible to open: %s over 24.", dob)
		}

	case models.KindCD:
		if req.OpenDate == "" {
			return nil, MissingTokens("opening an account")
		}
		open, err := checkDate(req.OpenDate, today)
		if err != nil {
			return nil, err
		}
		a = models.NewCertificate(models.AccountNumber{}, holder, deposit, term, open)

	default:
		a = models.NewChecking(models.AccountNumber{}, holder, deposit, today)
	}

	number, err := m.nextNumber(branch, kind)
	if err != nil {
		return nil, err
	}
	a.Number = number
	return a, nil
}

// checkDate parses s and rejects impossible calendar dates and dates after today
func checkDate(s string, today models.Date) (models.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return d, invalid(ErrInvalidDate, "DOB invalid: %s not a valid calendar date!", s)
	}
	if !d.IsValid() {
		return d, invalid(ErrInvalidDate, "DOB invalid: %s not a valid calendar date!", d)
	}
	if d.After(today) {
		return d, invalid(ErrFutureDate, "DOB invalid: %s cannot be today or a future day.", d)
	}
	return d, nil
}

func invalidAmount(s string) error {
	return invalid(ErrInvalidAmount, "For input string: \"%s\" - not a valid amount.", s)
}
