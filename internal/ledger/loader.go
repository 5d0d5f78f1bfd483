package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

// Record parsing errors
var (
	ErrMissingFields   = errors.New("missing fields")
	ErrUnknownKind     = errors.New("unknown account kind")
	ErrUnknownBranch   = errors.New("unknown branch")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCampus   = errors.New("invalid campus")
	ErrInvalidTerm     = errors.New("invalid term")
	ErrUnknownActivity = errors.New("unknown activity type")
)

// RecordError describes a record that was skipped during a bulk load
type RecordError struct {
	Line   int
	Record string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Record)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// records walks comma-separated records, calling fn for each with its line
// number. Blank lines are skipped. A record fn rejects is reported and the
// walk continues.
func (db *Database) records(r io.Reader, fn func(fields []string) error) []*RecordError {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var errs []*RecordError
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				errs = append(errs, &RecordError{Line: parseErr.Line, Err: err})
				db.recordRead()
				continue
			}
			errs = append(errs, &RecordError{Err: err})
			break
		}
		line, _ := reader.FieldPos(0)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := fn(fields); err != nil {
			errs = append(errs, &RecordError{Line: line, Record: strings.Join(fields, ","), Err: err})
		}
		db.recordRead()
	}
	return errs
}

func (db *Database) recordRead() {
	if db.onRecord != nil {
		db.onRecord()
	}
}

// LoadAccounts reads account records of the form
//
//	kind,branch,first,last,dob,balance[,campusCode | ,term,openDate]
//
// and adds each to the database with a fresh number drawn from src. Accounts
// other than CDs are dated opened. Once every record is read, loyalty is
// recomputed for all Savings and Money Market accounts.
//
// Malformed records are skipped and returned; the count is of accounts added.
func (db *Database) LoadAccounts(r io.Reader, src models.SuffixSource, opened models.Date, moneyMarketThreshold utils.Money) (int, []*RecordError) {
	added := 0
	errs := db.records(r, func(fields []string) error {
		a, err := parseAccount(fields, src, opened)
		if err != nil {
			return err
		}
		db.Add(a)
		added++
		return nil
	})
	db.RecomputeLoyalty(moneyMarketThreshold)
	return added, errs
}

func parseAccount(fields []string, src models.SuffixSource, opened models.Date) (*models.Account, error) {
	if len(fields) < 6 {
		return nil, ErrMissingFields
	}

	kind, ok := models.ParseAccountKind(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, fields[0])
	}
	branch, ok := models.ParseBranch(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBranch, fields[1])
	}
	dob, err := models.ParseDate(fields[4])
	if err != nil || !dob.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, fields[4])
	}
	balance, err := utils.ParseMoney(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	holder := models.NewProfile(fields[2], fields[3], dob)

	switch kind {
	case models.KindCollegeChecking:
		if len(fields) < 7 {
			return nil, ErrMissingFields
		}
		campus, ok := models.ParseCampus(fields[6])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCampus, fields[6])
		}
		return models.NewCollegeChecking(models.NewAccountNumber(branch, kind, src), holder, balance, opened, campus), nil

	case models.KindCD:
		if len(fields) < 8 {
			return nil, ErrMissingFields
		}
		term, err := strconv.Atoi(fields[6])
		if err != nil || !models.IsValidTerm(term) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTerm, fields[6])
		}
		open, err := models.ParseDate(fields[7])
		if err != nil || !open.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, fields[7])
		}
		return models.NewCertificate(models.NewAccountNumber(branch, kind, src), holder, balance, term, open), nil
	}

	number := models.NewAccountNumber(branch, kind, src)
	switch kind {
	case models.KindSavings:
		return models.NewSavings(number, holder, balance, opened, false), nil
	case models.KindMoneyMarket:
		return models.NewMoneyMarket(number, holder, balance, opened, false), nil
	default:
		return models.NewChecking(number, holder, balance, opened), nil
	}
}

// ProcessActivities replays activity records of the form
//
//	type,accountNumber,date,branch,amount
//
// against the database. Every replayed activity is flagged as an ATM
// activity and appended to the account's history, including withdrawals the
// balance could not cover. Money Market withdrawals count toward the excess
// withdrawal fee. Records naming an unknown account are ignored.
//
// It returns the accounts touched, in the order first seen, and any
// malformed records.
func (db *Database) ProcessActivities(r io.Reader) ([]*models.Account, []*RecordError) {
	var touched []*models.Account
	seen := make(map[*models.Account]bool)

	errs := db.records(r, func(fields []string) error {
		act, number, err := parseActivity(fields)
		if err != nil {
			return err
		}

		a := db.Find(number)
		if a == nil {
			return nil
		}

		a.AddActivity(act)
		switch act.Type {
		case models.ActivityDeposit:
			a.Deposit(act.Amount)
		case models.ActivityWithdrawal:
			a.Withdraw(act.Amount)
			a.RecordWithdrawal()
		}

		if !seen[a] {
			seen[a] = true
			touched = append(touched, a)
		}
		return nil
	})
	return touched, errs
}

func parseActivity(fields []string) (models.Activity, string, error) {
	if len(fields) < 5 {
		return models.Activity{}, "", ErrMissingFields
	}

	typ, ok := models.ParseActivityType(fields[0])
	if !ok {
		return models.Activity{}, "", fmt.Errorf("%w: %s", ErrUnknownActivity, fields[0])
	}
	date, err := models.ParseDate(fields[2])
	if err != nil || !date.IsValid() {
		return models.Activity{}, "", fmt.Errorf("%w: %s", ErrInvalidDate, fields[2])
	}
	branch, ok := models.ParseBranch(fields[3])
	if !ok {
		return models.Activity{}, "", fmt.Errorf("%w: %s", ErrUnknownBranch, fields[3])
	}
	amount, err := utils.ParseMoney(fields[4])
	if err != nil {
		return models.Activity{}, "", fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	act := models.Activity{Date: date, Branch: branch, Type: typ, Amount: amount, ATM: true}
	return act, fields[1], nil
}
