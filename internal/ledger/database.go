// Package ledger holds the open accounts of the bank, the archive of closed
// accounts, and the reports rendered from them.
package ledger

import (
	"slices"

	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

// Database is the ordered collection of open accounts. Insertion order is
// kept for the life of the process; reports sort a copy.
//
// Database is a plain collection: it does not enforce uniqueness or apply
// loyalty rules on Add. Callers use HolderHasChecking and FindDuplicate
// before opening an account.
type Database struct {
	accounts []*models.Account
	archive  *Archive
	onRecord func()
}

// New creates an empty database with its own archive
func New() *Database {
	return &Database{archive: NewArchive()}
}

// OnRecord registers fn to be called once for every record read by a bulk
// load, accepted or not
func (db *Database) OnRecord(fn func()) {
	db.onRecord = fn
}

// Archive returns the archive of closed accounts
func (db *Database) Archive() *Archive {
	return db.archive
}

// Len returns the number of open accounts
func (db *Database) Len() int {
	return len(db.accounts)
}

// IsEmpty reports whether no accounts are open
func (db *Database) IsEmpty() bool {
	return len(db.accounts) == 0
}

// Accounts returns a snapshot of the open accounts in insertion order.
// The slice is a copy; the accounts are shared.
func (db *Database) Accounts() []*models.Account {
	return slices.Clone(db.accounts)
}

// Add appends an account
func (db *Database) Add(a *models.Account) {
	db.accounts = append(db.accounts, a)
}

// Remove deletes the first account equal to a, keeping the order of the rest.
// It reports whether an account was removed.
func (db *Database) Remove(a *models.Account) bool {
	i := db.indexOf(a)
	if i < 0 {
		return false
	}
	db.accounts = slices.Delete(db.accounts, i, i+1)
	return true
}

// Contains reports whether an account equal to a is open
func (db *Database) Contains(a *models.Account) bool {
	return db.indexOf(a) >= 0
}

func (db *Database) indexOf(a *models.Account) int {
	return slices.IndexFunc(db.accounts, func(x *models.Account) bool {
		return x.Equal(a)
	})
}

// Find looks up an account by its rendered 9-digit number
func (db *Database) Find(number string) *models.Account {
	for _, a := range db.accounts {
		if a.Number.String() == number {
			return a
		}
	}
	return nil
}

// FindNumber looks up an account by number
func (db *Database) FindNumber(number models.AccountNumber) *models.Account {
	for _, a := range db.accounts {
		if a.Number.Equal(number) {
			return a
		}
	}
	return nil
}

// Deposit adds amount to the account with the given number.
// It reports whether the account exists.
func (db *Database) Deposit(number models.AccountNumber, amount utils.Money) bool {
	a := db.FindNumber(number)
	if a == nil {
		return false
	}
	a.Deposit(amount)
	return true
}

// Withdraw removes amount from the account with the given number.
// It returns false when the account does not exist or cannot cover the amount.
func (db *Database) Withdraw(number models.AccountNumber, amount utils.Money) bool {
	a := db.FindNumber(number)
	if a == nil {
		return false
	}
	return a.Withdraw(amount)
}

// HolderHasChecking reports whether the holder owns a Checking account.
// College Checking does not count.
func (db *Database) HolderHasChecking(holder models.Profile) bool {
	return slices.ContainsFunc(db.accounts, func(a *models.Account) bool {
		return a.Kind == models.KindChecking && a.Holder.Equal(holder)
	})
}

// FindDuplicate returns the holder's open account of the same kind, or nil.
// CDs only collide when the term also matches.
func (db *Database) FindDuplicate(holder models.Profile, kind models.AccountKind, term int) *models.Account {
	for _, a := range db.accounts {
		if a.Kind != kind || !a.Holder.Equal(holder) {
			continue
		}
		if kind == models.KindCD && a.Term != term {
			continue
		}
		return a
	}
	return nil
}

// AccountsOf returns the holder's open accounts in insertion order
func (db *Database) AccountsOf(holder models.Profile) []*models.Account {
	var out []*models.Account
	for _, a := range db.accounts {
		if a.Holder.Equal(holder) {
			out = append(out, a)
		}
	}
	return out
}

// StripSavingsLoyalty clears loyalty on every Savings account of the holder
func (db *Database) StripSavingsLoyalty(holder models.Profile) {
	for _, a := range db.accounts {
		if a.Kind == models.KindSavings && a.Holder.Equal(holder) {
			a.SetLoyal(false)
		}
	}
}

// RecomputeLoyalty applies the opening loyalty rules to every account:
// Savings is loyal when the holder has a Checking account, Money Market when
// the balance reaches the loyalty threshold.
func (db *Database) RecomputeLoyalty(moneyMarketThreshold utils.Money) {
	for _, a := range db.accounts {
		switch a.Kind {
		case models.KindSavings:
			a.SetLoyal(db.HolderHasChecking(a.Holder))
		case models.KindMoneyMarket:
			if a.Balance.GreaterThanOrEqual(moneyMarketThreshold) {
				a.SetLoyal(true)
			}
		}
	}
}

// Close moves the account into the archive with the given close date.
// It reports whether the account was open.
func (db *Database) Close(a *models.Account, closed models.Date) bool {
	if !db.Remove(a) {
		return false
	}
	db.archive.Add(a, closed)
	return true
}
