package ledger

import (
	"cmp"
	"slices"

	"github.com/willfong/rubank/internal/models"
)

// SortKey selects one of the report orderings
type SortKey byte

const (
	SortByBranch SortKey = 'B'
	SortByHolder SortKey = 'H'
	SortByKind   SortKey = 'T'
)

// Sorted returns a stably sorted copy of accounts. The input is not modified.
func Sorted(accounts []*models.Account, key SortKey) []*models.Account {
	out := slices.Clone(accounts)
	switch key {
	case SortByBranch:
		slices.SortStableFunc(out, compareBranch)
	case SortByHolder:
		slices.SortStableFunc(out, compareHolder)
	case SortByKind:
		slices.SortStableFunc(out, compareKind)
	}
	return out
}

// compareBranch orders by county, then branch name
func compareBranch(a, b *models.Account) int {
	return cmp.Or(
		cmp.Compare(a.Number.Branch.County(), b.Number.Branch.County()),
		cmp.Compare(a.Number.Branch.String(), b.Number.Branch.String()),
	)
}

// compareHolder orders by last name, first name, date of birth, then number
func compareHolder(a, b *models.Account) int {
	return cmp.Or(
		a.Holder.Compare(b.Holder),
		a.Number.Compare(b.Number),
	)
}

// compareKind orders by kind code, then number
func compareKind(a, b *models.Account) int {
	return cmp.Or(
		cmp.Compare(a.Kind.Code(), b.Kind.Code()),
		a.Number.Compare(b.Number),
	)
}
