package ledger

import (
	"strings"

	"github.com/willfong/rubank/internal/models"
)

// ArchiveEntry is a closed account and the date it was closed
type ArchiveEntry struct {
	Account *models.Account
	Closed  models.Date
}

// Archive records closed accounts, most recently closed first.
// Entries are never removed.
type Archive struct {
	entries []ArchiveEntry // oldest first; read back in reverse
}

// NewArchive creates an empty archive
func NewArchive() *Archive {
	return &Archive{}
}

// Add records a closed account
func (ar *Archive) Add(a *models.Account, closed models.Date) {
	ar.entries = append(ar.entries, ArchiveEntry{Account: a, Closed: closed})
}

// Len returns the number of archived accounts
func (ar *Archive) Len() int {
	return len(ar.entries)
}

// Entries returns the archived accounts, newest first
func (ar *Archive) Entries() []ArchiveEntry {
	out := make([]ArchiveEntry, len(ar.entries))
	for i, e := range ar.entries {
		out[len(ar.entries)-1-i] = e
	}
	return out
}

// String renders one archived account with its close date and activity history
func (e ArchiveEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Account.String())
	sb.WriteString(" Closed[" + e.Closed.String() + "]")
	if len(e.Account.Activities) > 0 {
		sb.WriteString("\n\t[Activity]")
		for _, act := range e.Account.Activities {
			sb.WriteString("\n\t\t" + act.String())
		}
	}
	return sb.String()
}
