package ledger

import (
	"fmt"
	"strings"

	"github.com/willfong/rubank/internal/models"
)

// Messages for reports with nothing to list
const (
	EmptyDatabaseMessage = "Account database is empty!"
	EmptyArchiveMessage  = "Archive is empty."
)

// ReportByBranch lists accounts grouped by county, then branch
func (db *Database) ReportByBranch() string {
	if db.IsEmpty() {
		return EmptyDatabaseMessage
	}

	var sb strings.Builder
	sb.WriteString("\n*List of accounts ordered by branch location (county, city).")

	county := ""
	for _, a := range Sorted(db.accounts, SortByBranch) {
		if c := a.Number.Branch.County(); c != county {
			sb.WriteString("\nCounty: " + c + "\n")
			county = c
		}
		sb.WriteString(a.String() + "\n")
	}
	sb.WriteString("\n*end of list.")
	return sb.String()
}

// ReportByHolder lists accounts ordered by holder and number
func (db *Database) ReportByHolder() string {
	if db.IsEmpty() {
		return EmptyDatabaseMessage
	}

	var sb strings.Builder
	sb.WriteString("\n*List of accounts ordered by account holder and number.\n")
	for _, a := range Sorted(db.accounts, SortByHolder) {
		sb.WriteString(a.String() + "\n")
	}
	sb.WriteString("\n*end of list.\n")
	return sb.String()
}

// ReportByKind lists accounts grouped by kind and ordered by number
func (db *Database) ReportByKind() string {
	if db.IsEmpty() {
		return EmptyDatabaseMessage
	}

	var sb strings.Builder
	sb.WriteString("\n*List of accounts ordered by account type and number.")

	var kind models.AccountKind
	for _, a := range Sorted(db.accounts, SortByKind) {
		if a.Kind != kind {
			sb.WriteString("\nAccount Type: " + a.Kind.String() + "\n")
			kind = a.Kind
		}
		sb.WriteString(a.String() + "\n")
	}
	sb.WriteString("\n*end of list.\n")
	return sb.String()
}

// ReportStatements renders a statement for every account, grouped by holder.
// Rendering a statement posts the cycle's interest and fee to each balance.
func (db *Database) ReportStatements() string {
	if db.IsEmpty() {
		return EmptyDatabaseMessage
	}

	var sb strings.Builder
	sb.WriteString("*Account statements by account holder.\n")

	count := 0
	var prev *models.Profile
	for _, a := range Sorted(db.accounts, SortByHolder) {
		if prev == nil || !prev.Equal(a.Holder) {
			count++
			fmt.Fprintf(&sb, "\n%d.%s\n", count, a.Holder)
			holder := a.Holder
			prev = &holder
		}
		sb.WriteString("\t[Account#] " + a.Number.String() + "\n")
		sb.WriteString(models.Statement(a))
	}
	sb.WriteString("\n*end of statements.")
	return sb.String()
}

// ReportArchive lists closed accounts, newest first
func (db *Database) ReportArchive() string {
	if db.archive.Len() == 0 {
		return EmptyArchiveMessage
	}

	var sb strings.Builder
	sb.WriteString("\n*List of closed accounts in the archive.\n")
	for _, e := range db.archive.Entries() {
		sb.WriteString(e.String() + "\n")
	}
	sb.WriteString("*end of list.\n")
	return sb.String()
}
