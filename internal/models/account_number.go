package models

import "strings"

// SuffixSource produces the random 4-digit part of an account number
type SuffixSource interface {
	Suffix() string
}

// AccountNumber identifies an account: branch code, kind code and a
// 4-digit suffix, rendered as 9 characters (e.g. "100011234").
type AccountNumber struct {
	Branch Branch
	Kind   AccountKind
	Suffix string
}

// NewAccountNumber draws a fresh suffix from src
func NewAccountNumber(branch Branch, kind AccountKind, src SuffixSource) AccountNumber {
	return AccountNumber{Branch: branch, Kind: kind, Suffix: src.Suffix()}
}

// IsZero reports whether no number has been assigned yet
func (n AccountNumber) IsZero() bool {
	return n == AccountNumber{}
}

// Equal reports whether branch, kind and suffix all match
func (n AccountNumber) Equal(o AccountNumber) bool {
	return n == o
}

// Compare orders account numbers by their rendered string
func (n AccountNumber) Compare(o AccountNumber) int {
	return strings.Compare(n.String(), o.String())
}

func (n AccountNumber) String() string {
	if n.IsZero() {
		return ""
	}
	return n.Branch.Code() + n.Kind.Code() + n.Suffix
}
