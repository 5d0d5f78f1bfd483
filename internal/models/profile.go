package models

import "strings"

// Profile identifies an account holder. Names compare case-insensitively.
type Profile struct {
	FirstName   string
	LastName    string
	DateOfBirth Date
}

// NewProfile creates a holder profile
func NewProfile(first, last string, dob Date) Profile {
	return Profile{FirstName: first, LastName: last, DateOfBirth: dob}
}

// Equal reports whether both profiles name the same person
func (p Profile) Equal(o Profile) bool {
	return strings.EqualFold(p.FirstName, o.FirstName) &&
		strings.EqualFold(p.LastName, o.LastName) &&
		p.DateOfBirth.Equal(o.DateOfBirth)
}

// Compare orders profiles by last name, first name, then date of birth
func (p Profile) Compare(o Profile) int {
	if c := compareFold(p.LastName, o.LastName); c != 0 {
		return c
	}
	if c := compareFold(p.FirstName, o.FirstName); c != 0 {
		return c
	}
	return sign(p.DateOfBirth.Compare(o.DateOfBirth))
}

func (p Profile) String() string {
	return p.FirstName + " " + p.LastName + " " + p.DateOfBirth.String()
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
