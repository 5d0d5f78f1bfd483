package models

import "strings"

// AccountKind represents the type of bank account
type AccountKind string

const (
	KindChecking        AccountKind = "CHECKING"
	KindSavings         AccountKind = "SAVINGS"
	KindMoneyMarket     AccountKind = "MONEY_MARKET"
	KindCollegeChecking AccountKind = "COLLEGE_CHECKING"
	KindCD              AccountKind = "CD"
)

var kindCodes = map[AccountKind]string{
	KindChecking:        "01",
	KindSavings:         "02",
	KindMoneyMarket:     "03",
	KindCollegeChecking: "04",
	KindCD:              "05",
}

// kindKeywords are the command and record spellings of each kind
var kindKeywords = map[string]AccountKind{
	"checking":    KindChecking,
	"savings":     KindSavings,
	"moneymarket": KindMoneyMarket,
	"college":     KindCollegeChecking,
	"certificate": KindCD,
}

// ParseAccountKind resolves a kind keyword (checking, savings, moneymarket,
// college, certificate), ignoring case
func ParseAccountKind(s string) (AccountKind, bool) {
	k, ok := kindKeywords[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Code returns the 2-digit kind code used in account numbers
func (k AccountKind) Code() string {
	return kindCodes[k]
}

func (k AccountKind) String() string {
	return string(k)
}

// Campus identifies the university campus a College Checking account belongs to
type Campus string

const (
	CampusNewBrunswick Campus = "NEW_BRUNSWICK"
	CampusNewark       Campus = "NEWARK"
	CampusCamden       Campus = "CAMDEN"
)

var campusByCode = map[string]Campus{
	"1": CampusNewBrunswick,
	"2": CampusNewark,
	"3": CampusCamden,
}

// ParseCampus resolves a campus from its numeric code ("1", "2" or "3")
func ParseCampus(code string) (Campus, bool) {
	c, ok := campusByCode[strings.TrimSpace(code)]
	return c, ok
}

func (c Campus) String() string {
	return string(c)
}
