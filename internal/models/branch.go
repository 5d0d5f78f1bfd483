package models

import "strings"

// Branch identifies one of the bank's fixed branch locations
type Branch string

const (
	BranchEdison      Branch = "EDISON"
	BranchBridgewater Branch = "BRIDGEWATER"
	BranchPrinceton   Branch = "PRINCETON"
	BranchPiscataway  Branch = "PISCATAWAY"
	BranchWarren      Branch = "WARREN"
)

// BranchInfo holds the static metadata of a branch
type BranchInfo struct {
	Code   string // 3-digit branch code used in account numbers
	County string
}

var branchCatalog = map[Branch]BranchInfo{
	BranchEdison:      {Code: "100", County: "Middlesex"},
	BranchBridgewater: {Code: "200", County: "Somerset"},
	BranchPrinceton:   {Code: "300", County: "Mercer"},
	BranchPiscataway:  {Code: "400", County: "Middlesex"},
	BranchWarren:      {Code: "500", County: "Somerset"},
}

// Branches lists every branch in catalog order
var Branches = []Branch{BranchEdison, BranchBridgewater, BranchPrinceton, BranchPiscataway, BranchWarren}

// ParseBranch resolves a branch from its city name, ignoring case
func ParseBranch(city string) (Branch, bool) {
	b := Branch(strings.ToUpper(strings.TrimSpace(city)))
	_, ok := branchCatalog[b]
	return b, ok
}

// Code returns the 3-digit branch code
func (b Branch) Code() string {
	return branchCatalog[b].Code
}

// County returns the county the branch is located in
func (b Branch) County() string {
	return branchCatalog[b].County
}

func (b Branch) String() string {
	return string(b)
}
