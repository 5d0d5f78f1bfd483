package bank

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/willfong/rubank/internal/models"
)

// OpenRequest carries the raw arguments of an open command. Fields are
// parsed and checked by Manager.Open in a fixed order so the first problem
// found is the one reported.
type OpenRequest struct {
	Kind        string `validate:"required"`
	Branch      string `validate:"required"`
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	DateOfBirth string `validate:"required"`
	Amount      string `validate:"required"`

	Campus   string // College Checking
	Term     string // CD
	OpenDate string // CD
}

// newValidator builds the validator with the bank's custom tags
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("cd_term", validateTerm)
	_ = v.RegisterValidation("campus_code", validateCampus)

	return v
}

// validateTerm accepts an offered CD term in months
func validateTerm(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && models.IsValidTerm(n)
}

// validateCampus accepts a known campus code
func validateCampus(fl validator.FieldLevel) bool {
	_, ok := models.ParseCampus(fl.Field().String())
	return ok
}
