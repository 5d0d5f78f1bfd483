package bank

import (
	"errors"
	"fmt"
)

// Rejection reasons
var (
	ErrMissingTokens     = errors.New("missing data tokens")
	ErrInvalidKind       = errors.New("invalid account kind")
	ErrInvalidBranch     = errors.New("invalid branch")
	ErrInvalidDate       = errors.New("invalid date")
	ErrFutureDate        = errors.New("date in the future")
	ErrUnderage          = errors.New("holder under 18")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositive       = errors.New("amount not positive")
	ErrInvalidTerm       = errors.New("invalid term")
	ErrInvalidCampus     = errors.New("invalid campus")
	ErrDuplicateAccount  = errors.New("duplicate account")
	ErrBelowMinimum      = errors.New("below minimum opening deposit")
	ErrNotEligible       = errors.New("not eligible for college checking")
	ErrAccountNotFound   = errors.New("account not found")
	ErrHolderNotFound    = errors.New("holder has no accounts")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCloseBeforeOpen   = errors.New("close date before open date")
	ErrNumbersExhausted  = errors.New("no free account numbers")
)

// ErrorType categorizes rejections
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeBusiness   ErrorType = "business"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error is a rejected operation. Message is the text shown to the user;
// Err is one of the sentinel errors above.
type Error struct {
	Type    ErrorType
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func reject(t ErrorType, err error, format string, args ...any) *Error {
	return &Error{Type: t, Err: err, Message: fmt.Sprintf(format, args...)}
}

func invalid(err error, format string, args ...any) *Error {
	return reject(ErrorTypeValidation, err, format, args...)
}

func notFound(err error, format string, args ...any) *Error {
	return reject(ErrorTypeNotFound, err, format, args...)
}

func refused(err error, format string, args ...any) *Error {
	return reject(ErrorTypeBusiness, err, format, args...)
}

// TypeOf returns the category of err, or ErrorTypeUnknown when err is not a
// rejection from this package
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// MissingTokens is the rejection for a command with too few arguments;
// what names the operation, e.g. "the deposit"
func MissingTokens(what string) error {
	return invalid(ErrMissingTokens, "Missing data tokens for %s.", what)
}
