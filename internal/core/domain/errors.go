package domain

import (
	"errors"
	"fmt"
)

// Build-time errors abort compilation. They indicate either a malformed
// input document or substitution tables that are stale relative to the data.
var (
	// ErrFormat indicates the input document does not match the expected schema.
	ErrFormat = errors.New("malformed document")

	// ErrDateFormat indicates the publication date is not YYYY-MM-DD.
	ErrDateFormat = errors.New("malformed publication date")

	// ErrMinorUnit indicates a minor unit value that is not a small non-negative integer.
	ErrMinorUnit = errors.New("malformed minor unit")

	// ErrNonASCIIIdentifier indicates a derived identifier still contains
	// non-ASCII characters after the substitution table was applied.
	ErrNonASCIIIdentifier = errors.New("non-ASCII identifier")

	// ErrDuplicateAlphaCode indicates two canonical entries share an alphabetic code.
	ErrDuplicateAlphaCode = errors.New("duplicate alphabetic code")

	// ErrDuplicateIdentifier indicates two canonical entries derived the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrUnknownCountry indicates a country identifier the country registry does not know.
	ErrUnknownCountry = errors.New("unknown country identifier")

	// ErrTables indicates the substitution tables could not be loaded.
	ErrTables = errors.New("invalid substitution tables")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a stored compilation does not exist.
	ErrNotFound = errors.New("not found")
)

// Runtime lookup errors. These are ordinary values returned to callers.
var (
	// ErrInvalidCode indicates the value does not match any currency.
	ErrInvalidCode = errors.New("invalid currency code")

	// ErrInvalidLength indicates an alphabetic code that is not exactly three bytes.
	ErrInvalidLength = errors.New("invalid currency code length")

	// ErrInvalidCharset indicates an alphabetic code containing non-ASCII bytes.
	ErrInvalidCharset = errors.New("invalid currency code charset")

	// ErrNoUniversalCurrency indicates the country has no associated currency.
	ErrNoUniversalCurrency = errors.New("no universal currency")
)

// FormatError describes a schema mismatch in the input document.
type FormatError struct {
	// Element is the element or attribute that failed, e.g. "CcyNbr".
	Element string

	// Reason describes the mismatch.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrFormat, e.Element, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// DateFormatError describes a publication date that is not YYYY-MM-DD.
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrDateFormat, e.Value, e.Err)
}

// Is reports whether target is ErrDateFormat.
func (e *DateFormatError) Is(target error) bool {
	return target == ErrDateFormat
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// MinorUnitError describes a minor unit value that failed to parse.
type MinorUnitError struct {
	Value string
	Err   error
}

func (e *MinorUnitError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrMinorUnit, e.Value, e.Err)
}

// Is reports whether target is ErrMinorUnit.
func (e *MinorUnitError) Is(target error) bool {
	return target == ErrMinorUnit
}

func (e *MinorUnitError) Unwrap() error {
	return e.Err
}
