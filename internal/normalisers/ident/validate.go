package ident

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// IdentifierError reports a derived identifier that is not pure ASCII.
type IdentifierError struct {
	// Kind is "currency" or "country".
	Kind string

	// Identifier is the offending derived identifier.
	Identifier string

	// Source is the display name the identifier was derived from.
	Source string

	// Suggestion is an ASCII rewrite to add to the substitution tables.
	// Empty when accent stripping alone cannot produce one.
	Suggestion string
}

func (e *IdentifierError) Error() string {
	msg := fmt.Sprintf("%s: %s identifier %q derived from %q",
		domain.ErrNonASCIIIdentifier, e.Kind, e.Identifier, e.Source)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; add a rename %q -> %q to the substitution tables", e.Identifier, e.Suggestion)
	}
	return msg
}

// Is reports whether target is domain.ErrNonASCIIIdentifier.
func (e *IdentifierError) Is(target error) bool {
	return target == domain.ErrNonASCIIIdentifier
}

// Validator checks derived identifiers after substitution.
type Validator struct {
	kind string
}

// NewValidator creates a validator for identifiers of the given kind.
func NewValidator(kind string) *Validator {
	return &Validator{kind: kind}
}

// Validate returns an *IdentifierError if id contains non-ASCII bytes.
func (v *Validator) Validate(id, source string) error {
	if IsASCII(id) {
		return nil
	}
	return &IdentifierError{
		Kind:       v.kind,
		Identifier: id,
		Source:     source,
		Suggestion: Suggest(id),
	}
}

// Suggest strips combining marks from id and returns the result if it is
// pure ASCII. It returns the empty string otherwise.
func Suggest(id string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, id)
	if err != nil || !IsASCII(out) {
		return ""
	}
	return out
}
