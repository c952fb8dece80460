package driven

import (
	"io"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// DocumentParser reads the ISO 4217 list-one document.
type DocumentParser interface {
	// Parse decodes the document. Schema mismatches are reported as
	// *domain.FormatError. The publication date is not validated.
	Parse(r io.Reader) (*domain.RawDocument, error)
}
