package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser decodes list-one documents.
type Parser struct{}

// New creates a new list-one parser.
func New() *Parser {
	return &Parser{}
}

type xmlDocument struct {
	XMLName   xml.Name  `xml:"ISO_4217"`
	Published *string   `xml:"Pblshd,attr"`
	Table     *xmlTable `xml:"CcyTbl"`
}

type xmlTable struct {
	Entries []xmlEntry `xml:"CcyNtry"`
}

type xmlEntry struct {
	Country   *string  `xml:"CtryNm"`
	Name      *xmlName `xml:"CcyNm"`
	Code      *string  `xml:"Ccy"`
	Number    *string  `xml:"CcyNbr"`
	MinorUnit *string  `xml:"CcyMnrUnts"`
}

type xmlName struct {
	Text   string  `xml:",chardata"`
	IsFund *string `xml:"IsFund,attr"`
}

// Parse decodes the document read from r.
func (p *Parser) Parse(r io.Reader) (*domain.RawDocument, error) {
	if r == nil {
		return nil, domain.ErrInvalidInput
	}

	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.FormatError{Element: "ISO_4217", Reason: "empty document"}
		}
		return nil, &domain.FormatError{Element: "ISO_4217", Reason: "invalid XML", Err: err}
	}

	if doc.Published == nil {
		return nil, &domain.FormatError{Element: "Pblshd", Reason: "missing publication date attribute"}
	}
	if doc.Table == nil {
		return nil, &domain.FormatError{Element: "CcyTbl", Reason: "missing currency table"}
	}

	raw := &domain.RawDocument{
		Published: *doc.Published,
		Table: domain.RawTable{
			Entries: make([]domain.RawEntry, 0, len(doc.Table.Entries)),
		},
	}

	for i, e := range doc.Table.Entries {
		entry, err := convertEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		raw.Table.Entries = append(raw.Table.Entries, entry)
	}

	return raw, nil
}

func convertEntry(e xmlEntry) (domain.RawEntry, error) {
	if e.Country == nil {
		return domain.RawEntry{}, &domain.FormatError{Element: "CtryNm", Reason: "missing country name"}
	}

	entry := domain.RawEntry{
		CountryName: *e.Country,
		Code:        e.Code,
		MinorUnit:   e.MinorUnit,
	}

	if e.Name != nil {
		name := &domain.CurrencyName{Text: e.Name.Text}
		if e.Name.IsFund != nil {
			fund, err := strconv.ParseBool(strings.TrimSpace(*e.Name.IsFund))
			if err != nil {
				return domain.RawEntry{}, &domain.FormatError{
					Element: "IsFund",
					Reason:  fmt.Sprintf("%q is not a boolean", *e.Name.IsFund),
					Err:     err,
				}
			}
			name.IsFund = fund
		}
		entry.CurrencyName = name
	}

	if e.Number != nil {
		n, err := strconv.ParseUint(strings.TrimSpace(*e.Number), 10, 16)
		if err != nil {
			return domain.RawEntry{}, &domain.FormatError{
				Element: "CcyNbr",
				Reason:  fmt.Sprintf("%q is not a 16-bit unsigned integer", *e.Number),
				Err:     err,
			}
		}
		number := uint16(n)
		entry.Number = &number
	}

	return entry, nil
}
