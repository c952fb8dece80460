package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6C7086")
	colorFund    = lipgloss.Color("#F9E2AF")
	colorBorder  = lipgloss.Color("#45475A")
)

// printer renders tables, styled only when writing to a terminal.
type printer struct {
	w      io.Writer
	styled bool
	r      *lipgloss.Renderer
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:      w,
		styled: isTerminal(w),
		r:      lipgloss.NewRenderer(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// table writes rows under headers. highlight marks rows drawn in the fund colour.
func (p *printer) table(headers []string, rows [][]string, highlight func(row int) bool) {
	t := table.New().
		Headers(headers...).
		Rows(rows...)

	if !p.styled {
		t = t.Border(lipgloss.HiddenBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style {
				return p.r.NewStyle().PaddingRight(1)
			})
		fmt.Fprintln(p.w, t.String())
		return
	}

	header := p.r.NewStyle().Bold(true).Foreground(colorPrimary).PaddingRight(1)
	cell := p.r.NewStyle().PaddingRight(1)
	fund := cell.Foreground(colorFund)

	t = t.Border(lipgloss.RoundedBorder()).
		BorderStyle(p.r.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case highlight != nil && highlight(row):
				return fund
			default:
				return cell
			}
		})
	fmt.Fprintln(p.w, t.String())
}

// note writes a secondary line.
func (p *printer) note(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.r.NewStyle().Foreground(colorMuted).Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// currencyJSON is the JSON shape of one currency.
type currencyJSON struct {
	Code       string   `json:"code"`
	Number     uint16   `json:"number"`
	Name       string   `json:"name"`
	Identifier string   `json:"identifier"`
	Fund       bool     `json:"fund"`
	MinorUnit  *uint8   `json:"minor_unit"`
	Countries  []string `json:"countries,omitempty"`
}

func toCurrencyJSON(e domain.CanonicalEntry, countries []domain.Country) currencyJSON {
	out := currencyJSON{
		Code:       e.AlphaCode,
		Number:     e.Number,
		Name:       e.Name,
		Identifier: e.Identifier,
		Fund:       e.IsFund,
		MinorUnit:  e.MinorUnit,
	}
	for _, c := range countries {
		out.Countries = append(out.Countries, c.Alpha2)
	}
	return out
}

var currencyHeaders = []string{"CODE", "NUM", "NAME", "MINOR", "FUND"}

func currencyRow(e domain.CanonicalEntry) []string {
	minor := "-"
	if e.MinorUnit != nil {
		minor = strconv.Itoa(int(*e.MinorUnit))
	}
	fund := ""
	if e.IsFund {
		fund = "yes"
	}
	return []string{e.AlphaCode, fmt.Sprintf("%03d", e.Number), e.Name, minor, fund}
}
