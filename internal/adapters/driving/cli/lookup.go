package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <code>...",
	Short: "Look up currencies by alphabetic or numeric code",
	Long: `Resolves each argument as a three-letter code (USD, eur) or a numeric
code (840, 978) and prints the currency with the countries that use it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	addSourceFlags(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadLookup(ctx)
	if err != nil {
		return err
	}

	var results []currencyJSON
	for _, code := range args {
		entry, err := svc.Currency(ctx, code)
		if err != nil {
			return fmt.Errorf("%s: %w", code, describeCurrencyError(err))
		}
		countries, err := svc.CountriesUsing(ctx, entry.AlphaCode)
		if err != nil {
			return fmt.Errorf("%s: %w", code, err)
		}
		results = append(results, toCurrencyJSON(entry, countries))
	}

	if lookupJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	p := newPrinter(cmd.OutOrStdout())
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = currencyRow(domain.CanonicalEntry{
			AlphaCode: r.Code, Number: r.Number, Name: r.Name, IsFund: r.Fund, MinorUnit: r.MinorUnit,
		})
	}
	p.table(currencyHeaders, rows, func(row int) bool {
		return row >= 0 && row < len(results) && results[row].Fund
	})
	for _, r := range results {
		if len(r.Countries) > 0 {
			p.note("%s is used in: %s", r.Code, strings.Join(r.Countries, ", "))
		}
	}
	return nil
}

// describeCurrencyError adds a hint to runtime lookup errors.
func describeCurrencyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidLength):
		return fmt.Errorf("%w (alphabetic codes have three letters)", err)
	case errors.Is(err, domain.ErrInvalidCharset):
		return fmt.Errorf("%w (codes are ASCII)", err)
	default:
		return err
	}
}

var (
	listFunds   bool
	listNoFunds bool
	listQuery   string
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List currencies in numeric order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addSourceFlags(listCmd)
	listCmd.Flags().BoolVar(&listFunds, "funds", false, "only list fund codes")
	listCmd.Flags().BoolVar(&listNoFunds, "no-funds", false, "leave fund codes out")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by code, name or identifier")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	listCmd.MarkFlagsMutuallyExclusive("funds", "no-funds")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := loadLookup(ctx)
	if err != nil {
		return err
	}

	entries, err := svc.List(ctx, driving.ListOptions{
		FundsOnly:    listFunds,
		ExcludeFunds: listNoFunds,
		Query:        listQuery,
	})
	if err != nil {
		return fmt.Errorf("failed to list currencies: %w", err)
	}

	if listJSON {
		out := make([]currencyJSON, len(entries))
		for i := range entries {
			out[i] = toCurrencyJSON(entries[i], nil)
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(entries) == 0 {
		p.note("No currencies found.")
		return nil
	}

	rows := make([][]string, len(entries))
	for i := range entries {
		rows[i] = currencyRow(entries[i])
	}
	p.table(currencyHeaders, rows, func(row int) bool {
		return row >= 0 && row < len(entries) && entries[row].IsFund
	})
	p.note("%d currencies", len(entries))
	return nil
}

var countryJSON bool

var countryCmd = &cobra.Command{
	Use:   "country <code>",
	Short: "Show the currency used by a country",
	Long: `Resolves an ISO 3166-1 numeric (250), alpha-2 (FR) or alpha-3 (FRA)
country code to the country's primary currency.`,
	Args: cobra.ExactArgs(1),
	RunE: runCountry,
}

func init() {
	addSourceFlags(countryCmd)
	countryCmd.Flags().BoolVar(&countryJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(countryCmd)
}

func runCountry(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadLookup(ctx)
	if err != nil {
		return err
	}

	cc, err := svc.Country(ctx, args[0])
	if errors.Is(err, domain.ErrNoUniversalCurrency) {
		cmd.Printf("%s (%s) has no universal currency\n", cc.Country.Name, cc.Country.Alpha2)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if countryJSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			Country  string       `json:"country"`
			Numeric  uint16       `json:"numeric"`
			Alpha2   string       `json:"alpha2"`
			Alpha3   string       `json:"alpha3"`
			Currency currencyJSON `json:"currency"`
		}{
			Country:  cc.Country.Name,
			Numeric:  cc.Country.Numeric,
			Alpha2:   cc.Country.Alpha2,
			Alpha3:   cc.Country.Alpha3,
			Currency: toCurrencyJSON(cc.Currency, nil),
		})
	}

	p := newPrinter(cmd.OutOrStdout())
	p.table(
		[]string{"COUNTRY", "NUM", "A2", "A3", "CURRENCY"},
		[][]string{{
			cc.Country.Name,
			fmt.Sprintf("%03d", cc.Country.Numeric),
			cc.Country.Alpha2,
			cc.Country.Alpha3,
			fmt.Sprintf("%s %s", cc.Currency.AlphaCode, cc.Currency.Name),
		}},
		nil,
	)
	return nil
}
