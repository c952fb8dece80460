package driving

import (
	"context"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// ListOptions filters currency listings.
type ListOptions struct {
	// FundsOnly keeps fund currencies only.
	FundsOnly bool

	// ExcludeFunds drops fund currencies.
	ExcludeFunds bool

	// Query keeps currencies whose name, code or identifier contains it,
	// compared case-insensitively.
	Query string
}

// LookupService answers runtime queries against a built registry.
// Errors are the runtime sentinels from the domain package.
type LookupService interface {
	// Currency resolves a three-letter code or a numeric code given in decimal.
	Currency(ctx context.Context, code string) (domain.CanonicalEntry, error)

	// Country resolves a numeric, alpha-2 or alpha-3 country code.
	Country(ctx context.Context, code string) (domain.CountryCurrency, error)

	// List returns currencies in ascending numeric order.
	List(ctx context.Context, opts ListOptions) ([]domain.CanonicalEntry, error)

	// CountriesUsing returns the countries associated with a currency.
	CountriesUsing(ctx context.Context, code string) ([]domain.Country, error)
}
