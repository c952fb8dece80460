// Package iso4217 looks up ISO 4217 currencies.
//
// The registry is compiled from the embedded list-one snapshot the first
// time any function is called, then shared read-only by all goroutines.
//
// # Lookups
//
//	usd, err := iso4217.FromAlpha("USD")
//	eur, err := iso4217.FromNumeric(978)
//	chf, err := iso4217.FromCountryAlpha2("LI")
//
// Alphabetic lookups are exact. FromAlpha reports ErrInvalidLength for a
// string that is not three bytes and ErrInvalidCharset for non-ASCII input
// before trying to match. Parse is the lenient form.
//
// # Countries
//
// Country lookups accept ISO 3166-1 numeric, alpha-2 and alpha-3 codes and
// return the country's primary currency. Countries without one, such as
// Antarctica, and unknown codes fail with ErrNoUniversalCurrency.
package iso4217
