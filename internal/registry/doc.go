// Package registry builds the immutable, multi-index currency registry from
// a compilation.
//
// The registry stores index-aligned columns (identifier, alphabetic code,
// number, name, fund flag, minor unit, doc) plus keyed indices by number,
// by alphabetic code and by country code in all three ISO 3166-1 code
// spaces. All work happens in Build; lookups are single map reads.
//
// # Thread Safety
//
// A Registry is never mutated after Build returns and may be shared by any
// number of goroutines without locking.
package registry
