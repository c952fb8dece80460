package domain

// Country is an ISO 3166-1 country as known to the country registry.
type Country struct {
	// Identifier is the symbolic name shared with CountryAssociation.
	Identifier string

	// Name is the English short name.
	Name string

	// Numeric is the ISO 3166-1 numeric code.
	Numeric uint16

	// Alpha2 is the ISO 3166-1 alpha-2 code.
	Alpha2 string

	// Alpha3 is the ISO 3166-1 alpha-3 code.
	Alpha3 string
}

// CountryCurrency is the result of a country lookup.
type CountryCurrency struct {
	Country  Country
	Currency CanonicalEntry
}
