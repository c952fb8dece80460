// Package normalisers holds the stages that turn raw list-one rows into
// canonical data: identifier derivation (ident), the versioned substitution
// tables (tables), the entry normaliser (entry) and the country-currency
// mapper (country).
//
// Every stage is a pure function of its input. Map iteration always goes
// through sorted keys so repeated builds produce identical output.
package normalisers
