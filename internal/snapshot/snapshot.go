// Package snapshot embeds the ISO 4217 list-one document compiled by default.
package snapshot

import _ "embed"

// Published is the publication date of the embedded document.
const Published = "2026-01-01"

// ListOne is the raw ISO 4217 list-one XML document.
//
//go:embed list-one.xml
var ListOne []byte
