// Package ident derives ASCII symbolic identifiers from display names.
package ident

import (
	"strings"
	"unicode"
)

// Pascal converts a display name to pascal case.
//
// Words are split on any rune that is neither a letter nor a digit, on a
// lower-to-upper transition, and before the last capital of an acronym run
// ("HTMLParser" splits as "HTML" "Parser"). Digits never split a word.
// Each word keeps its first rune upper-cased and lower-cases the rest.
//
//	Pascal("US Dollar")   == "UsDollar"
//	Pascal("Pa’anga")     == "PaAnga"
//	Pascal("E.M.U.-6")    == "EMU6"
//	Pascal("ZZ01_Bond")   == "Zz01Bond"
func Pascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, word := range words(s) {
		for i, r := range word {
			if i == 0 {
				b.WriteRune(unicode.ToUpper(r))
				continue
			}
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func words(s string) [][]rune {
	rs := []rune(s)
	var out [][]rune
	var cur []rune

	for i, r := range rs {
		if !isWordRune(r) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}

		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			var next rune
			if i+1 < len(rs) {
				next = rs[i+1]
			}
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				out = append(out, cur)
				cur = nil
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && unicode.IsLower(next):
				out = append(out, cur)
				cur = nil
			}
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsASCII reports whether s contains only ASCII bytes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
