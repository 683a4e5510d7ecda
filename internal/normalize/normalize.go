// Package normalize turns free text into data layer identifier tokens.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transform.Transformer chains keep internal state, so each call gets its own.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	},
}

func stripMarks(s string) string {
	tr := chainPool.Get().(transform.Transformer)
	defer chainPool.Put(tr)
	tr.Reset()
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// String lowercases s, strips diacritics, maps whitespace runs and hyphens to
// a single underscore, drops anything outside [a-z0-9_], collapses repeated
// underscores and trims them from both ends.
//
//	String("Home - Página Principal") == "home_pagina_principal"
func String(s string) string {
	if s == "" {
		return ""
	}
	s = stripMarks(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || isSpace(r):
			pending = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSpace matches the whitespace class used by browsers for \s: the Unicode
// White_Space set plus BOM, without NEL.
func isSpace(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
