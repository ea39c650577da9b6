// Package slug derives URL-safe identifiers from project titles
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	canonical       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate converts a title to a lowercase ASCII slug.
// Accents are stripped, runs of anything outside [a-z0-9] become a single
// "-", and leading/trailing separators are trimmed. Empty or
// all-punctuation input yields "".
//
// Example:
//
//	Generate("Messagerie temps réel") // "messagerie-temps-reel"
func Generate(title string) string {
	if title == "" {
		return ""
	}
	s := strings.ToLower(StripAccents(title))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StripAccents decomposes s (NFD) and drops the combining marks
func StripAccents(s string) string {
	// Chained transformers keep state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Valid reports whether s is already a canonical slug
func Valid(s string) bool {
	return canonical.MatchString(s)
}
