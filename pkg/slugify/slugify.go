// Package slugify turns display names into URL-safe identifiers.
//
// Names made only of ASCII word characters, whitespace and . , - @ are
// treated as Latin: everything outside [A-Za-z0-9_ -] becomes a dash. Any
// other name keeps its letters in every script and replaces the rest. The
// result is lower-cased, whitespace becomes dashes, dash runs collapse and
// leading/trailing dashes are dropped.
package slugify

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// space matches the whitespace set browsers use for \s, which is wider than
// RE2's ASCII-only \s.
const space = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	trimSpace          = regexp.MustCompile(`^[` + space + `]+|[` + space + `]+$`)
	isLatin            = regexp.MustCompile(`^[\w` + space + `.,\-@]+$`)
	invalidLatinChars  = regexp.MustCompile(`[^\w` + space + `\-]`)
	invalidUnicodeChar = regexp.MustCompile(`[^\p{L}` + space + `0-9\-_]`)
	collapseWhitespace = regexp.MustCompile(`[` + space + `]+`)
	collapseDash       = regexp.MustCompile(`-+`)
	trimTrailingDash   = regexp.MustCompile(`-$`)
	trimLeadingDashes  = regexp.MustCompile(`^-+`)
)

// Slugify returns the slug for s. It returns "" for empty input and for input
// with nothing slug-worthy in it.
func Slugify(s string) string {
	return slugify(s, false)
}

// PreserveCase is Slugify without lower-casing.
func PreserveCase(s string) string {
	return slugify(s, true)
}

func slugify(s string, preserveCase bool) string {
	if s == "" {
		return ""
	}

	s = trimSpace.ReplaceAllString(s, "")
	if isLatin.MatchString(s) {
		s = invalidLatinChars.ReplaceAllString(s, "-")
	} else {
		s = invalidUnicodeChar.ReplaceAllString(s, "-")
	}

	if !preserveCase {
		// Casers keep state; one per call.
		s = cases.Lower(language.Und).String(s)
	}

	s = collapseWhitespace.ReplaceAllString(s, "-")
	s = collapseDash.ReplaceAllString(s, "-")
	s = trimTrailingDash.ReplaceAllString(s, "")
	s = trimLeadingDashes.ReplaceAllString(s, "")
	return s
}
