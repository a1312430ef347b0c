// Package tlcase normalizes Tagalog (Filipino) word forms before stemming.
//
// Normalization composes the input to Unicode NFC, folds case with the
// Tagalog casing rules, and unifies the apostrophe and hyphen variants
// that appear in contracted and reduplicated words:
//   - U+2019, U+2018, U+02BC, U+0060 and U+00B4 become U+0027 (')
//   - U+2010 and U+2011 become U+002D (-)
//
// All functions are safe for concurrent use.
package tlcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var tagalog = language.MustParse("tl")

// markReplacer maps apostrophe and hyphen look-alikes to their ASCII forms.
var markReplacer = strings.NewReplacer(
	"\u2019", "'", // right single quotation mark
	"\u2018", "'", // left single quotation mark
	"\u02BC", "'", // modifier letter apostrophe
	"`", "'",
	"\u00B4", "'", // acute accent
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
)

// ComposeNFC returns s in Unicode Normalization Form C.
// Decomposed input such as "ñ" becomes the single rune ñ.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// ToLower returns s lower-cased with Tagalog casing rules.
// A fresh Caser is built per call: cases.Caser is stateful and must not be
// shared between goroutines.
func ToLower(s string) string {
	return cases.Lower(tagalog).String(s)
}

// UnifyMarks replaces apostrophe and hyphen variants with ' and -.
func UnifyMarks(s string) string {
	return markReplacer.Replace(s)
}

// Normalize trims surrounding whitespace, replaces invalid UTF-8 with
// U+FFFD, composes to NFC, unifies marks and lower-cases s. The result is
// the canonical word form the stemmer works on and the form its
// reversibility checks reconstruct.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD"))
	if s == "" {
		return s
	}
	return ToLower(UnifyMarks(ComposeNFC(s)))
}

// IsApostrophe reports whether r is U+0027 or one of its look-alikes.
func IsApostrophe(r rune) bool {
	switch r {
	case '\'', '\u2019', '\u2018', '\u02BC', '`', '\u00B4':
		return true
	}
	return false
}
