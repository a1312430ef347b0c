package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/tl-nlp/tglstem/internal/tlcase"
)

// scan splits s into tokens with a rune-by-rune state machine.
// The caller guarantees s is non-empty.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i
		var typ TokenType
		switch {
		case unicode.IsSpace(r):
			typ = Space
			i = skipWhile(s, i, unicode.IsSpace)
		case unicode.IsDigit(r):
			typ = Number
			i = scanNumber(s, i)
		case unicode.IsLetter(r):
			typ = Word
			i = scanWord(s, i)
		case isDash(r):
			// A run of dashes is one punctuation token (--, em dash pairs).
			typ = Punctuation
			i = skipWhile(s, i, isDash)
		case unicode.IsPunct(r):
			typ = Punctuation
			i += size
		default:
			typ = Symbol
			i += size
		}
		tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: typ})
	}
	return tokens
}

func skipWhile(s string, i int, f func(rune) bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !f(r) {
			break
		}
		i += size
	}
	return i
}

// scanNumber reads digits with comma thousands groups (1,000,000) and a
// single decimal point followed by digits (3.14). It returns the end offset.
func scanNumber(s string, i int) int {
	i = skipDigits(s, i)
	for i+3 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
		if i+4 < len(s) && isDigitByte(s[i+4]) {
			break
		}
		i += 4
	}
	if i+1 < len(s) && s[i] == '.' && isDigitByte(s[i+1]) {
		i = skipDigits(s, i+1)
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	return i
}

// scanWord reads a word starting at a letter. Combining marks stay with
// their base letter. A single hyphen joins letter runs (mag-aral,
// iba-iba) and an apostrophe between letters joins a clitic (iba't,
// ibigay't, ano'ng). It returns the end offset.
func scanWord(s string, i int) int {
	i = skipWhile(s, i, isWordRune)
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '-' && r != '\u2010' && r != '\u2011' && !tlcase.IsApostrophe(r) {
			break
		}
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		if !unicode.IsLetter(nr) {
			break
		}
		i = skipWhile(s, next, isWordRune)
	}
	return i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

func isDash(r rune) bool {
	return r == '-' || r == '\u2013' || r == '\u2014' || r == '\u2010' || r == '\u2011'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
