// Package tokenizer splits Tagalog text into typed tokens with byte offsets.
//
// Words keep their internal hyphens and apostrophes, so reduplicated and
// contracted forms (iba't-iba, mag-aral, ibigay't) reach the stemmer as
// one token. Numbers use the English convention of a comma thousands
// separator and a decimal point.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the input.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // letters, with joined hyphens and apostrophes
	Number                       // digits with optional thousands commas and one decimal point
	Punctuation                  // . , ! ? : ; ( ) " and runs of dashes
	Space                        // contiguous whitespace
	Symbol                       // everything else: emoji, currency, math
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a unit of text with its position and classification.
type Token struct {
	Text  string    `json:"text"`
	Start int       `json:"start"` // byte offset, inclusive
	End   int       `json:"end"`   // byte offset, exclusive
	Type  TokenType `json:"type"`
}

// String returns a debug representation, e.g. Word("aral")[0:4].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits s into tokens of every type.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns the text of the Word tokens of s.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var words []string
	for _, t := range scan(s) {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
