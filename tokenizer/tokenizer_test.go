package tokenizer

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyInvariants checks the offset and reconstruction invariants that
// hold for every tokenization.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	var buf strings.Builder
	for i, tok := range tokens {
		require.Equalf(t, tok.Text, input[tok.Start:tok.End], "token %d offset invariant", i)
		buf.WriteString(tok.Text)
	}
	require.Equal(t, input, buf.String(), "reconstruction invariant")
}

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"single word", "aral", []Token{
			{Text: "aral", Start: 0, End: 4, Type: Word},
		}},
		{"two words", "kumain ka", []Token{
			{Text: "kumain", Start: 0, End: 6, Type: Word},
			{Text: " ", Start: 6, End: 7, Type: Space},
			{Text: "ka", Start: 7, End: 9, Type: Word},
		}},
		{"precomposed enye", "pi\u00f1a", []Token{
			{Text: "pi\u00f1a", Start: 0, End: 5, Type: Word},
		}},
		{"decomposed enye stays joined", "pin\u0303a", []Token{
			{Text: "pin\u0303a", Start: 0, End: 6, Type: Word},
		}},

		// -- Hyphens --

		{"hyphenated prefix", "mag-aral", []Token{
			{Text: "mag-aral", Start: 0, End: 8, Type: Word},
		}},
		{"full reduplication", "araw-araw", []Token{
			{Text: "araw-araw", Start: 0, End: 9, Type: Word},
		}},
		{"non-breaking hyphen", "gabi\u2011gabi", []Token{
			{Text: "gabi\u2011gabi", Start: 0, End: 11, Type: Word},
		}},
		{"trailing hyphen", "mag-", []Token{
			{Text: "mag", Start: 0, End: 3, Type: Word},
			{Text: "-", Start: 3, End: 4, Type: Punctuation},
		}},
		{"double hyphen splits", "oo--hindi", []Token{
			{Text: "oo", Start: 0, End: 2, Type: Word},
			{Text: "--", Start: 2, End: 4, Type: Punctuation},
			{Text: "hindi", Start: 4, End: 9, Type: Word},
		}},
		{"em dash run", "oo\u2014hindi", []Token{
			{Text: "oo", Start: 0, End: 2, Type: Word},
			{Text: "\u2014", Start: 2, End: 5, Type: Punctuation},
			{Text: "hindi", Start: 5, End: 10, Type: Word},
		}},

		// -- Apostrophes --

		{"contraction", "iba't-iba", []Token{
			{Text: "iba't-iba", Start: 0, End: 9, Type: Word},
		}},
		{"curly apostrophe", "ibigay\u2019t", []Token{
			{Text: "ibigay\u2019t", Start: 0, End: 10, Type: Word},
		}},
		{"closing quote not joined", "\u2018oo\u2019 aniya", []Token{
			{Text: "\u2018", Start: 0, End: 3, Type: Punctuation},
			{Text: "oo", Start: 3, End: 5, Type: Word},
			{Text: "\u2019", Start: 5, End: 8, Type: Punctuation},
			{Text: " ", Start: 8, End: 9, Type: Space},
			{Text: "aniya", Start: 9, End: 14, Type: Word},
		}},

		// -- Numbers --

		{"plain digits", "42", []Token{
			{Text: "42", Start: 0, End: 2, Type: Number},
		}},
		{"thousands commas", "1,000,000", []Token{
			{Text: "1,000,000", Start: 0, End: 9, Type: Number},
		}},
		{"decimal point", "3.14", []Token{
			{Text: "3.14", Start: 0, End: 4, Type: Number},
		}},
		{"comma list not a number", "1,2", []Token{
			{Text: "1", Start: 0, End: 1, Type: Number},
			{Text: ",", Start: 1, End: 2, Type: Punctuation},
			{Text: "2", Start: 2, End: 3, Type: Number},
		}},
		{"sentence-final period", "5.", []Token{
			{Text: "5", Start: 0, End: 1, Type: Number},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
		}},

		// -- Punctuation and symbols --

		{"punctuation between words", "nagsulat, binasa", []Token{
			{Text: "nagsulat", Start: 0, End: 8, Type: Word},
			{Text: ",", Start: 8, End: 9, Type: Punctuation},
			{Text: " ", Start: 9, End: 10, Type: Space},
			{Text: "binasa", Start: 10, End: 16, Type: Word},
		}},
		{"currency symbol", "\u20b1100", []Token{
			{Text: "\u20b1", Start: 0, End: 3, Type: Symbol},
			{Text: "100", Start: 3, End: 6, Type: Number},
		}},
		{"invalid utf8", "\xff", []Token{
			{Text: "\xff", Start: 0, End: 1, Type: Symbol},
		}},
		{"mixed whitespace", "a \t\nb", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: " \t\n", Start: 1, End: 4, Type: Space},
			{Text: "b", Start: 4, End: 5, Type: Word},
		}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokens(tt.input)
			require.Equal(t, tt.want, got)
			verifyInvariants(t, tt.input, got)
		})
	}
}

func TestWordTokensLargeInput(t *testing.T) {
	input := strings.Repeat("Nagsulat siya ng liham, at binasa ko ito. ", 30000)
	tokens := WordTokens(input)
	require.NotEmpty(t, tokens)
	verifyInvariants(t, input, tokens)
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"sentence", "Nagsulat, binasa, at punitin.", []string{"Nagsulat", "binasa", "at", "punitin"}},
		{"numbers excluded", "5 piso", []string{"piso"}},
		{"contractions kept", "pinakamahusay't iba't-iba", []string{"pinakamahusay't", "iba't-iba"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{Word, "Word"},
		{Number, "Number"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Symbol, "Symbol"},
		{TokenType(99), "TokenType(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.tt.String())
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "aral", Start: 0, End: 4, Type: Word}
	require.Equal(t, `Word("aral")[0:4]`, tok.String())
}

func BenchmarkWordTokens(b *testing.B) {
	input := strings.Repeat("Nagsulat siya ng liham, at binasa ko ito nang 3.5 oras. ", 1000)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		WordTokens(input)
	}
}

func ExampleWordTokens() {
	for _, t := range WordTokens("Iba't-iba, oo!") {
		fmt.Printf("%s: %q\n", t.Type, t.Text)
	}
	// Output:
	// Word: "Iba't-iba"
	// Punctuation: ","
	// Space: " "
	// Word: "oo"
	// Punctuation: "!"
}

func ExampleWords() {
	fmt.Println(Words("Mag-aral tayo ng 2 oras."))
	// Output:
	// [Mag-aral tayo ng oras]
}

func FuzzWordTokens(f *testing.F) {
	f.Add("Nagsulat, binasa, at punitin.")
	f.Add("iba't-iba")
	f.Add("1,000.50")
	f.Add("mag--aral")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("a'\u2019-")
	f.Fuzz(func(t *testing.T, s string) {
		verifyInvariants(t, s, WordTokens(s))
	})
}

func TestConcurrentSafety(t *testing.T) {
	input := "Nagsulat siya ng liham, at binasa ko ito. Iba't-iba ang 1,000 piso."
	want := WordTokens(input)
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			assert.Equal(t, want, WordTokens(input))
		})
	}
	wg.Wait()
}
