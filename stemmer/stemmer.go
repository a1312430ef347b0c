// Package stemmer reduces inflected Tagalog words to their roots.
//
// A word is analyzed by a bounded breadth-first search over reversible
// operations: prefix, infix, suffix and circumfix removal, contraction
// splitting, full and partial reduplication removal, and reversal of
// spelling alternations (d/r, o/u, e/i, nasal assimilation, vowel loss,
// metathesis). Every state reached is a candidate; candidates whose root is
// a known, well-formed root survive the filter and are ranked.
//
// Every candidate records its derivation, and Stem.Reconstruct replays it
// back to the normalized word.
//
// A Stemmer is immutable after New and safe for concurrent use. Each call
// builds its own search state.
package stemmer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tl-nlp/tglstem/data"
	"github.com/tl-nlp/tglstem/internal/tlcase"
	"github.com/tl-nlp/tglstem/tokenizer"
)

// ErrInvalidInput is returned for an empty word or one without letters.
var ErrInvalidInput = errors.New("invalid input")

// Stemmer analyzes words against one resource collection and policy.
type Stemmer struct {
	res    *Resources
	cfg    Config
	filter *filter
}

// New returns a stemmer over res with the policy cfg. A nil Ranking uses
// DefaultRanking.
func New(res *Resources, cfg Config) (*Stemmer, error) {
	if res == nil {
		return nil, errors.New("stemmer: nil resources")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "stemmer: invalid config")
	}
	if cfg.Ranking == nil {
		cfg.Ranking = DefaultRanking()
	}
	whitelist := make([]string, 0, len(cfg.Whitelist))
	for _, w := range cfg.Whitelist {
		whitelist = append(whitelist, tlcase.Normalize(w))
	}
	cfg.Whitelist = whitelist
	return &Stemmer{
		res:    res,
		cfg:    cfg,
		filter: newFilter(res, cfg),
	}, nil
}

// Config returns the policy the stemmer was built with.
func (s *Stemmer) Config() Config {
	return s.cfg
}

// StemWord returns the best-ranked stem of word. When no candidate is
// valid the result has the normalized word as its root and no affixes.
func (s *Stemmer) StemWord(word string) (Stem, error) {
	stems, w, err := s.candidates(word)
	if err != nil {
		return Stem{}, err
	}
	if len(stems) == 0 {
		return Stem{Word: w, Root: w}, nil
	}
	return stems[0], nil
}

// Candidates returns every valid candidate of word, best first. The slice
// is empty, not an error, when nothing is valid.
func (s *Stemmer) Candidates(word string) ([]Stem, error) {
	stems, _, err := s.candidates(word)
	return stems, err
}

func (s *Stemmer) candidates(word string) ([]Stem, string, error) {
	w := tlcase.Normalize(word)
	if w == "" || strings.IndexFunc(w, unicode.IsLetter) < 0 {
		return nil, w, errors.Wrapf(ErrInvalidInput, "%q", word)
	}
	c := newCollector(s.res, s.cfg.Limits)
	stems := s.filter.keep(c.collect(w))
	rank(stems, s.cfg.Ranking)
	return distinct(stems), w, nil
}

// StemText tokenizes text and stems every word, in input order. Numbers
// pass through as their own roots; punctuation and symbols are dropped
// unless KeepPunctuation is set, in which case they pass through too.
func (s *Stemmer) StemText(text string) ([]Stem, error) {
	var words []string
	var stemmed []bool
	for _, tok := range tokenizer.WordTokens(text) {
		switch tok.Type {
		case tokenizer.Word:
			words = append(words, tok.Text)
			stemmed = append(stemmed, true)
		case tokenizer.Number:
			words = append(words, tok.Text)
			stemmed = append(stemmed, false)
		case tokenizer.Punctuation, tokenizer.Symbol:
			if s.cfg.KeepPunctuation {
				words = append(words, tok.Text)
				stemmed = append(stemmed, false)
			}
		}
	}

	out := make([]Stem, len(words))
	var g errgroup.Group
	g.SetLimit(s.cfg.workers())
	for i, w := range words {
		if !stemmed[i] {
			out[i] = Stem{Word: w, Root: w}
			continue
		}
		g.Go(func() error {
			st, err := s.StemWord(w)
			if err != nil {
				return err
			}
			out[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	glog.V(2).Infof("stemmer: stemmed %d tokens", len(out))
	return out, nil
}

var defaultStemmer = sync.OnceValues(func() (*Stemmer, error) {
	res, err := Load(data.FS)
	if err != nil {
		return nil, errors.Wrap(err, "loading embedded resources")
	}
	return New(res, DefaultConfig())
})

// Default returns the stemmer built from the embedded resources and
// DefaultConfig. It is built on first use.
func Default() (*Stemmer, error) {
	return defaultStemmer()
}

// StemWord stems word with the default stemmer.
func StemWord(word string) (Stem, error) {
	s, err := Default()
	if err != nil {
		return Stem{}, err
	}
	return s.StemWord(word)
}

// StemText stems every word of text with the default stemmer.
func StemText(text string) ([]Stem, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.StemText(text)
}

// Candidates lists the valid candidates of word with the default stemmer.
func Candidates(word string) ([]Stem, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Candidates(word)
}
