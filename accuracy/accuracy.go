// Package accuracy measures a stemmer against a labeled corpus of
// inflected words and their expected roots.
//
// The corpus is CSV with a header row naming at least the columns
// "inflection" and "stem"; other columns are ignored. A wrong root is
// classified as understemming when it is longer than the expected root and
// as overstemming otherwise, and the rune difference is summed per class.
package accuracy

import (
	"context"
	"encoding/csv"
	"io"
	"runtime"
	"strconv"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tl-nlp/tglstem/internal/tlcase"
	"github.com/tl-nlp/tglstem/stemmer"
)

// Stemmer is the part of *stemmer.Stemmer the benchmark needs.
type Stemmer interface {
	StemWord(word string) (stemmer.Stem, error)
}

// Example is one labeled corpus row.
type Example struct {
	Line       int    `json:"line" yaml:"line"`
	Inflection string `json:"inflection" yaml:"inflection"`
	Stem       string `json:"stem" yaml:"stem"`
}

// Outcome is the stemmer's answer for one example.
type Outcome struct {
	Example
	Attempt string `json:"attempt" yaml:"attempt"`
	Correct bool   `json:"correct" yaml:"correct"`
	// InDictionary reports whether the expected root is a known root. It
	// is only set for incorrect outcomes; a false value there points at a
	// dictionary gap rather than a stripping error.
	InDictionary bool `json:"in_dictionary,omitempty" yaml:"in_dictionary,omitempty"`
}

// Report aggregates the outcomes of one run.
type Report struct {
	Total              int     `json:"total" yaml:"total"`
	Correct            int     `json:"correct" yaml:"correct"`
	Incorrect          int     `json:"incorrect" yaml:"incorrect"`
	Accuracy           float64 `json:"accuracy" yaml:"accuracy"`
	UnderstemmingTotal int     `json:"understemming_total" yaml:"understemming_total"`
	OverstemmingTotal  int     `json:"overstemming_total" yaml:"overstemming_total"`
	UnderstemmingAvg   float64 `json:"understemming_avg" yaml:"understemming_avg"`
	OverstemmingAvg    float64 `json:"overstemming_avg" yaml:"overstemming_avg"`

	Outcomes []Outcome `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
}

// ReadExamples parses a labeled CSV corpus.
func ReadExamples(r io.Reader) ([]Example, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("accuracy: empty corpus")
	}
	if err != nil {
		return nil, errors.Wrap(err, "accuracy: reading header")
	}
	inflCol, stemCol := -1, -1
	for i, name := range header {
		switch tlcase.Normalize(name) {
		case "inflection":
			inflCol = i
		case "stem":
			stemCol = i
		}
	}
	if inflCol < 0 || stemCol < 0 {
		return nil, errors.Errorf("accuracy: header %q lacks inflection and stem columns", header)
	}

	var out []Example
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "accuracy: reading corpus")
		}
		line, _ := cr.FieldPos(0)
		if inflCol >= len(rec) || stemCol >= len(rec) {
			return nil, errors.Errorf("accuracy: line %d: want %d fields, got %d", line, max(inflCol, stemCol)+1, len(rec))
		}
		ex := Example{Line: line, Inflection: rec[inflCol], Stem: tlcase.Normalize(rec[stemCol])}
		if ex.Inflection == "" || ex.Stem == "" {
			return nil, errors.Errorf("accuracy: line %d: empty inflection or stem", line)
		}
		out = append(out, ex)
	}
	return out, nil
}

// Options tune a run.
type Options struct {
	// Dictionary, when set, fills Outcome.InDictionary.
	Dictionary *stemmer.Dictionary
	// Workers bounds the goroutines used. Zero means GOMAXPROCS.
	Workers int
	// KeepOutcomes stores every outcome in the report.
	KeepOutcomes bool
}

// Evaluate stems every example and scores the answers. A word the stemmer
// rejects as invalid input is scored as an empty attempt; any other error
// aborts the run.
func Evaluate(ctx context.Context, s Stemmer, examples []Example, opts Options) (*Report, error) {
	outcomes := make([]Outcome, len(examples))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ex := range examples {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := s.StemWord(ex.Inflection)
			switch {
			case errors.Is(err, stemmer.ErrInvalidInput):
			case err != nil:
				return errors.Wrapf(err, "line %d", ex.Line)
			}
			o := Outcome{Example: ex, Attempt: st.Root, Correct: st.Root == ex.Stem}
			if !o.Correct {
				o.InDictionary = opts.Dictionary.Contains(ex.Stem)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := summarize(outcomes)
	if opts.KeepOutcomes {
		r.Outcomes = outcomes
	}
	glog.V(1).Infof("accuracy: %d/%d correct (%.4f)", r.Correct, r.Total, r.Accuracy)
	return r, nil
}

func summarize(outcomes []Outcome) *Report {
	r := &Report{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Correct {
			r.Correct++
			continue
		}
		r.Incorrect++
		got, want := utf8.RuneCountInString(o.Attempt), utf8.RuneCountInString(o.Stem)
		if got > want {
			r.UnderstemmingTotal += got - want
		} else {
			r.OverstemmingTotal += want - got
		}
	}
	if r.Total > 0 {
		n := float64(r.Total)
		r.Accuracy = float64(r.Correct) / n
		r.UnderstemmingAvg = float64(r.UnderstemmingTotal) / n
		r.OverstemmingAvg = float64(r.OverstemmingTotal) / n
	}
	return r
}

// WriteOutcomes writes the kept outcomes as CSV. With correct set only the
// correct ones are written, otherwise only the incorrect ones.
func (r *Report) WriteOutcomes(w io.Writer, correct bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"line", "inflection", "stem", "attempt", "in_dictionary"}); err != nil {
		return errors.Wrap(err, "accuracy: writing header")
	}
	for _, o := range r.Outcomes {
		if o.Correct != correct {
			continue
		}
		rec := []string{strconv.Itoa(o.Line), o.Inflection, o.Stem, o.Attempt, strconv.FormatBool(o.InDictionary)}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "accuracy: writing outcome")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "accuracy: flushing outcomes")
}
