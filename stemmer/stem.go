package stemmer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// StepKind classifies one reversible operation in a derivation.
type StepKind int

const (
	StepPrefix         StepKind = iota // prefix removed from the left edge
	StepInfix                          // infix removed after the initial consonant cluster
	StepSuffix                         // suffix removed from the right edge
	StepCircumfix                      // prefix+suffix pair removed as one unit
	StepContraction                    // contraction marker split from the right edge
	StepReduplication                  // repeated segment removed from the left edge
	StepTransformation                 // spelling alternation reversed
)

var stepKindNames = [...]string{
	StepPrefix:         "prefix",
	StepInfix:          "infix",
	StepSuffix:         "suffix",
	StepCircumfix:      "circumfix",
	StepContraction:    "contraction",
	StepReduplication:  "reduplication",
	StepTransformation: "transformation",
}

// String returns the name of the step kind.
func (k StepKind) String() string {
	if k >= 0 && int(k) < len(stepKindNames) {
		return stepKindNames[k]
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// MarshalText encodes the step kind by name.
func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a step kind name.
func (k *StepKind) UnmarshalText(b []byte) error {
	for i, name := range stepKindNames {
		if name == string(b) {
			*k = StepKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown step kind: %q", b)
}

// RedupKind distinguishes full from partial reduplication.
type RedupKind int

const (
	FullRedup    RedupKind = iota // the whole stem repeats (ano-ano, gabigabi, panga-pangako)
	PartialRedup                  // the first syllable repeats (bibili, aalis, pangingisda)
)

// String returns "full" or "partial".
func (k RedupKind) String() string {
	switch k {
	case FullRedup:
		return "full"
	case PartialRedup:
		return "partial"
	default:
		return fmt.Sprintf("RedupKind(%d)", int(k))
	}
}

// MarshalText encodes the reduplication kind by name.
func (k RedupKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "full" or "partial".
func (k *RedupKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "full":
		*k = FullRedup
	case "partial":
		*k = PartialRedup
	default:
		return fmt.Errorf("unknown reduplication kind: %q", b)
	}
	return nil
}

// Reduplication records a removed repeated segment.
// The segment always sits on the left: the word is Segment+Separator+rest.
type Reduplication struct {
	Kind        RedupKind `json:"kind" yaml:"kind"`
	Segment     string    `json:"segment" yaml:"segment"`                             // first copy as written
	Separator   string    `json:"separator,omitempty" yaml:"separator,omitempty"`     // "-" for hyphen-joined copies
	Removed     int       `json:"removed" yaml:"removed"`                             // runes in Segment
	Contraction string    `json:"contraction,omitempty" yaml:"contraction,omitempty"` // marker on the first copy (iba't-iba)
	Alternation string    `json:"alternation,omitempty" yaml:"alternation,omitempty"` // rule relating the copies (anu-ano)
}

// Transformation records one reversed spelling alternation.
// At rune offset Pos the underlying form holds Underlying where the
// surface form held Surface.
type Transformation struct {
	Rule       string        `json:"rule" yaml:"rule"`
	Kind       TransformKind `json:"kind" yaml:"kind"`
	Pos        int           `json:"pos" yaml:"pos"`
	Surface    string        `json:"surface" yaml:"surface"`
	Underlying string        `json:"underlying" yaml:"underlying"`
}

// Step is one operation of a derivation, in removal order.
type Step struct {
	Kind           StepKind        `json:"kind" yaml:"kind"`
	Surface        string          `json:"surface,omitempty" yaml:"surface,omitempty"` // removed text; circumfix head
	Tail           string          `json:"tail,omitempty" yaml:"tail,omitempty"`       // circumfix tail
	Pos            int             `json:"pos,omitempty" yaml:"pos,omitempty"`         // rune offset of an infix
	Hyphen         bool            `json:"hyphen,omitempty" yaml:"hyphen,omitempty"`   // prefix was written with a trailing '-'
	Reduplication  *Reduplication  `json:"reduplication,omitempty" yaml:"reduplication,omitempty"`
	Transformation *Transformation `json:"transformation,omitempty" yaml:"transformation,omitempty"`
}

// restore re-applies the step to rs, returning the form it was derived
// from. It fails when the step does not fit rs.
func (st Step) restore(rs []rune) ([]rune, error) {
	switch st.Kind {
	case StepPrefix:
		head := st.Surface
		if st.Hyphen {
			head += "-"
		}
		return joinRunes([]rune(head), rs), nil
	case StepInfix:
		if st.Pos > len(rs) {
			return nil, errors.Errorf("infix %q at %d past the end of %q", st.Surface, st.Pos, string(rs))
		}
		return joinRunes(rs[:st.Pos], []rune(st.Surface), rs[st.Pos:]), nil
	case StepSuffix, StepContraction:
		return joinRunes(rs, []rune(st.Surface)), nil
	case StepCircumfix:
		return joinRunes([]rune(st.Surface), rs, []rune(st.Tail)), nil
	case StepReduplication:
		r := st.Reduplication
		if r == nil {
			return nil, errors.New("reduplication step without a record")
		}
		return joinRunes([]rune(r.Segment+r.Separator), rs), nil
	case StepTransformation:
		t := st.Transformation
		if t == nil {
			return nil, errors.New("transformation step without a record")
		}
		und := []rune(t.Underlying)
		if t.Pos < 0 || t.Pos+len(und) > len(rs) || !hasAt(rs, t.Pos, und) {
			return nil, errors.Errorf("%s: %q not at %d in %q", t.Rule, t.Underlying, t.Pos, string(rs))
		}
		return joinRunes(rs[:t.Pos], []rune(t.Surface), rs[t.Pos+len(und):]), nil
	}
	return nil, errors.Errorf("unknown step kind %d", int(st.Kind))
}

// Score holds the counters the ranker orders candidates by.
type Score struct {
	Removed         int `json:"removed" yaml:"removed"`                 // runes removed by affixes and reduplication
	Transformations int `json:"transformations" yaml:"transformations"` // reversed alternations
	Contractions    int `json:"contractions" yaml:"contractions"`       // split contraction markers
}

// Stem is the result for one word: a root plus the derivation that
// connects it to the word. Optional affixes are empty strings when absent.
//
// Prefix joins the removed prefix layers and circumfix heads, outermost
// first. Letters taken out by an infix are not part of it, so an infix
// inside a prefix leaves a gap: pinakamahusay read as p-in-akama plus
// husay has Prefix "pakama" and Infix "in". Steps holds the exact layout.
type Stem struct {
	Word            string           `json:"word" yaml:"word"` // normalized input
	Root            string           `json:"root" yaml:"root"`
	Prefix          string           `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Infix           string           `json:"infix,omitempty" yaml:"infix,omitempty"`
	Suffix          string           `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Reduplication   *Reduplication   `json:"reduplication,omitempty" yaml:"reduplication,omitempty"`
	Transformations []Transformation `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	Contractions    []string         `json:"contractions,omitempty" yaml:"contractions,omitempty"`
	Steps           []Step           `json:"steps,omitempty" yaml:"steps,omitempty"`
	Score           Score            `json:"score" yaml:"score"`
}

// String returns a debug representation, e.g. sulat[prefix:nag].
func (s Stem) String() string {
	var parts []string
	if s.Prefix != "" {
		parts = append(parts, "prefix:"+s.Prefix)
	}
	if s.Infix != "" {
		parts = append(parts, "infix:"+s.Infix)
	}
	if s.Suffix != "" {
		parts = append(parts, "suffix:"+s.Suffix)
	}
	if r := s.Reduplication; r != nil {
		parts = append(parts, r.Kind.String()+":"+r.Segment)
	}
	for _, t := range s.Transformations {
		parts = append(parts, t.Kind.String()+":"+t.Rule)
	}
	for _, c := range s.Contractions {
		parts = append(parts, "contraction:"+c)
	}
	if len(parts) == 0 {
		return s.Root
	}
	return s.Root + "[" + strings.Join(parts, "|") + "]"
}

// Replay replays the derivation on the root and returns the word it came
// from. It fails when a step does not fit the form it is applied to.
func (s Stem) Replay() (string, error) {
	rs := []rune(s.Root)
	for i := len(s.Steps) - 1; i >= 0; i-- {
		var err error
		if rs, err = s.Steps[i].restore(rs); err != nil {
			return "", errors.Wrapf(err, "step %d", i)
		}
	}
	return string(rs), nil
}

// Reconstruct is Replay without the error. A derivation that does not
// replay gives the empty string, so it never equals Word. For every
// candidate the result equals Word.
func (s Stem) Reconstruct() string {
	word, err := s.Replay()
	if err != nil {
		return ""
	}
	return word
}

// newStem builds the public record for a search candidate.
func newStem(word string, c *candidate) Stem {
	s := Stem{
		Word:  word,
		Root:  string(c.rem),
		Steps: c.steps,
	}
	var suffixes []string
	for _, st := range c.steps {
		switch st.Kind {
		case StepPrefix:
			s.Prefix += st.Surface
			s.Score.Removed += utf8.RuneCountInString(st.Surface)
		case StepInfix:
			s.Infix += st.Surface
			s.Score.Removed += utf8.RuneCountInString(st.Surface)
		case StepSuffix:
			suffixes = append(suffixes, st.Surface)
			s.Score.Removed += utf8.RuneCountInString(st.Surface)
		case StepCircumfix:
			s.Prefix += st.Surface
			suffixes = append(suffixes, st.Tail)
			s.Score.Removed += utf8.RuneCountInString(st.Surface) + utf8.RuneCountInString(st.Tail)
		case StepContraction:
			s.Contractions = append(s.Contractions, st.Surface)
			s.Score.Contractions++
		case StepReduplication:
			r := *st.Reduplication
			s.Reduplication = &r
			s.Score.Removed += r.Removed
			if r.Contraction != "" {
				s.Contractions = append(s.Contractions, r.Contraction)
				s.Score.Contractions++
			}
			if r.Alternation != "" {
				s.Score.Transformations++
			}
		case StepTransformation:
			s.Transformations = append(s.Transformations, *st.Transformation)
			s.Score.Transformations++
		}
	}
	// Suffixes are removed outermost first; surface order is the reverse.
	for i := len(suffixes) - 1; i >= 0; i-- {
		s.Suffix += suffixes[i]
	}
	return s
}

// identityKey identifies a candidate by its root and the per-kind sequence
// of operations. The interleaving of different kinds is not part of the
// identity, so prefix-then-suffix and suffix-then-prefix collapse.
func identityKey(root []rune, steps []Step) string {
	var b strings.Builder
	b.WriteString(string(root))
	for kind := StepPrefix; kind <= StepTransformation; kind++ {
		b.WriteByte('|')
		for _, st := range steps {
			if st.Kind != kind {
				continue
			}
			writeStepKey(&b, st)
		}
	}
	return b.String()
}

func writeStepKey(b *strings.Builder, st Step) {
	b.WriteByte('(')
	b.WriteString(st.Surface)
	if st.Tail != "" {
		b.WriteByte('+')
		b.WriteString(st.Tail)
	}
	if st.Hyphen {
		b.WriteByte('-')
	}
	if st.Kind == StepInfix {
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(st.Pos))
	}
	if r := st.Reduplication; r != nil {
		fmt.Fprintf(b, "%s:%s%s:%s:%s", r.Kind, r.Segment, r.Separator, r.Contraction, r.Alternation)
	}
	if t := st.Transformation; t != nil {
		fmt.Fprintf(b, "%s@%d:%s>%s", t.Rule, t.Pos, t.Surface, t.Underlying)
	}
	b.WriteByte(')')
}

// joinRunes concatenates rune slices into a fresh slice.
func joinRunes(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
