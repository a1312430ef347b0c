package stemmer

import (
	"bufio"
	"bytes"
	"io/fs"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/tl-nlp/tglstem/internal/tlcase"
)

// Resource file names inside the collection.
const (
	PrefixFile         = "prefixes.txt"
	InfixFile          = "infixes.txt"
	SuffixFile         = "suffixes.txt"
	CircumfixFile      = "circumfixes.txt"
	ContractionFile    = "contractions.txt"
	TransformationFile = "transformations.txt"
	FunctionWordFile   = "function_words.txt"
	WordFile           = "words.txt"
)

// Resources is the immutable linguistic data a Stemmer works from.
type Resources struct {
	Affixes       *AffixTable
	Rules         *RuleSet
	Dictionary    *Dictionary
	FunctionWords []string
}

// NewResources bundles already-built parts. Nil parts are rejected.
func NewResources(affixes *AffixTable, rules *RuleSet, dict *Dictionary, functionWords []string) (*Resources, error) {
	switch {
	case affixes == nil:
		return nil, errors.New("nil affix table")
	case rules == nil:
		return nil, errors.New("nil rule set")
	case dict == nil:
		return nil, errors.New("nil dictionary")
	}
	return &Resources{
		Affixes:       affixes,
		Rules:         rules,
		Dictionary:    dict,
		FunctionWords: append([]string(nil), functionWords...),
	}, nil
}

// line is one non-comment resource line split into fields.
type line struct {
	no     int
	fields []string
}

// Load reads the resource collection from fsys. Every file must exist
// and every table except the function word list must have entries.
// Errors name the file and line.
func Load(fsys fs.FS) (*Resources, error) {
	var rules []AffixRule
	for _, f := range []struct {
		name string
		kind AffixKind
	}{
		{PrefixFile, Prefix},
		{InfixFile, Infix},
		{SuffixFile, Suffix},
		{CircumfixFile, Circumfix},
	} {
		lines, err := readLines(fsys, f.name, true)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			r, err := parseAffix(l.fields, f.kind)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d", f.name, l.no)
			}
			rules = append(rules, r)
		}
	}

	lines, err := readLines(fsys, ContractionFile, true)
	if err != nil {
		return nil, err
	}
	var contractions []ContractionRule
	for _, l := range lines {
		c, err := parseContraction(l.fields)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", ContractionFile, l.no)
		}
		contractions = append(contractions, c)
	}
	affixes, err := NewAffixTable(rules, contractions, DefaultConstraints())
	if err != nil {
		return nil, errors.Wrap(err, "building affix table")
	}

	lines, err = readLines(fsys, TransformationFile, true)
	if err != nil {
		return nil, err
	}
	var trules []TransformationRule
	for _, l := range lines {
		r, err := parseTransformation(l.fields)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", TransformationFile, l.no)
		}
		trules = append(trules, r)
	}
	ruleSet, err := NewRuleSet(trules)
	if err != nil {
		return nil, errors.Wrap(err, TransformationFile)
	}

	functionWords, err := readWords(fsys, FunctionWordFile, false)
	if err != nil {
		return nil, err
	}
	words, err := readWords(fsys, WordFile, true)
	if err != nil {
		return nil, err
	}
	dict := NewDictionary(words)

	glog.V(1).Infof("stemmer: loaded %d prefixes, %d infixes, %d suffixes, %d circumfixes, %d contractions, %d rules, %d roots",
		len(affixes.byKind[Prefix]), len(affixes.byKind[Infix]), len(affixes.byKind[Suffix]),
		len(affixes.byKind[Circumfix]), len(contractions), ruleSet.Len(), dict.Len())

	return NewResources(affixes, ruleSet, dict, functionWords)
}

// readLines returns the non-blank, non-comment lines of name, split on
// whitespace. required makes an empty file an error.
func readLines(fsys fs.FS, name string, required bool) ([]line, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	var out []line
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for no := 1; sc.Scan(); no++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		out = append(out, line{no: no, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if required && len(out) == 0 {
		return nil, errors.Errorf("%s: no entries", name)
	}
	return out, nil
}

// readWords reads a one-word-per-line list, normalizing every entry.
func readWords(fsys fs.FS, name string, required bool) ([]string, error) {
	lines, err := readLines(fsys, name, required)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l.fields) != 1 {
			return nil, errors.Errorf("%s:%d: want one word, got %d fields", name, l.no, len(l.fields))
		}
		words = append(words, tlcase.Normalize(l.fields[0]))
	}
	return words, nil
}

func parseAffix(fields []string, kind AffixKind) (AffixRule, error) {
	r := AffixRule{Pattern: tlcase.Normalize(fields[0]), Kind: kind}
	for _, f := range fields[1:] {
		switch f {
		case "repeat":
			r.Repeatable = true
		default:
			return AffixRule{}, errors.Errorf("unknown flag %q", f)
		}
	}
	return r, nil
}

func parseContraction(fields []string) (ContractionRule, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return ContractionRule{}, errors.Errorf("want marker and context, got %d fields", len(fields))
	}
	c := ContractionRule{Marker: tlcase.Normalize(fields[0]), Context: fields[1]}
	if len(fields) == 3 {
		if fields[2] != "redup" {
			return ContractionRule{}, errors.Errorf("unknown flag %q", fields[2])
		}
		c.RedupOnly = true
	}
	return c, nil
}

// optional maps the "-" placeholder to the empty string.
func optional(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func parseTransformation(fields []string) (TransformationRule, error) {
	if len(fields) < 7 || len(fields) > 8 {
		return TransformationRule{}, errors.Errorf("want 7 or 8 fields, got %d", len(fields))
	}
	r := TransformationRule{
		Name:       fields[0],
		Surface:    optional(fields[5]),
		Underlying: optional(fields[6]),
	}
	if err := r.Kind.UnmarshalText([]byte(fields[1])); err != nil {
		return TransformationRule{}, err
	}
	switch fields[2] {
	case "prefix":
		r.Boundary = BoundaryPrefix
	case "suffix":
		r.Boundary = BoundarySuffix
	case "redup":
		r.Boundary = BoundaryRedup
	case "any":
		r.Boundary = BoundaryAny
	default:
		return TransformationRule{}, errors.Errorf("unknown boundary %q", fields[2])
	}
	switch fields[3] {
	case "replace":
		r.Op = OpReplace
	case "insert":
		r.Op = OpInsert
	case "swap":
		r.Op = OpSwap
	default:
		return TransformationRule{}, errors.Errorf("unknown op %q", fields[3])
	}
	switch fields[4] {
	case "start":
		r.Anchor = AnchorStart
	case "end":
		r.Anchor = AnchorEnd
	case "penult":
		r.Anchor = AnchorPenult
	default:
		return TransformationRule{}, errors.Errorf("unknown anchor %q", fields[4])
	}
	if len(fields) == 8 {
		for _, cond := range strings.Split(fields[7], ",") {
			switch {
			case cond == "affix-vowel":
				r.AffixVowel = true
			case cond == "next-vowel":
				r.NextVowel = true
			case cond == "cluster":
				r.Cluster = true
			case cond == "independent":
				r.Independent = true
			case strings.HasPrefix(cond, "affix="):
				r.AffixEnds = strings.Split(strings.TrimPrefix(cond, "affix="), "|")
			default:
				return TransformationRule{}, errors.Errorf("unknown condition %q", cond)
			}
		}
	}
	return r, nil
}
