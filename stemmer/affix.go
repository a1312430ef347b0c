package stemmer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AffixKind is the position class of an affix.
type AffixKind int

const (
	Prefix AffixKind = iota
	Infix
	Suffix
	Circumfix
)

// String returns the lower-case name of the kind.
func (k AffixKind) String() string {
	switch k {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Suffix:
		return "suffix"
	case Circumfix:
		return "circumfix"
	default:
		return fmt.Sprintf("AffixKind(%d)", int(k))
	}
}

// AffixRule is one affix pattern. For circumfixes Pattern is "head+tail".
type AffixRule struct {
	Pattern    string
	Kind       AffixKind
	Repeatable bool // may be removed more than once on one branch

	head, tail []rune
}

// Head returns the left part of the affix: the prefix, infix or circumfix head.
func (r AffixRule) Head() string { return string(r.head) }

// Tail returns the suffix or the circumfix tail.
func (r AffixRule) Tail() string { return string(r.tail) }

// ContractionRule is a clitic marker joined to the end of a word.
type ContractionRule struct {
	Marker string
	// Context restricts the letter before the marker: "vowel",
	// "vowel-glide", or a literal letter sequence.
	Context string
	// RedupOnly markers are recognized only on the first copy of a full
	// reduplication (araw-araw as arawt-araw is not a word, but lipat-lipat is).
	RedupOnly bool

	marker []rune
}

// allows reports whether the marker may follow base.
func (c ContractionRule) allows(base []rune) bool {
	if len(base) == 0 {
		return false
	}
	last := base[len(base)-1]
	switch c.Context {
	case "vowel":
		return isVowel(last)
	case "vowel-glide":
		return isVowel(last) || isGlide(last)
	default:
		return hasSuffixRunes(base, []rune(c.Context))
	}
}

// Constraints bound the affix combinations on one search branch.
type Constraints struct {
	MaxPrefixes    int
	MaxInfixes     int
	MaxSuffixes    int
	MaxCircumfixes int
	// SuffixWithCircumfix allows a separate suffix on a branch that
	// already removed a circumfix.
	SuffixWithCircumfix bool
}

// DefaultConstraints allow stacked prefixes (pinaka+ma, nag+pa) but at most
// one of each other kind.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxPrefixes:    3,
		MaxInfixes:     1,
		MaxSuffixes:    1,
		MaxCircumfixes: 1,
	}
}

// AffixTable is the immutable set of affix and contraction rules.
type AffixTable struct {
	Constraints Constraints

	byKind       [4][]AffixRule
	contractions []ContractionRule
}

// NewAffixTable validates rules and orders each kind longest first, so
// that candidate generation is deterministic.
func NewAffixTable(rules []AffixRule, contractions []ContractionRule, c Constraints) (*AffixTable, error) {
	t := &AffixTable{Constraints: c}
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Kind < Prefix || r.Kind > Circumfix {
			return nil, errors.Errorf("affix %q: unknown kind %d", r.Pattern, r.Kind)
		}
		id := r.Kind.String() + ":" + r.Pattern
		if seen[id] {
			return nil, errors.Errorf("duplicate %s %q", r.Kind, r.Pattern)
		}
		seen[id] = true

		switch r.Kind {
		case Circumfix:
			head, tail, ok := strings.Cut(r.Pattern, "+")
			if !ok || head == "" || tail == "" {
				return nil, errors.Errorf("circumfix %q: want head+tail", r.Pattern)
			}
			r.head, r.tail = []rune(head), []rune(tail)
		case Suffix:
			if r.Pattern == "" {
				return nil, errors.New("empty suffix")
			}
			r.tail = []rune(r.Pattern)
		default:
			if r.Pattern == "" {
				return nil, errors.Errorf("empty %s", r.Kind)
			}
			r.head = []rune(r.Pattern)
		}
		t.byKind[r.Kind] = append(t.byKind[r.Kind], r)
	}
	for k := range t.byKind {
		slices.SortFunc(t.byKind[k], func(a, b AffixRule) int {
			la := utf8.RuneCountInString(a.Pattern)
			lb := utf8.RuneCountInString(b.Pattern)
			if la != lb {
				return cmp.Compare(lb, la)
			}
			return strings.Compare(a.Pattern, b.Pattern)
		})
	}

	for _, c := range contractions {
		if c.Marker == "" {
			return nil, errors.New("empty contraction marker")
		}
		if c.Context == "" {
			return nil, errors.Errorf("contraction %q: missing context", c.Marker)
		}
		c.marker = []rune(c.Marker)
		t.contractions = append(t.contractions, c)
	}
	slices.SortStableFunc(t.contractions, func(a, b ContractionRule) int {
		return cmp.Compare(len(b.marker), len(a.marker))
	})
	return t, nil
}

// Rules returns the rules of one kind, longest pattern first.
func (t *AffixTable) Rules(kind AffixKind) []AffixRule {
	if kind < Prefix || kind > Circumfix {
		return nil
	}
	return slices.Clone(t.byKind[kind])
}

// Contractions returns the contraction rules, longest marker first.
func (t *AffixTable) Contractions() []ContractionRule {
	return slices.Clone(t.contractions)
}

// Affix stripping. Each method expands one candidate by a single removal
// and hands the children to the collector.

func (c *collector) stripPrefixes(cand *candidate) {
	cons := c.affixes.Constraints
	if cand.leftLocked || cand.prefixes >= cons.MaxPrefixes || cand.layers() >= c.limits.MaxAffixLayers {
		return
	}
	for _, r := range c.affixes.byKind[Prefix] {
		if len(cand.rem) <= len(r.head) || !hasPrefixRunes(cand.rem, r.head) {
			continue
		}
		if !r.Repeatable && cand.used(StepPrefix, r.Pattern) {
			continue
		}
		rest := cand.rem[len(r.head):]
		hyphen := rest[0] == '-'
		if hyphen {
			rest = rest[1:]
		}
		child := cand.child(rest, Step{Kind: StepPrefix, Surface: r.Pattern, Hyphen: hyphen})
		child.prefixes++
		child.leftCtx = r.Pattern
		c.push(child)
	}
}

func (c *collector) stripCircumfixes(cand *candidate) {
	cons := c.affixes.Constraints
	if cand.leftLocked || cand.circumfixes >= cons.MaxCircumfixes || cand.layers() >= c.limits.MaxAffixLayers {
		return
	}
	if cand.suffixes > 0 && !cons.SuffixWithCircumfix {
		return
	}
	for _, r := range c.affixes.byKind[Circumfix] {
		n := len(cand.rem)
		if n <= len(r.head)+len(r.tail) {
			continue
		}
		if !hasPrefixRunes(cand.rem, r.head) || !hasSuffixRunes(cand.rem, r.tail) {
			continue
		}
		rest := cand.rem[len(r.head) : n-len(r.tail)]
		child := cand.child(rest, Step{Kind: StepCircumfix, Surface: r.Head(), Tail: r.Tail()})
		child.circumfixes++
		child.leftCtx = r.Head()
		child.rightCtx = r.Tail()
		c.push(child)
	}
}

// stripInfixes removes an infix placed right after the initial consonant
// cluster (b-in-asa, gr-um-aduate) or at the start of a vowel-initial
// word (um-alis). The infix must be followed by a vowel.
func (c *collector) stripInfixes(cand *candidate) {
	cons := c.affixes.Constraints
	if cand.leftLocked || cand.infixes >= cons.MaxInfixes || cand.layers() >= c.limits.MaxAffixLayers {
		return
	}
	pos := onset(cand.rem)
	for _, r := range c.affixes.byKind[Infix] {
		end := pos + len(r.head)
		if end >= len(cand.rem) || !hasAt(cand.rem, pos, r.head) || !isVowel(cand.rem[end]) {
			continue
		}
		rest := joinRunes(cand.rem[:pos], cand.rem[end:])
		child := cand.child(rest, Step{Kind: StepInfix, Surface: r.Pattern, Pos: pos})
		child.infixes++
		child.leftCtx = ""
		c.push(child)
	}
}

func (c *collector) stripSuffixes(cand *candidate) {
	cons := c.affixes.Constraints
	if cand.suffixes >= cons.MaxSuffixes || cand.layers() >= c.limits.MaxAffixLayers {
		return
	}
	if cand.circumfixes > 0 && !cons.SuffixWithCircumfix {
		return
	}
	for _, r := range c.affixes.byKind[Suffix] {
		n := len(cand.rem)
		if n <= len(r.tail) || !hasSuffixRunes(cand.rem, r.tail) {
			continue
		}
		child := cand.child(cand.rem[:n-len(r.tail)], Step{Kind: StepSuffix, Surface: r.Pattern})
		child.suffixes++
		child.rightCtx = r.Pattern
		c.push(child)
	}
}

// splitContractions removes a trailing clitic (ibigay't, pinakamahusay't).
// A marker is only split before anything else was taken from the right edge.
func (c *collector) splitContractions(cand *candidate) {
	if cand.contractions > 0 || cand.suffixes > 0 || cand.circumfixes > 0 {
		return
	}
	for _, r := range c.affixes.contractions {
		if r.RedupOnly {
			continue
		}
		n := len(cand.rem)
		if n <= len(r.marker) || !hasSuffixRunes(cand.rem, r.marker) {
			continue
		}
		base := cand.rem[:n-len(r.marker)]
		if !r.allows(base) {
			continue
		}
		child := cand.child(base, Step{Kind: StepContraction, Surface: r.Marker})
		child.contractions++
		c.push(child)
	}
}
