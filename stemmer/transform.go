package stemmer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TransformKind classifies a spelling alternation.
type TransformKind int

const (
	PhonemeChange TransformKind = iota // d/r, o/u, e/i
	Assimilation                       // nasal assimilation at a prefix boundary
	VowelLoss                          // vowel dropped before a suffix (bukas -> buksan)
	Metathesis                         // consonants swapped before a suffix (tanim -> tamnin)
)

var transformKindNames = [...]string{
	PhonemeChange: "phoneme-change",
	Assimilation:  "assimilation",
	VowelLoss:     "vowel-loss",
	Metathesis:    "metathesis",
}

// String returns the hyphenated name of the kind.
func (k TransformKind) String() string {
	if k >= 0 && int(k) < len(transformKindNames) {
		return transformKindNames[k]
	}
	return fmt.Sprintf("TransformKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k TransformKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *TransformKind) UnmarshalText(b []byte) error {
	for i, name := range transformKindNames {
		if name == string(b) {
			*k = TransformKind(i)
			return nil
		}
	}
	return errors.Errorf("unknown transformation kind %q", b)
}

// Boundary says which edge context a rule needs.
type Boundary int

const (
	BoundaryPrefix Boundary = iota // left edge after a prefix or circumfix head
	BoundarySuffix                 // right edge after a suffix or circumfix tail
	BoundaryRedup                  // first copy of a full reduplication
	BoundaryAny                    // anywhere, no affix context
)

// Op is the edit a rule reverses.
type Op int

const (
	OpReplace Op = iota // Surface was written in place of Underlying
	OpInsert            // Underlying was dropped from the surface
	OpSwap              // the last two letters were swapped
)

// Anchor fixes where in the remainder a rule looks.
type Anchor int

const (
	AnchorStart  Anchor = iota // first letters
	AnchorEnd                  // last letters
	AnchorPenult               // letters just before the final one
)

// TransformationRule reverses one spelling alternation. Rules are data:
// the engine applies them in the order they are listed.
type TransformationRule struct {
	Name       string
	Kind       TransformKind
	Boundary   Boundary
	Op         Op
	Anchor     Anchor
	Surface    string // form seen in the word; empty for OpInsert
	Underlying string // form restored in the root; empty for OpSwap

	AffixEnds  []string // boundary affix must end with one of these
	AffixVowel bool     // boundary affix must end in a vowel
	NextVowel  bool     // restored letters must be followed by a vowel
	Cluster    bool     // remainder must end in a consonant cluster
	// Independent rules fire without the affix context of their boundary.
	Independent bool
}

// reverse undoes the rule on rem. affix is the affix that created the
// boundary, empty when there is none. It returns the restored form and the
// record of the change, or ok=false when the rule does not apply.
func (r *TransformationRule) reverse(rem []rune, affix string) (out []rune, t Transformation, ok bool) {
	if !r.matchesAffix(affix) {
		return nil, t, false
	}
	if r.Cluster && !endsInCluster(rem) {
		return nil, t, false
	}
	n := len(rem)
	surf, und := []rune(r.Surface), []rune(r.Underlying)
	var pos int
	switch r.Op {
	case OpSwap:
		if n < 2 {
			return nil, t, false
		}
		pos = n - 2
		surf = []rune{rem[n-2], rem[n-1]}
		und = []rune{rem[n-1], rem[n-2]}
	default:
		switch r.Anchor {
		case AnchorStart:
			pos = 0
		case AnchorEnd:
			pos = n - len(surf)
		case AnchorPenult:
			pos = n - 1 - len(surf)
		}
		if pos < 0 || !hasAt(rem, pos, surf) {
			return nil, t, false
		}
	}
	out = joinRunes(rem[:pos], und, rem[pos+len(surf):])
	if equalRunes(out, rem) {
		return nil, t, false
	}
	if r.NextVowel {
		next := pos + len(und)
		if next >= len(out) || !isVowel(out[next]) {
			return nil, t, false
		}
	}
	return out, Transformation{
		Rule:       r.Name,
		Kind:       r.Kind,
		Pos:        pos,
		Surface:    string(surf),
		Underlying: string(und),
	}, true
}

func (r *TransformationRule) matchesAffix(affix string) bool {
	if r.AffixVowel {
		last, _ := utf8.DecodeLastRuneInString(affix)
		if !isVowel(last) {
			return false
		}
	}
	if len(r.AffixEnds) == 0 {
		return true
	}
	for _, end := range r.AffixEnds {
		if strings.HasSuffix(affix, end) {
			return true
		}
	}
	return false
}

// RuleSet is the ordered, immutable list of transformation rules.
type RuleSet struct {
	rules []TransformationRule
}

// NewRuleSet validates rules and keeps their order.
func NewRuleSet(rules []TransformationRule) (*RuleSet, error) {
	for i, r := range rules {
		if r.Name == "" {
			return nil, errors.Errorf("rule %d: missing name", i)
		}
		switch r.Op {
		case OpReplace:
			if r.Surface == "" || r.Underlying == "" {
				return nil, errors.Errorf("rule %s: replace needs surface and underlying", r.Name)
			}
		case OpInsert:
			if r.Surface != "" || r.Underlying == "" {
				return nil, errors.Errorf("rule %s: insert needs only underlying", r.Name)
			}
		case OpSwap:
			if r.Anchor != AnchorEnd {
				return nil, errors.Errorf("rule %s: swap is only supported at the end", r.Name)
			}
		default:
			return nil, errors.Errorf("rule %s: unknown op %d", r.Name, r.Op)
		}
		if r.Boundary == BoundaryRedup && r.Op == OpSwap {
			return nil, errors.Errorf("rule %s: swap cannot relate reduplicated copies", r.Name)
		}
	}
	return &RuleSet{rules: slices.Clone(rules)}, nil
}

// Rules returns a copy of the rules in order.
func (s *RuleSet) Rules() []TransformationRule {
	return slices.Clone(s.rules)
}

// Len returns the number of rules.
func (s *RuleSet) Len() int { return len(s.rules) }

func (s *RuleSet) byBoundary(b Boundary) []TransformationRule {
	var out []TransformationRule
	for _, r := range s.rules {
		if r.Boundary == b {
			out = append(out, r)
		}
	}
	return out
}

// transform expands a candidate by every applicable rule.
func (c *collector) transform(cand *candidate) {
	if cand.transforms >= c.limits.MaxTransformDepth {
		return
	}
	for i := range c.rules {
		r := &c.rules[i]
		var affix string
		switch r.Boundary {
		case BoundaryPrefix:
			affix = cand.leftCtx
		case BoundarySuffix:
			affix = cand.rightCtx
		case BoundaryAny:
		default:
			continue
		}
		if affix == "" && r.Boundary != BoundaryAny && !r.Independent {
			continue
		}
		out, t, ok := r.reverse(cand.rem, affix)
		if !ok || cand.undoesLastSwap(t) {
			continue
		}
		child := cand.child(out, Step{Kind: StepTransformation, Transformation: &t})
		child.transforms++
		if r.Boundary == BoundaryPrefix {
			child.leftLocked = true
		}
		c.push(child)
	}
}
