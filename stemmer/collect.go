package stemmer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golang/glog"
)

// candidate is one search branch: the remainder still to be analyzed and
// the operations that produced it.
type candidate struct {
	rem   []rune
	steps []Step

	prefixes, infixes, suffixes, circumfixes int
	contractions, transforms                int
	redup                                   bool

	// leftLocked is set once a prefix-side rule has rewritten the left
	// edge. The restored letters belong to the root, so nothing more may
	// be removed from that edge.
	leftLocked bool

	// leftCtx is the affix at the current left edge, rightCtx the one at
	// the right edge. Transformation rules read them as boundary context.
	leftCtx, rightCtx string
}

func (c *candidate) layers() int {
	return c.prefixes + c.infixes + c.suffixes + c.circumfixes
}

// child returns a copy of c with rem replaced and st appended.
func (c *candidate) child(rem []rune, st Step) *candidate {
	next := *c
	next.rem = slices.Clone(rem)
	next.steps = append(slices.Clip(c.steps), st)
	return &next
}

// used reports whether an affix of the given kind and surface is already
// on the branch.
func (c *candidate) used(kind StepKind, surface string) bool {
	for _, st := range c.steps {
		if st.Kind == kind && st.Surface == surface {
			return true
		}
	}
	return false
}

// undoesLastSwap reports whether t is a swap that reverts the previous step.
func (c *candidate) undoesLastSwap(t Transformation) bool {
	if len(c.steps) == 0 {
		return false
	}
	last := c.steps[len(c.steps)-1].Transformation
	return last != nil && last.Rule == t.Rule && last.Pos == t.Pos && last.Surface == t.Underlying
}

// collector runs a breadth-first search over removal operations. Every
// state reached is a candidate; the filter decides which are valid.
// Breadth-first order means the shortest derivation of a subproblem is the
// one kept.
// A collector lives for one call and is never shared.
type collector struct {
	affixes    *AffixTable
	rules      []TransformationRule // prefix, suffix and unanchored rules
	redupRules []TransformationRule // rules relating reduplicated copies
	limits     Limits

	seen   map[string]struct{}
	queue  []*candidate
	capped bool
}

func newCollector(res *Resources, limits Limits) *collector {
	c := &collector{
		affixes:    res.Affixes,
		redupRules: res.Rules.byBoundary(BoundaryRedup),
		limits:     limits,
		seen:       make(map[string]struct{}),
	}
	for _, r := range res.Rules.rules {
		if r.Boundary != BoundaryRedup {
			c.rules = append(c.rules, r)
		}
	}
	return c
}

// stateKey identifies the subproblem cand stands for: two branches with
// the same key expand into the same subtree, so only the first is kept.
func (c *candidate) stateKey() string {
	var b strings.Builder
	b.WriteString(string(c.rem))
	fmt.Fprintf(&b, "|%d.%d.%d.%d.%d.%d.%t.%t|%s|%s|",
		c.prefixes, c.infixes, c.suffixes, c.circumfixes, c.contractions, c.transforms, c.redup,
		c.leftLocked, c.leftCtx, c.rightCtx)
	var used []string
	for _, st := range c.steps {
		if st.Kind == StepPrefix {
			used = append(used, st.Surface)
		}
	}
	slices.Sort(used)
	b.WriteString(strings.Join(used, ","))
	if n := len(c.steps); n > 0 {
		if t := c.steps[n-1].Transformation; t != nil && t.Kind == Metathesis {
			fmt.Fprintf(&b, "|swap@%d", t.Pos)
		}
	}
	return b.String()
}

// push records cand unless it is too short, its subproblem was already
// reached, or the candidate budget is spent.
func (c *collector) push(cand *candidate) {
	if len(cand.rem) < c.limits.MinRootLen {
		return
	}
	key := cand.stateKey()
	if _, ok := c.seen[key]; ok {
		return
	}
	if len(c.queue) >= c.limits.MaxCandidates {
		c.capped = true
		return
	}
	c.seen[key] = struct{}{}
	c.queue = append(c.queue, cand)
}

// collect returns every candidate derivation of word, the unanalyzed word
// first. word must already be normalized.
func (c *collector) collect(word string) []Stem {
	rs := []rune(word)
	if len(rs) > c.limits.MaxWordRunes {
		glog.V(2).Infof("stemmer: %d runes exceeds limit %d, skipping analysis", len(rs), c.limits.MaxWordRunes)
		return nil
	}
	c.push(&candidate{rem: rs})
	for i := 0; i < len(c.queue) && !c.capped; i++ {
		c.expand(c.queue[i])
	}
	if c.capped {
		glog.V(2).Infof("stemmer: candidate limit %d reached for %q", c.limits.MaxCandidates, word)
	}
	stems := make([]Stem, 0, len(c.queue))
	for _, cand := range c.queue {
		stems = append(stems, newStem(word, cand))
	}
	return stems
}

// expand applies every single operation to cand. The order fixes the
// order in which children are discovered.
func (c *collector) expand(cand *candidate) {
	c.splitContractions(cand)
	c.reduplicate(cand)
	c.stripPrefixes(cand)
	c.stripCircumfixes(cand)
	c.stripInfixes(cand)
	c.stripSuffixes(cand)
	c.transform(cand)
}
