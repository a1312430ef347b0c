package stemmer

import "strings"

// redupMatch is one reading of a reduplicated remainder.
type redupMatch struct {
	base []rune
	red  Reduplication
}

// maxPartialSegment bounds the length of a partial reduplication segment
// (CCV plus a nasal never exceeds four letters).
const maxPartialSegment = 4

// reduplicate expands a candidate by every reduplication reading.
// A branch removes at most one reduplication.
func (c *collector) reduplicate(cand *candidate) {
	if cand.redup || cand.leftLocked {
		return
	}
	for _, m := range c.detectReduplication(cand.rem) {
		red := m.red
		child := cand.child(m.base, Step{Kind: StepReduplication, Reduplication: &red})
		child.redup = true
		if red.Kind == FullRedup {
			child.leftCtx = ""
		}
		c.push(child)
	}
}

// detectReduplication lists every full and partial reduplication reading
// of rs. The remaining base is always the right copy.
func (c *collector) detectReduplication(rs []rune) []redupMatch {
	var out []redupMatch
	out = append(out, c.fullHyphenated(rs)...)
	out = append(out, fullJoined(rs)...)
	out = append(out, partial(rs, c.limits.MinRootLen)...)
	return out
}

// fullHyphenated matches X-X and its variants: a first copy truncated to
// two syllables (panga-pangako), a first copy carrying a contraction
// (iba't-iba, hapung-hapon) and copies related by an alternation (anu-ano).
func (c *collector) fullHyphenated(rs []rune) []redupMatch {
	idx := -1
	for i, r := range rs {
		if r != '-' {
			continue
		}
		if idx >= 0 {
			return nil
		}
		idx = i
	}
	if idx < 2 || idx > len(rs)-3 {
		return nil
	}
	left, right := rs[:idx], rs[idx+1:]
	match := func(contraction, alternation string) redupMatch {
		return redupMatch{
			base: right,
			red: Reduplication{
				Kind:        FullRedup,
				Segment:     string(left),
				Separator:   "-",
				Removed:     len(left),
				Contraction: contraction,
				Alternation: alternation,
			},
		}
	}

	if equalRunes(left, right) {
		return []redupMatch{match("", "")}
	}
	var out []redupMatch
	if len(left) > 2 && len(right) > 4 && hasPrefixRunes(right, left) {
		out = append(out, match("", ""))
	}
	seen := make(map[string]bool)
	try := func(first []rune, contraction string) {
		if contraction != "" && equalRunes(first, right) {
			out = append(out, match(contraction, ""))
			return
		}
		for i := range c.redupRules {
			r := &c.redupRules[i]
			alt, _, ok := r.reverse(first, "")
			if !ok || !equalRunes(alt, right) {
				continue
			}
			key := contraction + "|" + r.Name
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, match(contraction, r.Name))
		}
	}
	try(left, "")
	for _, cr := range c.affixes.contractions {
		if len(left)-len(cr.marker) < 2 || !hasSuffixRunes(left, cr.marker) {
			continue
		}
		first := left[:len(left)-len(cr.marker)]
		if !cr.allows(first) {
			continue
		}
		try(first, cr.Marker)
	}
	return out
}

// fullJoined matches XX written without a hyphen (gabigabi).
func fullJoined(rs []rune) []redupMatch {
	n := len(rs)
	if n < 4 || n%2 != 0 {
		return nil
	}
	half := n / 2
	left, right := rs[:half], rs[half:]
	if !equalRunes(left, right) || !hasVowel(left) || strings.ContainsRune(string(left), '-') {
		return nil
	}
	return []redupMatch{{
		base: right,
		red:  Reduplication{Kind: FullRedup, Segment: string(left), Removed: half},
	}}
}

// partial matches a repeated first syllable: V (aalis), V plus nasal
// (ingisda), CV (bibili) and, for bases opening with a consonant cluster,
// the shapes C1V (pipresyo), CC (prpresyo) and CCV (prepresyo).
func partial(rs []rune, minRoot int) []redupMatch {
	var out []redupMatch
	for k := 1; k <= maxPartialSegment && len(rs)-k >= minRoot; k++ {
		seg, base := rs[:k], rs[k:]
		if !partialShape(seg, base) {
			continue
		}
		out = append(out, redupMatch{
			base: base,
			red:  Reduplication{Kind: PartialRedup, Segment: string(seg), Removed: k},
		})
	}
	return out
}

func partialShape(seg, base []rune) bool {
	if len(base) == 0 {
		return false
	}
	if isVowel(base[0]) {
		if seg[0] != base[0] {
			return false
		}
		return len(seg) == 1 || isNasal(seg[1:])
	}
	o := onset(base)
	if o == len(base) || !isVowel(base[o]) {
		return false
	}
	v := base[o]
	shapes := [][]rune{joinRunes(base[:o], []rune{v})}
	if o >= 2 {
		shapes = append(shapes, []rune{base[0], v}, base[:o])
	}
	if o == 3 {
		shapes = append(shapes, base[:2], []rune{base[0], base[1], v})
	}
	for _, s := range shapes {
		if equalRunes(seg, s) {
			return true
		}
	}
	return false
}

func isNasal(rs []rune) bool {
	switch string(rs) {
	case "m", "n", "ng":
		return true
	}
	return false
}
