package stemmer

import (
	"cmp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// RankKey is one criterion of the ranking policy.
type RankKey int

const (
	// RankReduction prefers more runes removed.
	RankReduction RankKey = iota
	// RankTransformations prefers fewer reversed alternations.
	RankTransformations
	// RankContractions prefers fewer split contractions.
	RankContractions
	// RankRoot prefers the lexicographically smaller root.
	RankRoot
)

var rankKeyNames = [...]string{
	RankReduction:       "reduction",
	RankTransformations: "transformations",
	RankContractions:    "contractions",
	RankRoot:            "root",
}

func (k RankKey) String() string {
	if k >= 0 && int(k) < len(rankKeyNames) {
		return rankKeyNames[k]
	}
	return "RankKey(?)"
}

// MarshalText encodes the key by name.
func (k RankKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key name.
func (k *RankKey) UnmarshalText(b []byte) error {
	v, err := ParseRankKey(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseRankKey parses a ranking key name.
func ParseRankKey(s string) (RankKey, error) {
	for i, name := range rankKeyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return RankKey(i), nil
		}
	}
	return 0, errors.Errorf("unknown ranking key %q", s)
}

// ParseRanking parses a list of key names into a policy.
func ParseRanking(names []string) ([]RankKey, error) {
	policy := make([]RankKey, 0, len(names))
	for _, n := range names {
		k, err := ParseRankKey(n)
		if err != nil {
			return nil, err
		}
		policy = append(policy, k)
	}
	return policy, nil
}

// DefaultRanking is maximal reduction, then fewest transformations, then
// fewest contractions, then the alphabetically first root.
func DefaultRanking() []RankKey {
	return []RankKey{RankReduction, RankTransformations, RankContractions, RankRoot}
}

func compareBy(k RankKey, a, b *Stem) int {
	switch k {
	case RankReduction:
		return cmp.Compare(b.Score.Removed, a.Score.Removed)
	case RankTransformations:
		return cmp.Compare(a.Score.Transformations, b.Score.Transformations)
	case RankContractions:
		return cmp.Compare(a.Score.Contractions, b.Score.Contractions)
	case RankRoot:
		return strings.Compare(a.Root, b.Root)
	}
	return 0
}

// rank orders stems best first. Ties left by the policy are broken by the
// shorter derivation and then by the identity key, so the order never
// depends on discovery order.
func rank(stems []Stem, policy []RankKey) {
	keys := make([]string, len(stems))
	for i := range stems {
		keys[i] = identityKey([]rune(stems[i].Root), stems[i].Steps)
	}
	sort.Sort(&ranking{stems: stems, keys: keys, policy: policy})
}

// distinct drops every stem whose identity key repeats an earlier one,
// keeping the first. Run it after rank so the better derivation stays.
func distinct(stems []Stem) []Stem {
	seen := make(map[string]struct{}, len(stems))
	out := stems[:0]
	for _, st := range stems {
		key := identityKey([]rune(st.Root), st.Steps)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, st)
	}
	return out
}

type ranking struct {
	stems  []Stem
	keys   []string
	policy []RankKey
}

func (r *ranking) Len() int { return len(r.stems) }

func (r *ranking) Swap(i, j int) {
	r.stems[i], r.stems[j] = r.stems[j], r.stems[i]
	r.keys[i], r.keys[j] = r.keys[j], r.keys[i]
}

func (r *ranking) Less(i, j int) bool {
	a, b := &r.stems[i], &r.stems[j]
	for _, k := range r.policy {
		if c := compareBy(k, a, b); c != 0 {
			return c < 0
		}
	}
	if la, lb := len(a.Steps), len(b.Steps); la != lb {
		return la < lb
	}
	return r.keys[i] < r.keys[j]
}
