package stemmer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformationReverse(t *testing.T) {
	t.Parallel()

	dr := TransformationRule{Name: "d/r", Boundary: BoundaryPrefix, Op: OpReplace, Anchor: AnchorStart,
		Surface: "r", Underlying: "d", AffixVowel: true, NextVowel: true}
	kNull := TransformationRule{Name: "k/null", Kind: Assimilation, Boundary: BoundaryPrefix, Op: OpInsert,
		Anchor: AnchorStart, Underlying: "k", AffixEnds: []string{"ng"}, NextVowel: true}
	ou := TransformationRule{Name: "o/u", Boundary: BoundarySuffix, Op: OpReplace, Anchor: AnchorPenult,
		Surface: "u", Underlying: "o"}
	swap := TransformationRule{Name: "metathesis", Kind: Metathesis, Boundary: BoundarySuffix, Op: OpSwap,
		Anchor: AnchorEnd, Cluster: true}
	lossPenult := TransformationRule{Name: "vowel-loss/a", Kind: VowelLoss, Boundary: BoundarySuffix, Op: OpInsert,
		Anchor: AnchorPenult, Underlying: "a", Cluster: true}
	lossEnd := TransformationRule{Name: "vowel-loss/o", Kind: VowelLoss, Boundary: BoundarySuffix, Op: OpInsert,
		Anchor: AnchorEnd, Underlying: "o", Cluster: true}

	tests := []struct {
		name  string
		rule  TransformationRule
		rem   string
		affix string
		want  string // empty when the rule must not apply
		pos   int
	}{
		{"d/r after vowel prefix", dr, "rami", "ma", "dami", 0},
		{"d/r needs vowel-final prefix", dr, "rami", "mag", "", 0},
		{"d/r needs following vowel", dr, "rtis", "ma", "", 0},
		{"k/null after ng", kNull, "ailangan", "pang", "kailangan", 0},
		{"k/null needs ng", kNull, "ailangan", "pam", "", 0},
		{"k/null needs vowel", kNull, "lamig", "pang", "", 0},
		{"o/u penult", ou, "inum", "in", "inom", 2},
		{"o/u penult missing", ou, "inim", "in", "", 0},
		{"swap cluster", swap, "tamn", "in", "tanm", 2},
		{"swap needs cluster", swap, "tama", "in", "", 0},
		{"swap same letters is no-op", swap, "bass", "in", "", 0},
		{"vowel loss penult", lossPenult, "buks", "an", "bukas", 3},
		{"vowel loss end", lossEnd, "sundw", "an", "sundwo", 5},
		{"vowel loss needs cluster", lossPenult, "bukas", "an", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, tr, ok := tt.rule.reverse([]rune(tt.rem), tt.affix)
			if tt.want == "" {
				require.False(t, ok, "got %q", string(out))
				return
			}
			require.True(t, ok)
			require.Equal(t, tt.want, string(out))
			require.Equal(t, tt.pos, tr.Pos)
			require.Equal(t, tt.rule.Name, tr.Rule)

			// Replaying the record on the output gives the input back.
			st := Step{Kind: StepTransformation, Transformation: &tr}
			back, err := st.restore(out)
			require.NoError(t, err)
			require.Equal(t, tt.rem, string(back))
		})
	}
}

func TestNewRuleSetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    TransformationRule
		wantErr string
	}{
		{"missing name", TransformationRule{Op: OpReplace, Surface: "r", Underlying: "d"}, "missing name"},
		{"replace without surface", TransformationRule{Name: "x", Op: OpReplace, Underlying: "d"}, "replace needs"},
		{"insert with surface", TransformationRule{Name: "x", Op: OpInsert, Surface: "a", Underlying: "b"}, "insert needs"},
		{"swap at start", TransformationRule{Name: "x", Op: OpSwap, Anchor: AnchorStart}, "only supported at the end"},
		{"swap across copies", TransformationRule{Name: "x", Op: OpSwap, Anchor: AnchorEnd, Boundary: BoundaryRedup}, "cannot relate"},
		{"unknown op", TransformationRule{Name: "x", Op: Op(9)}, "unknown op"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRuleSet([]TransformationRule{tt.rule})
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTransformContext(t *testing.T) {
	t.Parallel()

	res := testResources(t)
	limits := DefaultLimits()

	// Without a prefix boundary the d/r rule stays silent.
	c := newCollector(res, limits)
	c.transform(&candidate{rem: []rune("rami")})
	require.Empty(t, c.queue)

	c = newCollector(res, limits)
	c.transform(&candidate{rem: []rune("rami"), leftCtx: "ma"})
	require.Len(t, c.queue, 1)
	require.Equal(t, "dami", string(c.queue[0].rem))

	// Depth limit.
	c = newCollector(res, limits)
	c.transform(&candidate{rem: []rune("rami"), leftCtx: "ma", transforms: limits.MaxTransformDepth})
	require.Empty(t, c.queue)
}

func TestIndependentRule(t *testing.T) {
	t.Parallel()

	rules, err := NewRuleSet([]TransformationRule{{
		Name: "o/u", Boundary: BoundarySuffix, Op: OpReplace, Anchor: AnchorEnd,
		Surface: "u", Underlying: "o", Independent: true,
	}})
	require.NoError(t, err)
	base := testResources(t)
	res, err := NewResources(base.Affixes, rules, NewDictionary([]string{"libo"}), nil)
	require.NoError(t, err)

	s, err := New(res, DefaultConfig())
	require.NoError(t, err)
	got, err := s.StemWord("libu")
	require.NoError(t, err)
	require.Equal(t, "libo", got.Root, "independent rules fire without a suffix")
	require.Equal(t, "libu", got.Reconstruct())
}

func TestUndoSwapIsSkipped(t *testing.T) {
	t.Parallel()

	c := newCollector(testResources(t), DefaultLimits())
	cand := &candidate{rem: []rune("tamn"), rightCtx: "in"}
	c.transform(cand)

	var swapped *candidate
	for _, q := range c.queue {
		if string(q.rem) == "tanm" {
			swapped = q
		}
	}
	require.NotNil(t, swapped)

	c.queue = nil
	c.transform(swapped)
	for _, q := range c.queue {
		require.NotEqual(t, "tamn", string(q.rem), "second swap would undo the first")
	}
}
