package stemmer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/tl-nlp/tglstem/data"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	res, err := Load(data.FS)
	require.NoError(t, err)
	require.NotEmpty(t, res.Affixes.Rules(Prefix))
	require.NotEmpty(t, res.Affixes.Rules(Infix))
	require.NotEmpty(t, res.Affixes.Rules(Suffix))
	require.NotEmpty(t, res.Affixes.Rules(Circumfix))
	require.NotEmpty(t, res.Affixes.Contractions())
	require.Positive(t, res.Rules.Len())
	require.Positive(t, res.Dictionary.Len())
	require.Contains(t, res.FunctionWords, "din")
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string // empty with remove=true deletes the file
		remove  bool
		wantErr string
	}{
		{"missing prefixes", PrefixFile, "", true, "reading prefixes.txt"},
		{"missing words", WordFile, "", true, "reading words.txt"},
		{"empty words", WordFile, "# only a comment\n\n", false, "words.txt: no entries"},
		{"empty suffixes", SuffixFile, "", false, "suffixes.txt: no entries"},
		{"unknown affix flag", PrefixFile, "mag\nnag twice\n", false, `prefixes.txt:2: unknown flag "twice"`},
		{"bad circumfix", CircumfixFile, "kaan\n", false, "want head+tail"},
		{"short contraction", ContractionFile, "'t\n", false, "contractions.txt:1"},
		{"contraction flag", ContractionFile, "t vowel always\n", false, `unknown flag "always"`},
		{"short transformation", TransformationFile, "# header\nd/r phoneme-change prefix replace start r\n", false, "transformations.txt:2: want 7 or 8 fields"},
		{"bad boundary", TransformationFile, "d/r phoneme-change middle replace start r d\n", false, `unknown boundary "middle"`},
		{"bad op", TransformationFile, "d/r phoneme-change prefix flip start r d\n", false, `unknown op "flip"`},
		{"bad anchor", TransformationFile, "d/r phoneme-change prefix replace mid r d\n", false, `unknown anchor "mid"`},
		{"bad kind", TransformationFile, "d/r sandhi prefix replace start r d\n", false, "transformations.txt:1"},
		{"bad condition", TransformationFile, "d/r phoneme-change prefix replace start r d stressed\n", false, `unknown condition "stressed"`},
		{"invalid rule", TransformationFile, "swap metathesis suffix swap start - -\n", false, "only supported at the end"},
		{"two words on a line", WordFile, "sulat basa\n", false, "words.txt:1: want one word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fsys := embeddedFS(t)
			if tt.remove {
				delete(fsys, tt.file)
			} else {
				fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}
			}
			_, err := Load(fsys)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsEmptyTables(t *testing.T) {
	t.Parallel()

	for _, name := range []string{PrefixFile, InfixFile, SuffixFile, CircumfixFile, ContractionFile, TransformationFile, WordFile} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fsys := embeddedFS(t)
			fsys[name] = &fstest.MapFile{Data: []byte("# nothing here\n")}
			_, err := Load(fsys)
			require.ErrorContains(t, err, name+": no entries")
		})
	}
}

func TestLoadFunctionWordsMayBeEmpty(t *testing.T) {
	t.Parallel()

	fsys := embeddedFS(t)
	fsys[FunctionWordFile] = &fstest.MapFile{Data: []byte("# nothing here\n")}
	res, err := Load(fsys)
	require.NoError(t, err)
	require.Empty(t, res.FunctionWords)

	s, err := New(res, DefaultConfig())
	require.NoError(t, err)
	got, err := s.StemWord("nagsulat")
	require.NoError(t, err)
	require.Equal(t, "sulat", got.Root)
}

func TestLoadParsesConditions(t *testing.T) {
	t.Parallel()

	fsys := embeddedFS(t)
	fsys[TransformationFile] = &fstest.MapFile{Data: []byte(
		"k/null assimilation prefix insert start - k affix=ng|m,next-vowel\n" +
			"o/u phoneme-change any replace end u o independent,affix-vowel,cluster\n")}
	res, err := Load(fsys)
	require.NoError(t, err)

	rules := res.Rules.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, TransformationRule{
		Name: "k/null", Kind: Assimilation, Boundary: BoundaryPrefix, Op: OpInsert, Anchor: AnchorStart,
		Underlying: "k", AffixEnds: []string{"ng", "m"}, NextVowel: true,
	}, rules[0])
	require.Equal(t, TransformationRule{
		Name: "o/u", Kind: PhonemeChange, Boundary: BoundaryAny, Op: OpReplace, Anchor: AnchorEnd,
		Surface: "u", Underlying: "o", Independent: true, AffixVowel: true, Cluster: true,
	}, rules[1])
}

func TestNewResourcesRejectsNil(t *testing.T) {
	t.Parallel()

	res := testResources(t)
	_, err := NewResources(nil, res.Rules, res.Dictionary, nil)
	require.ErrorContains(t, err, "nil affix table")
	_, err = NewResources(res.Affixes, nil, res.Dictionary, nil)
	require.ErrorContains(t, err, "nil rule set")
	_, err = NewResources(res.Affixes, res.Rules, nil, nil)
	require.ErrorContains(t, err, "nil dictionary")
}
