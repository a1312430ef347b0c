package stemmer

import (
	"runtime"

	"github.com/pkg/errors"
)

// Limits bound the work done for one word.
type Limits struct {
	// MaxWordRunes is the longest word that is analyzed. Longer words get
	// no candidates and fall back to themselves.
	MaxWordRunes int `mapstructure:"max_word_runes" yaml:"max_word_runes"`
	// MinRootLen is the shortest remainder kept as a candidate root.
	MinRootLen int `mapstructure:"min_root_len" yaml:"min_root_len"`
	// MaxAffixLayers caps prefix, infix, suffix and circumfix removals
	// on one branch.
	MaxAffixLayers int `mapstructure:"max_affix_layers" yaml:"max_affix_layers"`
	// MaxTransformDepth caps transformation reversals on one branch.
	MaxTransformDepth int `mapstructure:"max_transform_depth" yaml:"max_transform_depth"`
	// MaxCandidates caps the search states explored per word.
	MaxCandidates int `mapstructure:"max_candidates" yaml:"max_candidates"`
}

// Config is the stemmer policy.
type Config struct {
	Limits Limits `mapstructure:"limits" yaml:"limits"`

	// Alphabet and LatinLetters together are the letters a root may use.
	Alphabet     string `mapstructure:"alphabet" yaml:"alphabet"`
	LatinLetters string `mapstructure:"latin_letters" yaml:"latin_letters"`

	// Whitelist lists function words that may still be returned as roots.
	Whitelist []string `mapstructure:"whitelist" yaml:"whitelist"`

	// Ranking orders candidates; see DefaultRanking.
	Ranking []RankKey `mapstructure:"-" yaml:"ranking"`

	// KeepPunctuation makes StemText pass punctuation tokens through as
	// their own roots instead of dropping them.
	KeepPunctuation bool `mapstructure:"keep_punctuation" yaml:"keep_punctuation"`

	// Workers bounds the goroutines StemText uses. Zero means GOMAXPROCS.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// DefaultLimits returns the limits used by the default stemmer.
func DefaultLimits() Limits {
	return Limits{
		MaxWordRunes:      64,
		MinRootLen:        2,
		MaxAffixLayers:    4,
		MaxTransformDepth: 2,
		MaxCandidates:     2048,
	}
}

// DefaultConfig returns the configuration of the default stemmer.
func DefaultConfig() Config {
	return Config{
		Limits:       DefaultLimits(),
		Alphabet:     "abdeghiklmnñoprstuwy",
		LatinLetters: "cfjqvxz",
		Ranking:      DefaultRanking(),
	}
}

func (c Config) validate() error {
	l := c.Limits
	switch {
	case l.MaxWordRunes < 1:
		return errors.Errorf("max_word_runes must be positive, got %d", l.MaxWordRunes)
	case l.MinRootLen < 1:
		return errors.Errorf("min_root_len must be positive, got %d", l.MinRootLen)
	case l.MaxAffixLayers < 0:
		return errors.Errorf("max_affix_layers must not be negative, got %d", l.MaxAffixLayers)
	case l.MaxTransformDepth < 0:
		return errors.Errorf("max_transform_depth must not be negative, got %d", l.MaxTransformDepth)
	case l.MaxCandidates < 1:
		return errors.Errorf("max_candidates must be positive, got %d", l.MaxCandidates)
	case c.Alphabet == "":
		return errors.New("alphabet must not be empty")
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, k := range c.Ranking {
		if k < RankReduction || k > RankRoot {
			return errors.Errorf("unknown ranking key %d", int(k))
		}
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
