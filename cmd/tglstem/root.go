package main

import (
	goflag "flag"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tl-nlp/tglstem/data"
	"github.com/tl-nlp/tglstem/stemmer"
)

const envPrefix = "TGLSTEM"

// subCommand pairs a command with the viper instance its flags, the root
// flags, the environment and the config file are resolved through.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper
}

// runE wraps fn so the config file is read before the command runs.
func (sc *subCommand) runE(fn func(cmd *cobra.Command, conf *viper.Viper, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg := sc.Conf.GetString("config"); cfg != "" {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrap(err, "reading config")
			}
		}
		return fn(cmd, sc.Conf, args)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tglstem",
		Short: "Tagalog stemmer",
		Long: `
tglstem reduces inflected Tagalog words to their roots. It strips prefixes,
infixes, suffixes and circumfixes, removes full and partial reduplication,
splits contractions and reverses spelling alternations, keeping only roots
found in the dictionary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	addStemmerFlags(pf)
	pf.AddGoFlagSet(goflag.CommandLine)

	for _, sc := range []*subCommand{
		newStemCmd(), newCandidatesCmd(), newTextCmd(), newAccuracyCmd(), newDictgenCmd(),
	} {
		root.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		sc.Conf.BindPFlags(sc.Cmd.Flags())
		sc.Conf.BindPFlags(pf)
		sc.Conf.SetEnvPrefix(envPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		sc.Conf.AutomaticEnv()
	}
	return root
}

// addStemmerFlags registers the flags shared by every subcommand.
func addStemmerFlags(pf *flag.FlagSet) {
	limits := stemmer.DefaultLimits()
	def := stemmer.DefaultConfig()
	var ranking []string
	for _, k := range def.Ranking {
		ranking = append(ranking, k.String())
	}

	pf.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	pf.String("resources", "", "Directory with the resource files. Empty uses the embedded resources.")
	pf.String("format", "text", "Output format, one of [text, json, yaml].")
	pf.Int("workers", 0, "Goroutines used for text and accuracy runs. 0 means GOMAXPROCS.")
	pf.Bool("keep_punctuation", false, "Pass punctuation and symbols through in text mode.")
	pf.StringSlice("ranking", ranking, "Candidate ranking keys in priority order.")
	pf.StringSlice("whitelist", nil, "Function words that may still be returned as roots.")
	pf.String("alphabet", def.Alphabet, "Letters a root may use.")
	pf.String("latin_letters", def.LatinLetters, "Additional letters allowed in loanword roots.")
	pf.Int("max_word_runes", limits.MaxWordRunes, "Longest word analyzed; longer words are returned unchanged.")
	pf.Int("min_root_len", limits.MinRootLen, "Shortest root kept.")
	pf.Int("max_affix_layers", limits.MaxAffixLayers, "Affix removals allowed on one derivation.")
	pf.Int("max_transform_depth", limits.MaxTransformDepth, "Spelling alternations reversed on one derivation.")
	pf.Int("max_candidates", limits.MaxCandidates, "Search states explored per word.")
}

func loadResources(conf *viper.Viper) (*stemmer.Resources, error) {
	var fsys fs.FS = data.FS
	if dir := conf.GetString("resources"); dir != "" {
		fsys = os.DirFS(dir)
	}
	res, err := stemmer.Load(fsys)
	if err != nil {
		return nil, errors.Wrap(err, "loading resources")
	}
	return res, nil
}

func stemmerConfig(conf *viper.Viper) (stemmer.Config, error) {
	cfg := stemmer.DefaultConfig()
	cfg.Limits = stemmer.Limits{
		MaxWordRunes:      conf.GetInt("max_word_runes"),
		MinRootLen:        conf.GetInt("min_root_len"),
		MaxAffixLayers:    conf.GetInt("max_affix_layers"),
		MaxTransformDepth: conf.GetInt("max_transform_depth"),
		MaxCandidates:     conf.GetInt("max_candidates"),
	}
	cfg.Alphabet = conf.GetString("alphabet")
	cfg.LatinLetters = conf.GetString("latin_letters")
	cfg.Whitelist = listOf(conf, "whitelist")
	cfg.KeepPunctuation = conf.GetBool("keep_punctuation")
	cfg.Workers = conf.GetInt("workers")
	ranking, err := stemmer.ParseRanking(listOf(conf, "ranking"))
	if err != nil {
		return stemmer.Config{}, err
	}
	cfg.Ranking = ranking
	return cfg, nil
}

// newStemmer builds a stemmer from the resolved configuration.
func newStemmer(conf *viper.Viper) (*stemmer.Stemmer, *stemmer.Resources, error) {
	res, err := loadResources(conf)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := stemmerConfig(conf)
	if err != nil {
		return nil, nil, err
	}
	s, err := stemmer.New(res, cfg)
	if err != nil {
		return nil, nil, err
	}
	return s, res, nil
}

// listOf reads a list setting. Environment values arrive as one string, so
// comma separated entries are split as well.
func listOf(conf *viper.Viper, key string) []string {
	var out []string
	for _, v := range conf.GetStringSlice(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
