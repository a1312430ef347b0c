package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tl-nlp/tglstem/internal/tlcase"
	"github.com/tl-nlp/tglstem/stemmer"
)

func newDictgenCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "dictgen",
		Short: "Build a words.txt dictionary from a raw word list",
		Long: `Reads a word list (first field of every line, '#' starts a comment),
normalizes it, drops entries that are not plain words and, unless
--filter_inflected=false, drops entries the stemmer reduces to another
entry of the list. The result is written sorted, one root per line.`,
		Args: cobra.NoArgs,
		RunE: sc.runE(runDictgen),
	}
	flag := sc.Cmd.Flags()
	flag.String("input", "", "Raw word list.")
	flag.String("output", "-", "Output path; - writes to stdout.")
	flag.Bool("filter_inflected", true, "Drop words that stem to another word of the list.")
	return sc
}

func runDictgen(cmd *cobra.Command, conf *viper.Viper, _ []string) error {
	input := conf.GetString("input")
	if input == "" {
		return errors.New("--input is required")
	}
	f, err := os.Open(filepath.Clean(input))
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	words, err := readWordList(f, conf.GetInt("min_root_len"))
	_ = f.Close()
	if err != nil {
		return err
	}
	read := len(words)

	if conf.GetBool("filter_inflected") {
		res, err := loadResources(conf)
		if err != nil {
			return err
		}
		cfg, err := stemmerConfig(conf)
		if err != nil {
			return err
		}
		if words, err = filterInflected(words, res, cfg); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if path := conf.GetString("output"); path != "-" {
		file, err := os.Create(filepath.Clean(path))
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer file.Close()
		out = file
	}
	w := bufio.NewWriter(out)
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flushing output")
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Read %d words, wrote %d roots\n", read, len(words))
	return nil
}

// readWordList returns the sorted, de-duplicated plain words of r.
func readWordList(r io.Reader, minRunes int) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		w := tlcase.Normalize(fields[0])
		if isPlainWord(w, minRunes) {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return stemmer.NewDictionary(words).Words(), nil
}

// isPlainWord rejects short entries and anything with a non-letter:
// phrases, hyphenated compounds, contractions and numbers.
func isPlainWord(w string, minRunes int) bool {
	if utf8.RuneCountInString(w) < minRunes {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// filterInflected drops every word whose best stem, with the list itself
// as the dictionary, is a different word of the list.
func filterInflected(words []string, res *stemmer.Resources, cfg stemmer.Config) ([]string, error) {
	dict := stemmer.NewDictionary(words)
	listRes, err := stemmer.NewResources(res.Affixes, res.Rules, dict, res.FunctionWords)
	if err != nil {
		return nil, err
	}
	s, err := stemmer.New(listRes, cfg)
	if err != nil {
		return nil, err
	}
	kept := words[:0:0]
	for _, w := range words {
		st, err := s.StemWord(w)
		if err != nil {
			return nil, err
		}
		if st.Root == w {
			kept = append(kept, w)
		}
	}
	return kept, nil
}
