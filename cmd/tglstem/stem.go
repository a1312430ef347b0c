package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tl-nlp/tglstem/stemmer"
)

func newStemCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "stem [word...]",
		Short: "Print the best root of each word",
		Long: `Prints the best root of each argument. Without arguments, words are read
from stdin, one per line. Words without letters are skipped with a warning.`,
		RunE: sc.runE(runStem),
	}
	return sc
}

func runStem(cmd *cobra.Command, conf *viper.Viper, args []string) error {
	p, err := newPrinter(cmd.OutOrStdout(), conf)
	if err != nil {
		return err
	}
	s, _, err := newStemmer(conf)
	if err != nil {
		return err
	}
	words := args
	if len(words) == 0 {
		if words, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	stems := make([]stemmer.Stem, 0, len(words))
	for _, w := range words {
		st, err := s.StemWord(w)
		if errors.Is(err, stemmer.ErrInvalidInput) {
			glog.Warningf("skipping %v", err)
			continue
		}
		if err != nil {
			return err
		}
		stems = append(stems, st)
	}
	return p.print(stems, func(w io.Writer) error {
		for _, st := range stems {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", st.Word, st); err != nil {
				return err
			}
		}
		return nil
	})
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, errors.Wrap(sc.Err(), "reading input")
}
