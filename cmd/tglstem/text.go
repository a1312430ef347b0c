package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTextCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "text [text...]",
		Short: "Stem every word of a text",
		Long: `Tokenizes the arguments, or stdin when there are none, and prints the
roots in input order. Numbers are kept; punctuation is kept only with
--keep_punctuation.`,
		RunE: sc.runE(runText),
	}
	return sc
}

func runText(cmd *cobra.Command, conf *viper.Viper, args []string) error {
	p, err := newPrinter(cmd.OutOrStdout(), conf)
	if err != nil {
		return err
	}
	s, _, err := newStemmer(conf)
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		text = string(b)
	}

	stems, err := s.StemText(text)
	if err != nil {
		return err
	}
	return p.print(stems, func(w io.Writer) error {
		roots := make([]string, len(stems))
		for i, st := range stems {
			roots[i] = st.Root
		}
		_, err := fmt.Fprintln(w, strings.Join(roots, " "))
		return err
	})
}
