package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCandidatesCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "candidates <word>",
		Short: "List every valid root of a word, best first",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.runE(runCandidates),
	}
	return sc
}

func runCandidates(cmd *cobra.Command, conf *viper.Viper, args []string) error {
	p, err := newPrinter(cmd.OutOrStdout(), conf)
	if err != nil {
		return err
	}
	s, _, err := newStemmer(conf)
	if err != nil {
		return err
	}
	stems, err := s.Candidates(args[0])
	if err != nil {
		return err
	}
	return p.print(stems, func(w io.Writer) error {
		return writeCandidates(w, stems)
	})
}
