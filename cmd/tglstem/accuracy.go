package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tl-nlp/tglstem/accuracy"
)

func newAccuracyCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "accuracy",
		Short: "Score the stemmer against a labeled inflection,stem corpus",
		Args:  cobra.NoArgs,
		RunE:  sc.runE(runAccuracy),
	}
	flag := sc.Cmd.Flags()
	flag.String("corpus", "", "CSV file with inflection and stem columns.")
	flag.String("out_dir", "", "Directory to write correct.csv and incorrect.csv to.")
	return sc
}

func runAccuracy(cmd *cobra.Command, conf *viper.Viper, _ []string) error {
	path := conf.GetString("corpus")
	if path == "" {
		return errors.New("--corpus is required")
	}
	p, err := newPrinter(cmd.OutOrStdout(), conf)
	if err != nil {
		return err
	}
	s, res, err := newStemmer(conf)
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return errors.Wrap(err, "opening corpus")
	}
	examples, err := accuracy.ReadExamples(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	outDir := conf.GetString("out_dir")
	report, err := accuracy.Evaluate(cmd.Context(), s, examples, accuracy.Options{
		Dictionary:   res.Dictionary,
		Workers:      conf.GetInt("workers"),
		KeepOutcomes: outDir != "",
	})
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := writeOutcomes(report, outDir); err != nil {
			return err
		}
	}

	summary := *report
	summary.Outcomes = nil
	return p.print(summary, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TOTAL\tCORRECT\tINCORRECT\tACCURACY\tUNDER AVG\tOVER AVG\tUNDER TOTAL\tOVER TOTAL")
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%.2f\t%.2f\t%d\t%d\n",
			summary.Total, summary.Correct, summary.Incorrect, summary.Accuracy,
			summary.UnderstemmingAvg, summary.OverstemmingAvg,
			summary.UnderstemmingTotal, summary.OverstemmingTotal)
		return tw.Flush()
	})
}

func writeOutcomes(r *accuracy.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	for _, f := range []struct {
		name    string
		correct bool
	}{
		{"correct.csv", true},
		{"incorrect.csv", false},
	} {
		out, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			return errors.Wrapf(err, "creating %s", f.name)
		}
		if err := r.WriteOutcomes(out, f.correct); err != nil {
			_ = out.Close()
			return errors.Wrapf(err, "writing %s", f.name)
		}
		if err := out.Close(); err != nil {
			return errors.Wrapf(err, "closing %s", f.name)
		}
	}
	return nil
}
