package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tl-nlp/tglstem/stemmer"
)

// printer writes results in the format chosen with --format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, conf *viper.Viper) (*printer, error) {
	format := strings.ToLower(conf.GetString("format"))
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, errors.Errorf("unknown format %q, want text, json or yaml", format)
	}
	return &printer{w: w, format: format}, nil
}

// print encodes v as JSON or YAML, or calls text for the text format.
func (p *printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(p.w)
}

// writeCandidates lists stems as a table, best first.
func writeCandidates(w io.Writer, stems []stemmer.Stem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tROOT\tPREFIX\tINFIX\tSUFFIX\tREDUPLICATION\tTRANSFORMATIONS\tCONTRACTIONS\tREMOVED")
	for i, st := range stems {
		redup := "-"
		if r := st.Reduplication; r != nil {
			redup = r.Kind.String() + ":" + r.Segment + r.Separator
		}
		var rules []string
		for _, t := range st.Transformations {
			rules = append(rules, t.Rule)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n", i+1, st.Root,
			orDash(st.Prefix), orDash(st.Infix), orDash(st.Suffix), redup,
			orDash(strings.Join(rules, ",")), orDash(strings.Join(st.Contractions, ",")),
			st.Score.Removed)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
