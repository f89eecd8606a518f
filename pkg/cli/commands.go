package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/henderiw/rampart/pkg/bound"
	"github.com/henderiw/rampart/pkg/interval"
	"github.com/henderiw/rampart/pkg/matrix"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/yaml"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func newRelateCmd() *cobra.Command {
	kind := bound.KindInt
	var sep string

	cmd := &cobra.Command{
		Use:   "relate X Y",
		Short: "Print how interval X relates to interval Y",
		Example: `  rampart relate 2-3 3-7
  rampart relate -k time 2024-03-01T00:00:00Z..2024-03-15T00:00:00Z 2024-03-10T00:00:00Z..2024-03-20T00:00:00Z
  rampart relate -k ip 10.0.1.0/24 10.0.0.0/16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Relating intervals", "x", args[0], "y", args[1], "kind", kind)
			r, err := bound.Relate(kind, args[0], args[1], sep)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
	addBoundFlags(cmd, &kind, &sep)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	kind := bound.KindInt
	var sep, output string

	cmd := &cobra.Command{
		Use:   "describe X",
		Short: "Print the normalized bounds of interval X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bound.Describe(kind, args[0], sep)
			if err != nil {
				return err
			}
			if output != outputText {
				return printObject(cmd.OutOrStdout(), output, s)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "lesser:  %s\ngreater: %s\nempty:   %t\n", s.Lesser, s.Greater, s.Empty)
			return err
		},
	}
	addBoundFlags(cmd, &kind, &sep)
	addOutputFlag(cmd, &output)
	return cmd
}

func newRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List the relations and their inverses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range interval.RelationValues() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", r, r.Inverse()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newMatrixCmd() *cobra.Command {
	var selector, output string

	cmd := &cobra.Command{
		Use:   "matrix FILE",
		Short: "Relate every pair of intervals defined in FILE",
		Long: `Relate every ordered pair of named intervals defined in a yaml or json FILE:

  kind: int
  intervals:
  - name: a
    value: 1-5
    labels:
      team: net
  - name: b
    value: 5-9

Pairs can be filtered with a label selector over the labels relation,
inverse, x and y plus the labels of each interval prefixed by x/ and y/.`,
		Example: `  rampart matrix intervals.yaml --selector 'relation in (overlaps,overlapped-by)'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := labels.Parse(selector)
			if err != nil {
				return errors.Wrapf(err, "invalid selector %q", selector)
			}
			doc, err := matrix.Load(args[0])
			if err != nil {
				return err
			}
			slog.Debug("Loaded intervals", "file", args[0], "kind", doc.Kind, "count", len(doc.Intervals))

			pairs, err := matrix.Relate(doc, sel)
			if err != nil {
				return err
			}
			if output != outputText {
				return printObject(cmd.OutOrStdout(), output, pairs)
			}
			for _, p := range pairs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "l", "", "label selector to filter pairs")
	addOutputFlag(cmd, &output)
	return cmd
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", outputText, "output format, one of text, yaml or json")
}

func printObject(w io.Writer, output string, obj any) error {
	var b []byte
	var err error
	switch output {
	case outputYAML:
		b, err = yaml.Marshal(obj)
	case outputJSON:
		b, err = json.MarshalIndent(obj, "", "  ")
		b = append(b, '\n')
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
