package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/henderiw/rampart/pkg/bound"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "(devel)"

// Execute runs the rampart command line with os.Args and returns the exit
// code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "rampart",
		Short:         "Relate intervals using Allen's interval algebra",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd.ErrOrStderr(), verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (includes debug)")

	cmd.AddCommand(
		newRelateCmd(),
		newDescribeCmd(),
		newRelationsCmd(),
		newMatrixCmd(),
	)
	return cmd
}

func setupLogger(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})))
}

// kindValue is a flag holding a bound.Kind.
type kindValue bound.Kind

var _ pflag.Value = (*kindValue)(nil)

func (r *kindValue) String() string { return bound.Kind(*r).String() }

func (r *kindValue) Set(s string) error {
	k, err := bound.KindString(s)
	if err != nil {
		return fmt.Errorf("must be one of %v", bound.KindStrings())
	}
	*r = kindValue(k)
	return nil
}

func (r *kindValue) Type() string { return "kind" }

func addBoundFlags(cmd *cobra.Command, kind *bound.Kind, sep *string) {
	cmd.Flags().VarP((*kindValue)(kind), "kind", "k", fmt.Sprintf("bound type, one of %v", bound.KindStrings()))
	cmd.Flags().StringVarP(sep, "sep", "s", "", `separator between the bounds (default "-", ".." for float, string, time and semver)`)
}
