package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	simp "github.com/ile-lang/simp/simp"
	"github.com/ile-lang/simp/internal/demo"
	"github.com/ile-lang/simp/internal/log"
	"github.com/ile-lang/simp/relrel"
	"github.com/ile-lang/simp/simperr"
	"github.com/ile-lang/simp/tctx"
)

var logLevel string

// RunCmd simplifies a single fully-parenthesised prefix term against the
// demonstrator's worked lemma set and prints the result alongside its
// proof term.
var RunCmd = &cobra.Command{
	Use:          "run \"(add n zero)\"",
	Short:        "simplify a term against the built-in demo lemma set",
	RunE:         runRun,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	RunCmd.Flags().StringVarP(&logLevel, "log-level", "l", "warn", "log level: debug, info, warn, error")
}

func runRun(cmd *cobra.Command, args []string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	log.SetLevel(lvl)

	e, err := demo.Parse(args[0])
	if err != nil {
		return fmt.Errorf("could not parse term: %w", err)
	}

	ctx := tctx.New(nil, nil, nil)
	env := relrel.NewEnv()
	idx := demo.DefaultIndex()

	newTerm, proof, err := simp.Simplify(cmd.Context(), ctx, env, simp.DefaultConfig(), idx, relrel.Eq, e)
	if errors.Is(err, simperr.NothingToSimplify) {
		fmt.Fprintln(cmd.OutOrStdout(), e)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not simplify: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), newTerm)
	fmt.Fprintln(cmd.OutOrStdout(), proof)
	return nil
}
