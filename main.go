package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ile-lang/simp/cmd"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "simp [subcommand]",
	Short:        "simp\n a proof-producing term simplifier",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.RunCmd)
}
