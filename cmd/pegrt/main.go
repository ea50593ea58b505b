package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pegrt",
		Short:        "Run the built-in PEG grammars over some input",
		SilenceUsage: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newEvalCmd())

	return rootCmd
}
