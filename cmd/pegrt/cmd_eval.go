package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hucsmn/pegrt"
	"github.com/hucsmn/pegrt/example/rpn"
)

func newEvalCmd() *cobra.Command {
	var file string
	var showStack bool

	cmd := &cobra.Command{
		Use:   "eval [program...]",
		Short: "Evaluate a reverse polish calculator program",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			name, input, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			state := rpn.NewState(rpn.Builtins)
			state.SetOutput(cmd.OutOrStdout())
			if err := state.CalculateWith(s.config, string(input)); err != nil {
				var perr *pegrt.ParseError
				if errors.As(err, &perr) {
					writeDiagnostic(cmd.ErrOrStderr(), name, input, perr)
					return errors.Errorf("%s: syntax error", name)
				}
				return errors.Wrap(err, name)
			}
			if showStack {
				fmt.Fprintf(cmd.OutOrStdout(), "stack: %d\n", state.Stack())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the program from file instead of the arguments or standard input")
	cmd.Flags().BoolVar(&showStack, "stack", false, "print the stack once the program ends")

	return cmd
}
