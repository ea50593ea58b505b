package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules of a built-in grammar in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := lookupGrammar(grammar)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range table.Names() {
				mark := " "
				if name == table.Start() {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, name)
			}
			return nil
		},
	}

	addGrammarFlag(cmd.Flags(), &grammar)

	return cmd
}
