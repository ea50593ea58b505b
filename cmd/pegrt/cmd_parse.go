package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hucsmn/pegrt"
)

func newParseCmd() *cobra.Command {
	var grammar string
	var rule string
	var outputFormat string
	var file string

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Parse input with a built-in grammar and dump the result tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			table, err := lookupGrammar(grammar)
			if err != nil {
				return err
			}
			name, input, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			tree, err := s.config.Parse(table, input, rule, nil)
			if err != nil {
				var perr *pegrt.ParseError
				if errors.As(err, &perr) {
					writeDiagnostic(cmd.ErrOrStderr(), name, input, perr)
					return errors.Errorf("%s: syntax error", name)
				}
				return errors.Wrap(err, name)
			}
			defer tree.Free()

			s.log.WithFields(logrus.Fields{
				"input":    name,
				"consumed": tree.End(),
				"size":     len(input),
			}).Info("parsed")
			return writeTree(cmd.OutOrStdout(), outputFormat, newTreeNode(tree, input))
		},
	}

	addGrammarFlag(cmd.Flags(), &grammar)
	cmd.Flags().StringVarP(&rule, "rule", "r", "", "rule to start from (default: the grammar's start rule)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().StringVar(&file, "file", "", "read input from file instead of the arguments or standard input")

	return cmd
}
