package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexviz/internal/regex"
)

func newPostfixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "postfix <expression>",
		Short: "Print the postfix form of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			p, err := regex.ToPostfix(expr)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), formatCompileError(expr, err))
				return &reportedError{err}
			}
			a.logger.Debug("converted to postfix", zap.String("expr", expr), zap.Int("tokens", len(p)))
			fmt.Fprintln(cmd.OutOrStdout(), postfixStyle.Sprint(p.String()))
			return nil
		},
	}
}
