package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexviz/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(a.cfgFile, config.Default()); err != nil {
				a.logger.Error("Error initializing config file", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", a.cfgFile)
			return nil
		},
	}
}
