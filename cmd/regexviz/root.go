package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexviz/internal/config"
)

const defaultTimeout = time.Minute

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	timeout time.Duration

	logger *zap.Logger
	cfg    config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), cfg: config.Default()}

	root := &cobra.Command{
		Use:           "regexviz",
		Short:         "regexviz - compile regular expressions to Thompson NFAs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("configuration loaded", zap.String("path", a.cfgFile), zap.Any("config", cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultPath, "Path to the configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", defaultTimeout, "Timeout for a single run")

	root.AddCommand(newPostfixCmd(a))
	root.AddCommand(newNFACmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newInitCmd(a))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
