// Package commands implements the lvstat CLI commands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvstat/internal/config"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
)

// NewRootCommand assembles the lvstat command tree. Each call owns a fresh
// viper instance, so flags bound by one tree never leak into another.
func NewRootCommand() *cobra.Command {
	viperCfg := viper.New()

	rootCmd := &cobra.Command{
		Use:   "lvstat",
		Short: "Small numeric utilities: LaTeX matrices and Hotelling's T² test",
		Long: `lvstat bundles two independent numeric utilities.

Commands:
  latex      Format a numeric matrix as a LaTeX bmatrix
  hotelling  Run Hotelling's two-sample T² test`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "config file (default ./lvstat.yaml)")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "debug logging on stderr")

	rootCmd.AddCommand(newLatexCommand(viperCfg))
	rootCmd.AddCommand(newHotellingCommand(viperCfg))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig resolves defaults, file, env and bound flags, then builds the logger.
func loadConfig(cmd *cobra.Command, viperCfg *viper.Viper) (*config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(viperCfg, path)
	if err != nil {
		return nil, nil, err
	}

	verbose, err := cmd.Flags().GetBool(flagVerbose)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, cfg.Logging.NewLogger(cmd.ErrOrStderr()), nil
}

// bindFlag ties a command flag to a config key; a set flag wins over file and env.
func bindFlag(viperCfg *viper.Viper, cmd *cobra.Command, key, flag string) {
	if err := viperCfg.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", flag, err))
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvstat %s (commit: %s)\n", Version, Commit)
		},
	}
}
