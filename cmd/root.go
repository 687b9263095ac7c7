// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/naka-gawa/devfolio/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "A developer portfolio server with a live GitHub activity section.",
	Long: `devfolio serves a single-page developer portfolio. Its GitHub section is
backed by a small proxy that never fails: without a GITHUB_TOKEN, or when
GitHub is unavailable, it serves built-in demo data instead.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./devfolio.yaml if present)")
}

// loadConfig reads the configuration for cmd, binding the given local flags
// to their config keys, and builds the logger.
func loadConfig(cmd *cobra.Command, flagKeys map[string]string) (*config.Config, zerolog.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")
	v, err := config.NewViper(configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := bindFlags(v, cmd, flagKeys); err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, newLogger(cfg.Verbose), nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, flagKeys map[string]string) error {
	if err := v.BindPFlag("verbose", cmd.Flags().Lookup("verbose")); err != nil {
		return fmt.Errorf("failed to bind --verbose: %w", err)
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
