// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the unit-converter CLI. With no
// subcommand it runs the interactive loop: type "5 kg to g", get
// "5.0 kilograms is 5000.0 grams", type "exit" to leave.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/unit-converter/internal/catalog"
	"github.com/pdiddy/unit-converter/internal/convert"
	"github.com/pdiddy/unit-converter/internal/logging"
	"github.com/pdiddy/unit-converter/internal/repl"
	"github.com/pdiddy/unit-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the unit-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "unit-converter",
	Short: "Interactive converter for length, weight, and temperature units",
	Long: `unit-converter reads lines of the form

    <value> <unit> to <unit>

and answers each with a sentence such as "1.0 meter is 100.0 centimeters".
Units are case-insensitive; temperatures may be written as "degrees celsius".
Type exit to quit.

Conversions stay within one category: length (m, km, cm, mm, mi, yd, ft, in),
weight (g, kg, mg, lb, oz), or temperature (c, f, k). Run "unit-converter units"
for every accepted spelling.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	units, err := catalog.Load()
	if err != nil {
		return err
	}

	summary, err := repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), convert.New(units, logger), cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("session finished",
		"converted", summary.Converted, "impossible", summary.Impossible, "rejected", summary.Rejected)
	return nil
}

// loadConfig reads the effective settings from v, filling unset keys with
// defaults.
func loadConfig(v *viper.Viper) (types.Config, error) {
	def := types.DefaultConfig()
	v.SetDefault("prompt", def.Prompt)
	v.SetDefault("exit", def.Exit)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Exit == "" {
		return types.Config{}, fmt.Errorf("exit sentinel must not be empty")
	}
	return cfg, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./unit-converter.yaml or ~/.config/unit-converter/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "", "diagnostic log format: text or json")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("unit-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "unit-converter"))
		}
	}

	viper.SetEnvPrefix("UNIT_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
