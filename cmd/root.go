// Package cmd wires the neoscope subcommands: query, inspect, and the
// interactive explorer. Dataset paths and defaults come from config
// (.neoscope.yaml, NEOSCOPE_* env vars, flags).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orbitalmech/neoscope/internal/config"
	"github.com/orbitalmech/neoscope/internal/database"
	"github.com/orbitalmech/neoscope/internal/loader"
)

var rootCmd = &cobra.Command{
	Use:   "neoscope",
	Short: "Explore near-Earth objects and their close approaches",
	Long: `Neoscope loads the NASA near-Earth object and close-approach datasets,
links them by designation, and answers filtered queries about close
approaches from the command line or an interactive explorer.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .neoscope.yaml)")
	rootCmd.PersistentFlags().String("neofile", "", "path to the NEO CSV dataset")
	rootCmd.PersistentFlags().String("cadfile", "", "path to the close-approach JSON dataset")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".neoscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NEOSCOPE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig resolves config plus the persistent dataset-path overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("neofile"); p != "" {
		cfg.NEOCSV = p
	}
	if p, _ := cmd.Flags().GetString("cadfile"); p != "" {
		cfg.CADJSON = p
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg
}

// loadDatabase reads both datasets and builds the linked database.
func loadDatabase(cfg config.Config) (*database.Database, error) {
	neos, err := loader.LoadNEOs(cfg.NEOCSV)
	if err != nil {
		return nil, err
	}
	approaches, err := loader.LoadApproaches(cfg.CADJSON)
	if err != nil {
		return nil, err
	}
	return database.New(neos, approaches), nil
}
