// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the airlit CLI, which compiles a
// weekly air pollution literature review from PubMed and Crossref.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZeyadKm/airlit/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, then the secret value for key,
// then "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the airlit CLI.
var rootCmd = &cobra.Command{
	Use:   "airlit",
	Short: "Compile a weekly air pollution literature review",
	Long: `airlit retrieves recently published scholarly articles about air pollution
from PubMed and Crossref, deduplicates them across sources, and synthesises
a short narrative literature review with numbered citations.

Use "airlit fetch" to inspect the deduplicated article list, or
"airlit review" to generate the review, write it to a file, and optionally
deliver it by email.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadedSecrets = secrets.Load(".secrets/")
		if len(loadedSecrets) > 0 {
			keys := make([]string, 0, len(loadedSecrets))
			for k := range loadedSecrets {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./airlit.yaml or ~/.config/airlit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("airlit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "airlit"))
		}
	}

	viper.SetDefault("email.port", 587)
	viper.SetDefault("email.use_tls", true)

	viper.SetEnvPrefix("AIRLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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
