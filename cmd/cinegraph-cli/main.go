// Command cinegraph-cli is a terminal client for the cinegraph movies API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cinegraph/cinegraph/client"
)

// Build-time variables set via ldflags.
var (
	version   = "1.0.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:8080"

var (
	apiClient *client.Client
	flagURL   string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("cinegraph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("cinegraph version %s-dev", version)
}

type configFile struct {
	URL    string `yaml:"url"`
	Format string `yaml:"format"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "cinegraph",
		Short:   "cinegraph CLI - browse the movies graph",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			apiClient = client.New(flagURL)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "cinegraph server URL (env: CINEGRAPH_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table")

	doctorCmd := newDoctorCmd()
	doctorCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {} // skip client setup

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(newMovieCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newGraphCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("CINEGRAPH_URL"); v != "" {
			flagURL = v
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	cfgPath := filepath.Join(home, ".cinegraph", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	if flagURL == defaultURL && cfg.URL != "" {
		flagURL = cfg.URL
	}
	if flagFmt == "json" && cfg.Format != "" {
		flagFmt = cfg.Format
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
