// Command genenet fetches Arabidopsis gene interactions from IntAct, groups
// them into networks, annotates each network with KEGG pathways and GO
// processes, and serves the results over HTTP.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/genenet/client"
	"github.com/persistorai/genenet/internal/config"
)

const defaultURL = "http://localhost:3030"

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	apiClient   *client.Client
	flagURL     string
	flagFmt     string
	flagLogLvl  string
	fileQuality *float64
)

type configFile struct {
	// Flat format
	URL      string   `yaml:"url"`
	LogLevel string   `yaml:"log_level"`
	Quality  *float64 `yaml:"quality"`
	// Profile format
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL     string   `yaml:"url"`
	Quality *float64 `yaml:"quality"`
}

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("genenet version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("genenet version %s", config.Version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "genenet",
		Short:   "Build annotated gene interaction networks from IntAct",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			apiClient = client.New(flagURL)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "genenet server URL (env: GENENET_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")
	rootCmd.PersistentFlags().StringVar(&flagLogLvl, "log-level", "", "Log level (env: LOG_LEVEL, default info)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newNetworksCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newRunsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("GENENET_URL"); v != "" {
			flagURL = v
		}
	}
	if flagLogLvl == "" {
		flagLogLvl = os.Getenv("LOG_LEVEL")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".genenet", "config.yaml"))
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}

	resolvedURL := cfg.URL
	resolvedQuality := cfg.Quality
	if cfg.Profiles != nil {
		profileName := cfg.ActiveProfile
		if profileName == "" {
			profileName = "default"
		}
		if p, ok := cfg.Profiles[profileName]; ok {
			if p.URL != "" {
				resolvedURL = p.URL
			}
			if p.Quality != nil {
				resolvedQuality = p.Quality
			}
		}
	}
	if flagURL == defaultURL && resolvedURL != "" {
		flagURL = resolvedURL
	}
	if flagLogLvl == "" && cfg.LogLevel != "" {
		flagLogLvl = cfg.LogLevel
	}
	fileQuality = resolvedQuality
}

// newLogger builds the CLI logger. Serve switches it to JSON.
func newLogger() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl := flagLogLvl
	if lvl == "" {
		lvl = "info"
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	log.SetLevel(level)

	return log, nil
}
