package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/uccharana/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uccharana [words]",
		Short: "English to Telugu Pronunciation Converter",
		Long: `uccharana converts English words into their Telugu pronunciations.

It sends each word to an LLM completion endpoint and collects the
Latin-script and Telugu-script pronunciations into a JSON report.

Examples:
  uccharana                           # Launch interactive GUI (default)
  uccharana "toilet, computer, book"  # Convert a comma separated list via CLI
  uccharana --batch words.txt         # Process words from file
  uccharana --history                 # Show recent successful lookups`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.uccharana.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Directory for exported JSON files")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one or more per line)")
	cmd.Flags().BoolVar(&flags.SkipExport, "skip-export", false, "Skip writing the JSON export file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models available for the current API key")
	cmd.Flags().BoolVar(&flags.History, "history", false, "Show recent successful lookups and exit")
	cmd.Flags().IntVar(&flags.HistoryLimit, "history-limit", flags.HistoryLimit, "Number of history entries to show")

	// Completion endpoint flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Completion provider (together or gemini)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model to query (default depends on provider)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Override the completion endpoint base URL")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogDir, "log-dir", flags.LogDir, "Directory for daily log files")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (debug, info, warn, error)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("api.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("api.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("api.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("log.directory", cmd.Flags().Lookup("log-dir"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".uccharana" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".uccharana")
	}

	// Environment variables
	viper.SetEnvPrefix("UCCHARANA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the API key for the given provider from environment
// or config
func GetAPIKey(provider string) string {
	switch provider {
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("api.gemini_key")
	default:
		if key := os.Getenv("TOGETHER_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("api.together_key")
	}
}

// StateDir returns the directory holding persistent application state,
// creating it if needed. The lookup history database lives here.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "state", "uccharana")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}

	return dir, nil
}

// ParseLogLevel maps a level name to its slog level. Unknown names fall
// back to info.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
