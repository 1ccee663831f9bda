package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "uccharana [words]" {
		t.Errorf("Expected Use to be 'uccharana [words]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Telugu Pronunciation Converter") {
		t.Errorf("Expected Short description to contain 'Telugu Pronunciation Converter'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"output", true},
		{"batch", true},
		{"skip-export", true},
		{"list-models", true},
		{"history", true},
		{"history-limit", true},
		{"provider", true},
		{"model", true},
		{"base-url", true},
		{"log-dir", true},
		{"log-level", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	outputFlag := cmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != "." {
		t.Errorf("Expected output default '.', got %s", outputFlag.DefValue)
	}

	providerFlag := cmd.Flags().Lookup("provider")
	if providerFlag == nil {
		t.Fatal("provider flag not found")
	}
	if providerFlag.DefValue != "together" {
		t.Errorf("Expected provider default 'together', got %s", providerFlag.DefValue)
	}
}

func TestInitConfig_WithFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "api:\n  model: custom-model\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	InitConfig(cfgPath)

	if got := viper.GetString("api.model"); got != "custom-model" {
		t.Errorf("Expected api.model 'custom-model', got %s", got)
	}
}

func TestGetAPIKey_EnvPrecedence(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	os.Setenv("TOGETHER_API_KEY", "env-together-key")
	defer os.Unsetenv("TOGETHER_API_KEY")
	viper.Set("api.together_key", "config-together-key")

	if got := GetAPIKey("together"); got != "env-together-key" {
		t.Errorf("Expected environment key to win, got %s", got)
	}

	os.Unsetenv("TOGETHER_API_KEY")
	if got := GetAPIKey("together"); got != "config-together-key" {
		t.Errorf("Expected config key as fallback, got %s", got)
	}
}

func TestGetAPIKey_Gemini(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	os.Setenv("GEMINI_API_KEY", "env-gemini-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	if got := GetAPIKey("gemini"); got != "env-gemini-key" {
		t.Errorf("Expected gemini key from environment, got %s", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.name); got != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
