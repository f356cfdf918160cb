package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2adf/internal/config"
)

// envPrefix is shared by every environment variable the CLI reads.
const envPrefix = "MD2ADF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // MD2ADF_CONFIG: config file name or path
	InputDir    string // MD2ADF_INPUT_DIR: default input directory
	OutputDir   string // MD2ADF_OUTPUT_DIR: default output directory
	MediaLayout string // MD2ADF_MEDIA_LAYOUT: center, wide, full-width, ...
	BaseURL     string // MD2ADF_BASE_URL: base for relative image and link targets
	Workers     int    // MD2ADF_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2ADF_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2ADF_CONFIG":       true,
	"MD2ADF_INPUT_DIR":    true,
	"MD2ADF_OUTPUT_DIR":   true,
	"MD2ADF_MEDIA_LAYOUT": true,
	"MD2ADF_BASE_URL":     true,
	"MD2ADF_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("MD2ADF_CONFIG"),
		InputDir:    os.Getenv("MD2ADF_INPUT_DIR"),
		OutputDir:   os.Getenv("MD2ADF_OUTPUT_DIR"),
		MediaLayout: os.Getenv("MD2ADF_MEDIA_LAYOUT"),
		BaseURL:     os.Getenv("MD2ADF_BASE_URL"),
	}

	if workers := os.Getenv("MD2ADF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2ADF_* variables.
// Helps catch typos like MD2ADF_OUTPUT instead of MD2ADF_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are merged afterwards
// and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.MediaLayout != "" {
		cfg.Media.Layout = env.MediaLayout
	}
	if env.BaseURL != "" {
		cfg.Media.BaseURL = env.BaseURL
	}
}

// resolveConfigName picks the config to load: the --config flag, then
// MD2ADF_CONFIG. Empty means built-in defaults.
func resolveConfigName(flagConfig string, env *envConfig) string {
	if flagConfig != "" {
		return flagConfig
	}
	return env.ConfigPath
}

// loadEffectiveConfig loads the named config (or defaults) and applies the
// environment on top.
func loadEffectiveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if name := resolveConfigName(flagConfig, env); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyEnvConfig(env, cfg)
	return cfg, nil
}
