// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Data      DataConfig
	Backend   BackendConfig
	Providers ProvidersConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds local durable storage configuration.
type DataConfig struct {
	// BasePath is the directory holding the badger database.
	BasePath string
}

// BackendConfig holds the recommendation backend configuration.
type BackendConfig struct {
	// BaseURL of the recommendation/catalog backend.
	BaseURL string
	// Timeout for backend requests (default: 30s, recommendation
	// generation is slow).
	Timeout time.Duration
}

// ProvidersConfig holds external catalog provider configuration.
type ProvidersConfig struct {
	// OMDBAPIKey authenticates against the film/series provider.
	// Empty means the provider is unavailable and image/rating lookups
	// for movies and series degrade to placeholders.
	OMDBAPIKey string
	// OMDBBaseURL overrides the film/series provider endpoint.
	OMDBBaseURL string
	// JikanBaseURL overrides the anime/manga provider endpoint.
	JikanBaseURL string
	// Timeout for provider requests (default: 15s).
	Timeout time.Duration
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Base path for local data storage")
	backendURL := flag.String("backend-url", "", "Recommendation backend base URL")
	backendTimeout := flag.String("backend-timeout", "", "Backend request timeout (default: 30s)")
	omdbKey := flag.String("omdb-api-key", "", "OMDb API key")
	omdbURL := flag.String("omdb-url", "", "OMDb base URL")
	jikanURL := flag.String("jikan-url", "", "Jikan base URL")
	providerTimeout := flag.String("provider-timeout", "", "Provider request timeout (default: 15s)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Backend: BackendConfig{
			BaseURL: getConfigValue(*backendURL, "BACKEND_URL", "http://127.0.0.1:8001"),
		},
		Providers: ProvidersConfig{
			OMDBAPIKey:   getConfigValue(*omdbKey, "OMDB_API_KEY", ""),
			OMDBBaseURL:  getConfigValue(*omdbURL, "OMDB_URL", "https://www.omdbapi.com"),
			JikanBaseURL: getConfigValue(*jikanURL, "JIKAN_URL", "https://api.jikan.moe"),
		},
	}

	backendTimeoutStr := getConfigValue(*backendTimeout, "BACKEND_TIMEOUT", "30s")
	backendTimeoutDuration, err := time.ParseDuration(backendTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout %q: %w", backendTimeoutStr, err)
	}
	cfg.Backend.Timeout = backendTimeoutDuration

	providerTimeoutStr := getConfigValue(*providerTimeout, "PROVIDER_TIMEOUT", "15s")
	providerTimeoutDuration, err := time.ParseDuration(providerTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid provider timeout %q: %w", providerTimeoutStr, err)
	}
	cfg.Providers.Timeout = providerTimeoutDuration

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.BasePath == "" {
		return errors.New("data base path cannot be empty after expansion")
	}

	for name, raw := range map[string]string{
		"backend URL": c.Backend.BaseURL,
		"OMDb URL":    c.Providers.OMDBBaseURL,
		"Jikan URL":   c.Providers.JikanBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}

	// OMDBAPIKey may be empty - the film/series provider is then treated
	// as unavailable and lookups degrade to placeholders.

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDataPath expands ~ and makes the path absolute.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Otakuverse", "data")

	expanded, err := expandPath(c.Data.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Data.BasePath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
