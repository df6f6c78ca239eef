// In file: cmd/gateway/config.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the gateway, loaded from the environment and config files.
type AppConfig struct {
	Port    string
	GinMode string
	// DefaultAPIKey is the process-wide Gemini key. It may be empty, in which
	// case every invocation needs a credential override.
	DefaultAPIKey string
	Model         string
	RedisAddr     string
	LogLevel      string

	ConfigFile     string
	CatalogFile    string
	AllowedOrigins []string

	// DotenvLoaded reports whether a .env file was found; main logs it.
	DotenvLoaded bool
}

// fileConfig is the layout of the optional config.yaml.
type fileConfig struct {
	CatalogFile string `yaml:"catalog_file"`
	CORS        struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// LoadConfig loads all configuration from a .env file, environment variables, and config.yaml.
func LoadConfig() (*AppConfig, error) {
	// In release mode (Docker) configuration comes straight from the environment.
	dotenvLoaded := false
	if os.Getenv("GIN_MODE") != "release" {
		dotenvLoaded = godotenv.Load() == nil
	}

	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.DotenvLoaded = dotenvLoaded
	return cfg, nil
}

// configFromEnv reads the environment and the YAML file it points to.
func configFromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:       envOr("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		Model:      strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		LogLevel:   envOr("LOG_LEVEL", "info"),
		ConfigFile: envOr("CONFIG_FILE", "config.yaml"),
	}

	cfg.DefaultAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if cfg.DefaultAPIKey == "" {
		cfg.DefaultAPIKey = strings.TrimSpace(os.Getenv("API_KEY"))
	}

	raw, err := os.ReadFile(cfg.ConfigFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", cfg.ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfg.ConfigFile, err)
	}
	cfg.CatalogFile = strings.TrimSpace(fc.CatalogFile)
	cfg.AllowedOrigins = fc.CORS.AllowedOrigins
	return cfg, nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
