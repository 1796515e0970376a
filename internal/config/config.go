package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings. It is assembled once in main
// and passed into the components that need it; nothing reads the environment
// after startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"5001"`
	// SecretKey is reserved for future signing use. No endpoint consumes it
	// yet; a random key is generated when the variable is unset.
	SecretKey string `env:"SECRET_KEY"`
	// DatabasePath locates the SQLite database file. Accepts a plain path or
	// a sqlite:/// URI.
	DatabasePath string `env:"DATABASE_URL" envDefault:"yecs.db"`
	// UploadDir is declared for future file uploads and unused by any
	// endpoint.
	UploadDir string `env:"UPLOAD_FOLDER" envDefault:"uploads"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SecretKey == "" {
		key, err := randomHex(16)
		if err != nil {
			return Config{}, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.SecretKey = key
	}

	cfg.DatabasePath = stripSQLiteScheme(cfg.DatabasePath)
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return Config{}, fmt.Errorf("DATABASE_URL must name a database file")
	}

	return cfg, nil
}

// stripSQLiteScheme reduces a sqlite:/// URI to its file path so both the
// URI form and a bare path work as DATABASE_URL values.
func stripSQLiteScheme(value string) string {
	if rest, ok := strings.CutPrefix(value, "sqlite:///"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(value, "sqlite://"); ok {
		return rest
	}
	return value
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
