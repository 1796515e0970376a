package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("UPLOAD_FOLDER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5001" {
		t.Fatalf("port = %q, want %q", cfg.Port, "5001")
	}
	if cfg.DatabasePath != "yecs.db" {
		t.Fatalf("database path = %q, want %q", cfg.DatabasePath, "yecs.db")
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("upload dir = %q, want %q", cfg.UploadDir, "uploads")
	}
}

func TestLoadGeneratesSecretKeyWhenUnset(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// 16 random bytes hex-encoded.
	if len(cfg.SecretKey) != 32 {
		t.Fatalf("secret key length = %d, want 32", len(cfg.SecretKey))
	}

	again, err := Load()
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if again.SecretKey == cfg.SecretKey {
		t.Fatal("expected a fresh random key per load")
	}
}

func TestLoadKeepsProvidedSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "super-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SecretKey != "super-secret" {
		t.Fatalf("secret key = %q, want %q", cfg.SecretKey, "super-secret")
	}
}

func TestLoadStripsSQLiteScheme(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sqlite:///yecs.db", "yecs.db"},
		{"sqlite:////var/data/yecs.db", "/var/data/yecs.db"},
		{"sqlite://local.db", "local.db"},
		{"plain.db", "plain.db"},
	}
	for _, tc := range cases {
		t.Setenv("DATABASE_URL", tc.in)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load %q: %v", tc.in, err)
		}
		if cfg.DatabasePath != tc.want {
			t.Fatalf("database path for %q = %q, want %q", tc.in, cfg.DatabasePath, tc.want)
		}
	}
}

func TestLoadRejectsEmptySQLiteURI(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for empty database path")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("error %q should mention DATABASE_URL", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_FOLDER", "/tmp/yecs-uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.UploadDir != "/tmp/yecs-uploads" {
		t.Fatalf("upload dir = %q, want %q", cfg.UploadDir, "/tmp/yecs-uploads")
	}
}
