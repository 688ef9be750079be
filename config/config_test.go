package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

// isolate runs the test from an empty directory so godotenv.Load() finds no .env file
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{"API_BASE_URL", "API_TIMEOUT", "PORT", "LOG_LEVEL", "TZ_NAME"} {
		t.Setenv(key, "")
	}
}

func TestConfigLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("expected default API_BASE_URL, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("expected default timeout of 10s, got %s", cfg.APITimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default PORT to be '8080', got %q", cfg.Port)
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.Location != time.Local {
		t.Errorf("expected local time zone, got %s", cfg.Location)
	}
}

func TestConfigLoad_WithEnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("API_BASE_URL", "http://backend:9000")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TZ_NAME", "Asia/Shanghai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIBaseURL != "http://backend:9000" {
		t.Errorf("expected API_BASE_URL from env, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.APITimeout)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected PORT to be '3000', got %q", cfg.Port)
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.Location.String() != "Asia/Shanghai" {
		t.Errorf("expected Asia/Shanghai, got %s", cfg.Location)
	}
}

func TestConfigLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"API_TIMEOUT": "soon",
		"LOG_LEVEL":   "chatty",
		"TZ_NAME":     "Nowhere/Special",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q, got nil", key, value)
			}
		})
	}
}

func TestConfigLoad_NonPositiveTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("API_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero timeout, got nil")
	}
}

func TestConfigLoad_DotEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("PORT")

	dir, _ := os.Getwd()
	envContent := "API_BASE_URL=http://dotenv:8000\nPORT=4000\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(envContent), 0644); err != nil {
		t.Fatalf("failed to write .env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("PORT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIBaseURL != "http://dotenv:8000" {
		t.Errorf("expected API_BASE_URL from .env, got %q", cfg.APIBaseURL)
	}
	if cfg.Port != "4000" {
		t.Errorf("expected PORT from .env, got %q", cfg.Port)
	}
}

func TestConfigLoad_ShellEnvTakesPrecedence(t *testing.T) {
	isolate(t)

	dir, _ := os.Getwd()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=4000\n"), 0644); err != nil {
		t.Fatalf("failed to write .env file: %v", err)
	}
	t.Setenv("PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected shell PORT to take precedence, got %q", cfg.Port)
	}
}
