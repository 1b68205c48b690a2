package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/waabox/hacknow/internal/config"
)

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("HACKNOW_PROJECT_DIR", "")
	t.Setenv("HACKNOW_HOST", "")
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
project_dir = "/srv/code"
ssh = true
host = "git.example.com"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectDir != "/srv/code" {
		t.Errorf("expected project dir '/srv/code', got '%s'", cfg.ProjectDir)
	}
	if !cfg.SSH {
		t.Error("expected ssh to be true")
	}
	if cfg.HostOrDefault() != "git.example.com" {
		t.Errorf("expected host 'git.example.com', got '%s'", cfg.HostOrDefault())
	}
}

func TestLoad_EnvVarsTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
project_dir = "/from/file"
host = "file.example.com"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HACKNOW_PROJECT_DIR", "/from/env")
	t.Setenv("HACKNOW_HOST", "env.example.com")

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectDir != "/from/env" {
		t.Errorf("expected env project dir '/from/env', got '%s'", cfg.ProjectDir)
	}
	if cfg.Host != "env.example.com" {
		t.Errorf("expected env host 'env.example.com', got '%s'", cfg.Host)
	}
}

func TestLoad_MissingFileIsNotError(t *testing.T) {
	t.Setenv("HACKNOW_PROJECT_DIR", "/only/env")
	t.Setenv("HACKNOW_HOST", "")
	cfg, err := config.LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("missing file should not be an error, got: %v", err)
	}
	if cfg.ProjectDir != "/only/env" {
		t.Errorf("expected project dir from env, got '%s'", cfg.ProjectDir)
	}
	if cfg.HostOrDefault() != "github.com" {
		t.Errorf("expected default host 'github.com', got '%s'", cfg.HostOrDefault())
	}
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("project_dir = [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadFrom(configPath); err == nil {
		t.Fatal("expected error for malformed config, got nil")
	}
}

func TestProjectDirOrDefault(t *testing.T) {
	home := "/home/dev"
	cases := []struct {
		name       string
		projectDir string
		want       string
	}{
		{"unset falls back to home", "", "/home/dev"},
		{"absolute kept", "/srv/code", "/srv/code"},
		{"tilde expanded", "~/src", "/home/dev/src"},
		{"bare tilde", "~", "/home/dev"},
		{"tilde user untouched", "~other/src", "~other/src"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := config.Config{ProjectDir: tc.projectDir}.ProjectDirOrDefault(home)
			if got != tc.want {
				t.Errorf("expected '%s', got '%s'", tc.want, got)
			}
		})
	}
}
