package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdtracker/td/internal/config"
	"github.com/tdtracker/td/internal/testsupport"
)

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.Storage.Root != "" {
		t.Error("expected empty Root")
	}

	if cfg.Storage.FallbackNamespace != "" {
		t.Error("expected empty FallbackNamespace")
	}
}

func TestLoad_ProjectFile(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `
[storage]
root = "/srv/tasks"
fallback-namespace = "scratch"
`

	if err := os.WriteFile(filepath.Join(tmpDir, "td.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Root != "/srv/tasks" {
		t.Errorf("Root = %q, expected %q", cfg.Storage.Root, "/srv/tasks")
	}

	if cfg.Storage.FallbackNamespace != "scratch" {
		t.Errorf("FallbackNamespace = %q, expected %q", cfg.Storage.FallbackNamespace, "scratch")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	globalDir := filepath.Join(homeDir, ".config", "td")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}

	globalContent := `
[storage]
root = "/global/tasks"
fallback-namespace = "unscoped"
`
	if err := os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(globalContent), 0644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	projectContent := `
[storage]
root = "/project/tasks"
`
	if err := os.WriteFile(filepath.Join(tmpDir, "td.toml"), []byte(projectContent), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Root != "/project/tasks" {
		t.Errorf("Root = %q, expected project value %q", cfg.Storage.Root, "/project/tasks")
	}

	if cfg.Storage.FallbackNamespace != "unscoped" {
		t.Errorf("FallbackNamespace = %q, expected global value %q", cfg.Storage.FallbackNamespace, "unscoped")
	}
}

func TestLoad_Malformed(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "td.toml"), []byte("[storage\nroot ="), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
