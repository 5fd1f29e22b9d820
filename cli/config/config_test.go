package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skiff.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	yaml := `max_workers: 6
test_runner: tap
test_path_pattern: "integration/.*"
watch_extensions:
  - go
  - yaml
coverage: true
bail: false
cache: false
watcher: true
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxWorkers != 6 {
		t.Errorf("max_workers = %d, want 6", cfg.MaxWorkers)
	}
	if cfg.TestRunner != "tap" {
		t.Errorf("test_runner = %q", cfg.TestRunner)
	}
	if cfg.TestPathPattern != "integration/.*" {
		t.Errorf("test_path_pattern = %q", cfg.TestPathPattern)
	}
	if len(cfg.WatchExtensions) != 2 || cfg.WatchExtensions[0] != "go" {
		t.Errorf("watch_extensions = %v", cfg.WatchExtensions)
	}
	if cfg.Coverage == nil || !*cfg.Coverage {
		t.Error("coverage should be set true")
	}
	if cfg.Bail == nil || *cfg.Bail {
		t.Error("bail should be set false")
	}
	if cfg.Cache == nil || *cfg.Cache {
		t.Error("cache should be set false")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	cfg, err := Load(writeTemp(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cache != nil || cfg.Watcher != nil || cfg.Bail != nil || cfg.Coverage != nil {
		t.Error("unset boolean options should stay nil")
	}
	if cfg.MaxWorkers != 0 {
		t.Errorf("max_workers = %d, want 0", cfg.MaxWorkers)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/skiff.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should say the file is missing", err.Error())
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeTemp(t, "{{invalid yaml")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SKIFF_TEST_RUNNER", "tap")
	cfg, err := Load(writeTemp(t, "test_runner: ${SKIFF_TEST_RUNNER}\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TestRunner != "tap" {
		t.Errorf("test_runner = %q, want expanded value", cfg.TestRunner)
	}
}
