package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.conf")

	cfg := New(configPath)

	if err := cfg.Set(KeyAPIEndpoint, "https://api.example.test"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cfg.Set(KeyAPIToken, "tok_123"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Load config in new instance
	cfg2 := New(configPath)
	if err := cfg2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val := cfg2.GetOrDefault(KeyAPIEndpoint, ""); val != "https://api.example.test" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "https://api.example.test")
	}
	if val := cfg2.GetOrDefault(KeyAPIToken, ""); val != "tok_123" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "tok_123")
	}
}

func TestConfigGet(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")

	val, err := cfg.Get("KEY1")
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if val != "value1" {
		t.Errorf("Get() = %v, want %v", val, "value1")
	}

	_, err = cfg.Get("NONEXISTENT")
	if err == nil {
		t.Error("Get() error = nil, want error for non-existent key")
	}
}

func TestConfigGetOrDefault(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	val := cfg.GetOrDefault("NONEXISTENT", "default_value")
	if val != "default_value" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "default_value")
	}

	// The defaults table beats the provided fallback
	val = cfg.GetOrDefault(KeyAliasFile, "fallback")
	if val != Defaults[KeyAliasFile] {
		t.Errorf("GetOrDefault() = %v, want table default %v", val, Defaults[KeyAliasFile])
	}

	cfg.Set("KEY1", "value1")
	val = cfg.GetOrDefault("KEY1", "default")
	if val != "value1" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "value1")
	}
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	if cfg.Exists("NONEXISTENT") {
		t.Error("Exists() = true, want false for non-existent key")
	}

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Exists() = false, want true for existing key")
	}
}

func TestConfigDelete(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Key should exist after Set()")
	}

	cfg.Delete("KEY1")
	if cfg.Exists("KEY1") {
		t.Error("Key should not exist after Delete()")
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "nonexistent.conf"))

	err := cfg.Load()
	if err != nil {
		t.Errorf("Load() on non-existent file error = %v, want nil", err)
	}
}

func TestConfigFilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.conf")
	cfg := New(configPath)

	if err := cfg.Set(KeyAPIToken, "secret"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestConfigSkipsCommentsAndBlankLines(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.conf")

	content := "# comment\n\nKEY1=value1\n  \n# another\nKEY2 = value2\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg := New(configPath)
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if val := cfg.GetOrDefault("KEY1", ""); val != "value1" {
		t.Errorf("KEY1 = %q, want %q", val, "value1")
	}
	if val := cfg.GetOrDefault("KEY2", ""); val != "value2" {
		t.Errorf("KEY2 = %q, want %q (whitespace trimmed)", val, "value2")
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := "/tmp/test.conf"
	cfg := New(expectedPath)

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}
}
