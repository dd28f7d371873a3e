package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := readConfig("")
	if err != nil {
		t.Fatalf("readConfig -> error %v", err)
	}
	if cfg.Listen != "localhost:3636" {
		t.Errorf("Listen -> %q, want %q", cfg.Listen, "localhost:3636")
	}
	if cfg.DB != "" {
		t.Errorf("DB -> %q, want empty", cfg.DB)
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xprd.yaml")
	content := "listen: 0.0.0.0:9000\ndb: /var/lib/xprd/results.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig -> error %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen -> %q, want %q", cfg.Listen, "0.0.0.0:9000")
	}
	if cfg.DB != "/var/lib/xprd/results.db" {
		t.Errorf("DB -> %q, want %q", cfg.DB, "/var/lib/xprd/results.db")
	}
}

func TestReadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xprd.yaml")
	if err := os.WriteFile(path, []byte("db: results.db\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig -> error %v", err)
	}
	if cfg.Listen != "localhost:3636" {
		t.Errorf("Listen -> %q, want the default", cfg.Listen)
	}
	if cfg.DB != "results.db" {
		t.Errorf("DB -> %q, want %q", cfg.DB, "results.db")
	}
}

func TestReadConfigErrors(t *testing.T) {
	if _, err := readConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("reading an absent config file succeeded")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("listen: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Error("reading a malformed config file succeeded")
	}
}
