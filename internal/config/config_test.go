package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Data.Output != "Tournament_Manager_Dashboard.html" {
		t.Fatalf("output default wrong: %s", cfg.Data.Output)
	}
	if cfg.Report.StorageKey != "bb_review_state_v1" {
		t.Fatalf("storage key default wrong: %s", cfg.Report.StorageKey)
	}
	if cfg.Columns.Player != "x_studio_teams/x_studio_players/x_name" {
		t.Fatalf("column default wrong: %s", cfg.Columns.Player)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtside.toml")
	content := `
[data]
input = "export.xlsx"

[report]
title = "Copa Escolar"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Data.Input != "export.xlsx" || cfg.Report.Title != "Copa Escolar" {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	// 未配置的键保持默认
	if cfg.Data.Output != "Tournament_Manager_Dashboard.html" {
		t.Fatalf("default lost: %s", cfg.Data.Output)
	}
	if cfg.Report.StorageKey != "bb_review_state_v1" {
		t.Fatalf("default lost: %s", cfg.Report.StorageKey)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtside.toml")
	if err := os.WriteFile(path, []byte("data = [broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COURTSIDE_INPUT", "env.csv")
	t.Setenv("COURTSIDE_OUTPUT", "env.html")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Data.Input != "env.csv" || cfg.Data.Output != "env.html" {
		t.Fatalf("env overrides lost: %+v", cfg.Data)
	}
}
