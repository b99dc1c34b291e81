package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jask/quire/internal/keyseq"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.TabWidth != 8 {
		t.Fatalf("TabWidth = %d, want 8", cfg.UI.TabWidth)
	}
	if cfg.Input.TimeoutMS != 2000 {
		t.Fatalf("TimeoutMS = %d, want 2000", cfg.Input.TimeoutMS)
	}
	if cfg.Input.CancelKey != "esc" {
		t.Fatalf("CancelKey = %q, want esc", cfg.Input.CancelKey)
	}
	if !cfg.History.Enabled || cfg.History.Limit != 1000 {
		t.Fatalf("History = %+v, want enabled with limit 1000", cfg.History)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if len(cfg.Bind) != 0 {
		t.Fatalf("Bind = %+v, want none from an absent file", cfg.Bind)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
tab_width = 4

[input]
timeout_ms = 0
cancel_key = "ctrl+g"

[history]
enabled = false

[[bind]]
seq = "J"
command = "tabnext"

[[bind]]
seq = "j"
command = "scroll 0 2"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.TabWidth != 4 {
		t.Fatalf("TabWidth = %d, want 4", cfg.UI.TabWidth)
	}
	if cfg.Input.TimeoutMS != 0 {
		t.Fatalf("TimeoutMS = %d, want 0", cfg.Input.TimeoutMS)
	}
	if cfg.Input.CancelKey != "ctrl+g" {
		t.Fatalf("CancelKey = %q, want ctrl+g", cfg.Input.CancelKey)
	}
	if cfg.History.Enabled {
		t.Fatal("History.Enabled = true, want false")
	}
	// sequence case must survive the round trip
	if len(cfg.Bind) != 2 || cfg.Bind[0].Seq != "J" || cfg.Bind[1].Seq != "j" {
		t.Fatalf("Bind = %+v, want J and j kept distinct", cfg.Bind)
	}
	if cfg.Bind[1].Command != "scroll 0 2" {
		t.Fatalf("Bind[1].Command = %q, want %q", cfg.Bind[1].Command, "scroll 0 2")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QUIRE_INPUT_TIMEOUT_MS", "500")
	t.Setenv("QUIRE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.TimeoutMS != 500 {
		t.Fatalf("TimeoutMS = %d, want 500 from env", cfg.Input.TimeoutMS)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug from env", cfg.Log.Level)
	}
}

func TestLoadWritesStarterConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	if _, err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	path := filepath.Join(tmp, "quire", "config.toml")
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("starter config not written: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("starter config is empty")
	}

	// a second load must leave the existing file alone
	if err := os.WriteFile(path, []byte("[ui]\ntab_width = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if cfg.UI.TabWidth != 3 {
		t.Fatalf("TabWidth = %d, want 3 from the edited file", cfg.UI.TabWidth)
	}
}

func TestDefaultBindsAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range DefaultBinds() {
		tokens, err := keyseq.ParseSequence(b.Seq)
		if err != nil {
			t.Fatalf("default binding %q does not parse: %v", b.Seq, err)
		}
		if len(tokens) == 0 {
			t.Fatalf("default binding %q is empty", b.Seq)
		}
		if b.Command == "" {
			t.Fatalf("default binding %q has no command", b.Seq)
		}
		key := keyseq.FormatSequence(tokens)
		if seen[key] {
			t.Fatalf("default binding %q appears twice", b.Seq)
		}
		seen[key] = true
	}
}
