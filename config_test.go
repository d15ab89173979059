package tinsel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if len(cfg.Countdown) != 5 || cfg.Countdown[0] != "5" || cfg.Countdown[4] != "1" {
		t.Errorf("Countdown = %v", cfg.Countdown)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
particles = 1500
countdown = ["3", "2", "1"]
announce = "Hello"
seed = 99
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Particles != 1500 || cfg.Seed != 99 || cfg.Announce != "Hello" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Countdown) != 3 {
		t.Errorf("Countdown = %v, want 3 labels", cfg.Countdown)
	}
	// Unset keys keep their defaults.
	def := DefaultConfig()
	if cfg.Ornaments != def.Ornaments || cfg.CountdownInterval != def.CountdownInterval {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"syntax", `particles = `, "parse config"},
		{"type", `particles = "many"`, "parse config"},
		{"zero particles", `particles = 0`, "particles"},
		{"negative ornaments", `ornaments = -1`, "ornaments"},
		{"zero interval", `countdown_interval = 0.0`, "countdown_interval"},
		{"negative hold", `announce_hold = -2.0`, "announce_hold"},
		{"negative settle", `settle_delay = -0.5`, "settle_delay"},
	}
	for _, tt := range tests {
		_, err := ParseConfig([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.toml")
	if err := os.WriteFile(path, []byte("ornaments = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Ornaments != 12 {
		t.Errorf("Ornaments = %d, want 12", cfg.Ornaments)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
