package game

import (
	"castle-generator/internal/generate"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 50 || cfg.ViewRange != 8 || cfg.Strategy != "rooms" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castle.yaml")
	data := []byte("width: 60\nheight: 40\nstrategy: scatter\nseed: 99\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Width != 60 || cfg.Height != 40 || cfg.Strategy != "scatter" || cfg.Seed != 99 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.MaxAttempts != 30 || cfg.ViewRange != 8 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CASTLE_WIDTH":      "100",
		"CASTLE_VIEW_RANGE": "5",
		"CASTLE_SEED":       "-12",
		"CASTLE_STRATEGY":   "scatter",
		"CASTLE_HEIGHT":     "",
	}
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Width != 100 || cfg.ViewRange != 5 || cfg.Seed != -12 || cfg.Strategy != "scatter" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Height != 50 {
		t.Errorf("empty value should be ignored, height = %d", cfg.Height)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{"CASTLE_MAX_ROOMS", "CASTLE_SEED"} {
		t.Run(key, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ApplyEnv(func(k string) string {
				if k == key {
					return "lots"
				}
				return ""
			})
			if err == nil {
				t.Fatalf("expected a parse error for %s", key)
			}
		})
	}
}

func TestApplyEnvReportsFirstMalformedKey(t *testing.T) {
	env := map[string]string{
		"CASTLE_WIDTH":      "wide",
		"CASTLE_ATTEMPTS":   "many",
		"CASTLE_VIEW_RANGE": "far",
	}
	for i := 0; i < 20; i++ {
		cfg := DefaultConfig()
		err := cfg.ApplyEnv(func(k string) string { return env[k] })
		if err == nil || !strings.HasPrefix(err.Error(), "CASTLE_ATTEMPTS:") {
			t.Fatalf("run %d: err = %v; want CASTLE_ATTEMPTS reported first", i, err)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative view range", func(c *Config) { c.ViewRange = -1 }},
		{"unknown strategy", func(c *Config) { c.Strategy = "cave" }},
		{"tiny map", func(c *Config) { c.Width = 2 }},
		{"inverted room sizes", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 8, 4 }},
		{"room side of one", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 1, 1 }},
		{"no attempts", func(c *Config) { c.MaxAttempts = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, generate.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGeneratorConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = "scatter"
	cfg.Seed = 3
	g, err := cfg.GeneratorConfig()
	if err != nil {
		t.Fatalf("GeneratorConfig: %v", err)
	}
	if g.Strategy != generate.StrategyScatter || g.Seed != 3 || g.MapWidth != 80 {
		t.Errorf("unexpected generator config: %+v", g)
	}
}

func TestInputString(t *testing.T) {
	cases := map[Input]string{
		InputNone: "none", InputMoveUp: "up", InputMoveDown: "down",
		InputMoveLeft: "left", InputMoveRight: "right", InputQuit: "quit", Input(42): "unknown",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Errorf("Input(%d).String() = %q; want %q", in, got, want)
		}
	}
}
