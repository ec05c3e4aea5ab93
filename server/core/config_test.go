package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	env := "CORE_PORT=9000\nCORE_UPDATES_PER_SEC=30\nCORE_WORLD_WIDTH=1000\n"
	if err := os.WriteFile(path, []byte(env), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	for _, k := range []string{"CORE_PORT", "CORE_UPDATES_PER_SEC", "CORE_WORLD_WIDTH", "CORE_WORLD_HEIGHT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 9000 || cfg.UpdatesPerSec != 30 || cfg.WorldWidth != 1000 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.WorldHeight != DefaultConfig().WorldHeight {
		t.Fatalf("height = %v, want default", cfg.WorldHeight)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CORE_PORT", "")
	t.Setenv("CORE_UPDATES_PER_SEC", "")
	t.Setenv("CORE_WORLD_WIDTH", "")
	t.Setenv("CORE_WORLD_HEIGHT", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "port not a number", key: "CORE_PORT", value: "abc"},
		{name: "port out of range", key: "CORE_PORT", value: "70000"},
		{name: "zero tick rate", key: "CORE_UPDATES_PER_SEC", value: "0"},
		{name: "tiny world", key: "CORE_WORLD_WIDTH", value: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
