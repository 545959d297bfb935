package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Format != "console" {
		t.Errorf("format = %s, want console", cfg.Format)
	}
	if cfg.Handicap != HandicapModePMP {
		t.Errorf("handicap mode = %s, want pmp", cfg.Handicap)
	}
	if cfg.FairRandom {
		t.Error("fairRandom should default false")
	}
}

func TestLoadConfigFromRCFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	rc := `{"format": "json", "method": "skins", "handicap": "legacy"}`
	if err := os.WriteFile(filepath.Join(dir, ".golfxrc.json"), []byte(rc), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Format != "json" || cfg.Method != "skins" || cfg.Handicap != HandicapModeLegacy {
		t.Errorf("config = %+v, want json/skins/legacy", cfg)
	}
}

func TestLoadConfigRootOverride(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("/tmp/rounds")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Root != "/tmp/rounds" {
		t.Errorf("root = %s, want override", cfg.Root)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		rc   string
	}{
		{"bad format", `{"format": "xml"}`},
		{"bad handicap mode", `{"handicap": "double"}`},
		{"bad method", `{"method": "best_ball"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ".golfxrc.json"), []byte(tt.rc), 0o644); err != nil {
				t.Fatal(err)
			}
			chdir(t, dir)

			if _, err := LoadConfig(""); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
