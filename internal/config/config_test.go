package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.NEOCSV != "data/neos.csv" {
		t.Errorf("NEOCSV = %q, want data/neos.csv", cfg.NEOCSV)
	}
	if cfg.CADJSON != "data/cad.json" {
		t.Errorf("CADJSON = %q, want data/cad.json", cfg.CADJSON)
	}
	if cfg.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.DefaultLimit)
	}
	if cfg.PresetsPath != ".neoscope/presets.toml" {
		t.Errorf("PresetsPath = %q", cfg.PresetsPath)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("neo_csv", "/srv/data/neos.csv")
	viper.Set("default_limit", 25)

	cfg := Load()
	if cfg.NEOCSV != "/srv/data/neos.csv" {
		t.Errorf("NEOCSV = %q, want override", cfg.NEOCSV)
	}
	if cfg.DefaultLimit != 25 {
		t.Errorf("DefaultLimit = %d, want 25", cfg.DefaultLimit)
	}
}
