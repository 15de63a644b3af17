package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planbiir/tourenergy/internal/errs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MassKg != DefaultMassKg {
		t.Fatalf("expected default mass, got %v", cfg.MassKg)
	}
	if cfg.Method != "trapezoidal" {
		t.Fatalf("expected default method, got %q", cfg.Method)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TOURENERGY_MASS_KG", "72.5")
	t.Setenv("TOURENERGY_METHOD", "rectangle")
	t.Setenv("TOURENERGY_TRACK_FILE", "/tmp/tour.gpx")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MassKg != 72.5 {
		t.Fatalf("expected override mass, got %v", cfg.MassKg)
	}
	if cfg.Method != "rectangle" {
		t.Fatalf("expected override method")
	}
	if cfg.TrackFile != "/tmp/tour.gpx" {
		t.Fatalf("expected override track file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("TOURENERGY_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable in the process, clean up afterwards
	t.Setenv("TOURENERGY_LOG_LEVEL", "")
	os.Unsetenv("TOURENERGY_LOG_LEVEL")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level from dotenv, got %q", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{MassKg: 0, Method: "trapezoidal"}
	if errs.KindOf(cfg.Validate()) != errs.InvalidInput {
		t.Fatalf("expected invalid input for zero mass")
	}

	cfg = Config{MassKg: 80, Method: "simpson"}
	if errs.KindOf(cfg.Validate()) != errs.UnknownMethod {
		t.Fatalf("expected unknown method")
	}
}
