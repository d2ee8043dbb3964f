package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Alpha != 0.05 {
		t.Errorf("expected default alpha 0.05, got %v", cfg.Alpha)
	}
	if cfg.TopShareThreshold != 0.25 {
		t.Errorf("expected default top-share threshold 0.25, got %v", cfg.TopShareThreshold)
	}
	if cfg.MaxShapiroSize != 5000 {
		t.Errorf("expected default Shapiro size cap 5000, got %d", cfg.MaxShapiroSize)
	}
	if !cfg.Color {
		t.Error("color should default to on")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOEXPLORE_ALPHA", "0.01")
	t.Setenv("GOEXPLORE_MAX_SHAPIRO", "2000")
	t.Setenv("GOEXPLORE_NO_COLOR", "1")
	t.Setenv("GOEXPLORE_OUTPUT", "/tmp/reports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Alpha != 0.01 {
		t.Errorf("expected alpha 0.01, got %v", cfg.Alpha)
	}
	if cfg.Color {
		t.Error("expected color disabled")
	}
	if cfg.MaxShapiroSize != 2000 {
		t.Errorf("expected Shapiro size cap 2000, got %d", cfg.MaxShapiroSize)
	}
	if cfg.OutputPath != "/tmp/reports" {
		t.Errorf("expected output path override, got %q", cfg.OutputPath)
	}
}

func TestLoad_RejectsBadAlpha(t *testing.T) {
	t.Setenv("GOEXPLORE_ALPHA", "1.5")
	if _, err := Load(); err == nil {
		t.Error("expected error for alpha outside (0,1)")
	}

	t.Setenv("GOEXPLORE_ALPHA", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable alpha")
	}
}

func TestLoad_RejectsBadMaxShapiro(t *testing.T) {
	t.Setenv("GOEXPLORE_MAX_SHAPIRO", "2")
	if _, err := Load(); err == nil {
		t.Error("expected error for cap below the test's minimum size")
	}

	t.Setenv("GOEXPLORE_MAX_SHAPIRO", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable cap")
	}
}
