package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"size": 12, "random_density": 0.5, "renderer": "terminal", "frame_rate": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Size != 12 || config.RandomDensity != 0.5 || config.Renderer != RendererTerminal {
		t.Errorf("LoadConfig = %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Errorf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("unset field lost its default: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.json")},
		{"bad json", writeConfig(t, `{"size": `)},
		{"zero size", writeConfig(t, `{"size": 0}`)},
		{"density above one", writeConfig(t, `{"random_density": 1.2}`)},
		{"unknown renderer", writeConfig(t, `{"renderer": "opengl"}`)},
		{"grid lines on small cells", writeConfig(t, `{"grid_lines": true}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); err == nil {
				t.Error("LoadConfig succeeded, want error")
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 100 {
		t.Errorf("after first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Error("zero duration changed GenerationsPerSecond")
	}
}
