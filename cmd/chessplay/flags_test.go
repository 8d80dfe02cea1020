package main

import (
	"testing"

	"github.com/lgbarn/chessplay-go/internal/config"
	"github.com/lgbarn/chessplay-go/internal/game"
)

// saveRestoreBool sets a flag pointer for one test.
// Usage: defer saveRestoreBool(noColour, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.Text {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
		if !cfg.Output.UseColour {
			t.Error("UseColour = false; want true")
		}
		if cfg.Output.SVGSize != config.DefaultSVGSize {
			t.Errorf("SVGSize = %d; want %d", cfg.Output.SVGSize, config.DefaultSVGSize)
		}
	})

	t.Run("json and plain", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(noColour, true)()
		defer saveRestoreBool(unicode, true)()
		defer saveRestoreInt(svgSize, 256)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
		if cfg.Output.UseColour {
			t.Error("UseColour = true; want false")
		}
		if !cfg.Output.Unicode {
			t.Error("Unicode = false; want true")
		}
		if cfg.Output.SVGSize != 256 {
			t.Errorf("SVGSize = %d; want 256", cfg.Output.SVGSize)
		}
	})
}

func TestApplyRulesFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyRulesFlags(cfg)
	if cfg.Rules.Separator != game.DefaultSeparator {
		t.Errorf("Separator = %q; want %q", cfg.Rules.Separator, game.DefaultSeparator)
	}
	if cfg.Rules.AllowSelfCheck {
		t.Error("AllowSelfCheck = true; want false")
	}
}

func TestApplyRulesFlags(t *testing.T) {
	defer saveRestoreString(separator, "-")()
	defer saveRestoreBool(selfCheck, true)()
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()

	cfg := config.NewConfig()
	applyRulesFlags(cfg)
	if cfg.Rules.Separator != "-" {
		t.Errorf("Separator = %q; want %q", cfg.Rules.Separator, "-")
	}
	if !cfg.Rules.AllowSelfCheck {
		t.Error("AllowSelfCheck = false; want true")
	}
	if cfg.Rules.StartFEN != *startFEN {
		t.Errorf("StartFEN = %q; want %q", cfg.Rules.StartFEN, *startFEN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyBatchFlags(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		workers     int
		wantEnabled bool
	}{
		{"interactive", "", 4, false},
		{"file", "positions.fen", 2, true},
		{"stdin", "-", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(classifyFile, tt.input)()
			defer saveRestoreInt(workers, tt.workers)()
			cfg := config.NewConfig()
			applyBatchFlags(cfg)
			if cfg.Batch.Enabled() != tt.wantEnabled {
				t.Errorf("Enabled() = %v; want %v", cfg.Batch.Enabled(), tt.wantEnabled)
			}
			if cfg.Batch.Workers != tt.workers {
				t.Errorf("Workers = %d; want %d", cfg.Batch.Workers, tt.workers)
			}
		})
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, 2)()
	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
}
