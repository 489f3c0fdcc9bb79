package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hpungsan/wodgen/internal/exercise"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	def := DefaultConfig()
	if cfg.SnoozeDays != def.SnoozeDays {
		t.Errorf("SnoozeDays = %d, want %d", cfg.SnoozeDays, def.SnoozeDays)
	}
	if cfg.DefaultGroups != 2 {
		t.Errorf("DefaultGroups = %d, want 2", cfg.DefaultGroups)
	}
	if cfg.Level() != exercise.Intermediate {
		t.Errorf("Level() = %s, want Intermediate", cfg.Level())
	}
	if cfg.BodyweightOnly || cfg.IntermediateIncludesBeginner {
		t.Errorf("boolean defaults should be false: %+v", cfg)
	}
	if cfg.WorkoutsDir != "" {
		t.Errorf("WorkoutsDir = %q, want empty", cfg.WorkoutsDir)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{
		"snooze_days": 3,
		"default_groups": 4,
		"default_level": "advanced",
		"bodyweight_only": true,
		"intermediate_includes_beginner": true,
		"workouts_dir": "/tmp/wods"
	}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SnoozeDays != 3 {
		t.Errorf("SnoozeDays = %d, want 3", cfg.SnoozeDays)
	}
	if cfg.DefaultGroups != 4 {
		t.Errorf("DefaultGroups = %d, want 4", cfg.DefaultGroups)
	}
	if cfg.Level() != exercise.Advanced {
		t.Errorf("Level() = %s, want Advanced", cfg.Level())
	}
	if !cfg.BodyweightOnly {
		t.Error("BodyweightOnly = false, want true")
	}
	if !cfg.IntermediateIncludesBeginner {
		t.Error("IntermediateIncludesBeginner = false, want true")
	}
	if cfg.WorkoutsDir != "/tmp/wods" {
		t.Errorf("WorkoutsDir = %q", cfg.WorkoutsDir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"default_groups": 5}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultGroups != 5 {
		t.Errorf("DefaultGroups = %d, want 5", cfg.DefaultGroups)
	}
	if cfg.SnoozeDays != 7 {
		t.Errorf("SnoozeDays = %d, want 7 (default)", cfg.SnoozeDays)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{not json}`)

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative snooze", `{"snooze_days": -1}`},
		{"negative groups", `{"default_groups": -2}`},
		{"unknown level", `{"default_level": "expert"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)

			if _, err := Load(tmpDir); err == nil {
				t.Fatalf("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"disabled_tools": ["snooze_list", " snooze_list "]}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "snooze_list" {
		t.Errorf("DisabledTools = %v, want [snooze_list]", cfg.DisabledTools)
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{SnoozeDays: 7, DefaultGroups: 2, DefaultLevel: "Intermediate", WorkoutsDir: "base"}
	overlay := &Config{DefaultGroups: 3} // everything else zero

	result := Merge(base, overlay)

	if result.DefaultGroups != 3 {
		t.Errorf("DefaultGroups = %d, want 3 (overlay)", result.DefaultGroups)
	}
	if result.SnoozeDays != 7 {
		t.Errorf("SnoozeDays = %d, want 7 (base, overlay is zero)", result.SnoozeDays)
	}
	if result.DefaultLevel != "Intermediate" {
		t.Errorf("DefaultLevel = %q, want base", result.DefaultLevel)
	}
	if result.WorkoutsDir != "base" {
		t.Errorf("WorkoutsDir = %q, want base", result.WorkoutsDir)
	}
}

func TestMerge_BooleanOr(t *testing.T) {
	base := &Config{BodyweightOnly: true}
	overlay := &Config{IntermediateIncludesBeginner: true}

	result := Merge(base, overlay)

	if !result.BodyweightOnly {
		t.Error("BodyweightOnly should be true (base OR overlay)")
	}
	if !result.IntermediateIncludesBeginner {
		t.Error("IntermediateIncludesBeginner should be true (base OR overlay)")
	}
}

func TestMerge_ArrayMergeDedup(t *testing.T) {
	base := &Config{DisabledTools: []string{"workout_generate", "snooze_list"}}
	overlay := &Config{DisabledTools: []string{"snooze_list", "other"}}

	result := Merge(base, overlay)

	want := []string{"workout_generate", "snooze_list", "other"}
	if len(result.DisabledTools) != len(want) {
		t.Fatalf("DisabledTools = %v, want %v", result.DisabledTools, want)
	}
	for i := range want {
		if result.DisabledTools[i] != want[i] {
			t.Errorf("DisabledTools[%d] = %q, want %q", i, result.DisabledTools[i], want[i])
		}
	}
}

func TestSnoozePeriod(t *testing.T) {
	cfg := &Config{SnoozeDays: 7}
	if got := cfg.SnoozePeriod(); got != 7*24*time.Hour {
		t.Errorf("SnoozePeriod() = %v, want 168h", got)
	}
}

func TestLevel_FallsBackToIntermediate(t *testing.T) {
	cfg := &Config{DefaultLevel: "nonsense"}
	if cfg.Level() != exercise.Intermediate {
		t.Errorf("Level() = %s, want Intermediate", cfg.Level())
	}
}
