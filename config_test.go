package snowscene

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if got := config.TotalFrames(); got != 12000 {
		t.Errorf("total frames = %d, want 12000", got)
	}

	jump := config.Hare.jumpParams(config.Width, config.Height)
	if d := jump.Duration(); d < 1 || d > 1.2 {
		t.Errorf("default jump lasts %vs, want a little over a second", d)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 640
height: 360
seed: 42
snowfall:
  schedule:
    - {start: 0, finish: -1, count: 50}
garland:
  colors: ["#ffffff"]
  patterns:
    - {groups: [true], duration: 0.5}
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 640 || config.Height != 360 || config.Seed != 42 {
		t.Errorf("canvas = %dx%d seed %d, want 640x360 seed 42", config.Width, config.Height, config.Seed)
	}
	if config.FPS != 60 {
		t.Errorf("fps = %d, want the default 60", config.FPS)
	}
	if len(config.Snowfall.Schedule) != 1 || config.Snowfall.Schedule[0].Count != 50 {
		t.Errorf("schedule = %+v, want one interval of 50", config.Snowfall.Schedule)
	}
	if config.Snowfall.SpeedY != DefaultSnowflakeParams().SpeedY {
		t.Errorf("speedY = %+v, want the default", config.Snowfall.SpeedY)
	}

	colors, err := config.Garland.colors()
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 1 || colors[0] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("colors = %v, want white", colors)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"bad color", `snowCover: {color: "snow"}`, ErrInvalidConfig},
		{"bad lamp color", `garland: {colors: ["#ff0000", "#zz0000", "#0000ff", "#ffff00"]}`, ErrInvalidConfig},
		{"pattern mismatch", `garland: {patterns: [{groups: [true, false], duration: 1}]}`, ErrPatternMismatch},
		{"empty schedule", `snowfall: {schedule: []}`, ErrEmptySchedule},
		{"no fps", `fps: 0`, ErrInvalidConfig},
		{"inverted range", `snowfall: {speedY: {min: 3, max: 1}}`, ErrInvalidConfig},
		{"hare jumps down", `hare: {speedY: 0.5}`, ErrInvalidJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "width: [1, 2")); err == nil {
		t.Error("broken YAML accepted")
	}
}
