package snowscene

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func testGroups() []LightGroup {
	return []LightGroup{
		{Color: color.RGBA{R: 255, A: 255}, Anchors: []image.Point{{X: 5, Y: 5}}},
		{Color: color.RGBA{G: 255, A: 255}, Anchors: []image.Point{{X: 15, Y: 5}}},
	}
}

func TestNewGarlandErrors(t *testing.T) {
	groups := testGroups()
	tests := []struct {
		name     string
		patterns []LightPattern
		want     error
	}{
		{"no patterns", nil, ErrEmptyPatterns},
		{"too few flags", []LightPattern{{Groups: []bool{true}, Duration: 1}}, ErrPatternMismatch},
		{"too many flags", []LightPattern{{Groups: []bool{true, true, true}, Duration: 1}}, ErrPatternMismatch},
		{"zero frames", []LightPattern{{Groups: []bool{true, false}, Duration: 0.01}}, ErrPatternTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGarland(groups, tt.patterns, 10, 2); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGarlandCyclesPatterns(t *testing.T) {
	patterns := []LightPattern{
		{Groups: []bool{true, false}, Duration: 1},
		{Groups: []bool{false, true}, Duration: 1},
		{Groups: []bool{true, true}, Duration: 1},
	}
	garland, err := NewGarland(testGroups(), patterns, 60, 2)
	if err != nil {
		t.Fatal(err)
	}
	canvas := NewPixmap(20, 10, RGB24)

	for frame := 0; frame < 200; frame++ {
		if want := (frame / 60) % 3; garland.PatternIndex() != want {
			t.Fatalf("pattern at frame %d = %d, want %d", frame, garland.PatternIndex(), want)
		}
		if err := garland.Render(frame, canvas); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGarlandDrawsLitGroupsOnly(t *testing.T) {
	patterns := []LightPattern{
		{Groups: []bool{true, false}, Duration: 1},
		{Groups: []bool{false, true}, Duration: 1},
	}
	garland, err := NewGarland(testGroups(), patterns, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	canvas := NewPixmap(20, 10, RGB24)
	if err := garland.Render(0, canvas); err != nil {
		t.Fatal(err)
	}
	if got := canvas.RGBAt(5, 5); got.R != 255 {
		t.Errorf("lit lamp = %v, want red", got)
	}
	if got := canvas.RGBAt(15, 5); got.G != 0 {
		t.Errorf("unlit lamp = %v, want background", got)
	}

	canvas.Clear()
	if err := garland.Render(1, canvas); err != nil {
		t.Fatal(err)
	}
	if got := canvas.RGBAt(5, 5); got.R != 0 {
		t.Errorf("unlit lamp = %v, want background", got)
	}
	if got := canvas.RGBAt(15, 5); got.G != 255 {
		t.Errorf("lit lamp = %v, want green", got)
	}
}

func TestGarlandRadiusKeepsGrowingAcrossCycles(t *testing.T) {
	patterns := make([]LightPattern, 4)
	for i := range patterns {
		patterns[i] = LightPattern{Groups: []bool{true, true}, Duration: 1}
	}
	garland, err := NewGarland(testGroups(), patterns, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	canvas := NewPixmap(20, 10, RGB24)

	want := []int{12, 13, 15, 16, 18, 19, 21, 22, 24, 25}
	for frame, radius := range want {
		if got := garland.Radius(); got != radius {
			t.Errorf("radius after %d switches = %d, want %d", garland.Switches(), got, radius)
		}
		if idx := frame % 4; garland.PatternIndex() != idx {
			t.Errorf("pattern at frame %d = %d, want %d", frame, garland.PatternIndex(), idx)
		}
		if err := garland.Render(frame, canvas); err != nil {
			t.Fatal(err)
		}
	}
	if garland.Switches() != len(want) {
		t.Errorf("switches = %d, want %d", garland.Switches(), len(want))
	}
}

func TestGarlandRadiusOverLongRun(t *testing.T) {
	const base, count = 13, 12
	patterns := make([]LightPattern, count)
	for i := range patterns {
		patterns[i] = LightPattern{Groups: []bool{true, false}, Duration: 1}
	}
	garland, err := NewGarland(testGroups(), patterns, 1, base)
	if err != nil {
		t.Fatal(err)
	}
	canvas := NewPixmap(20, 10, RGB24)

	for frame := 0; frame < 3000; frame++ {
		want := int(base * (1 + 0.5*float64(frame)/count))
		if got := garland.Radius(); got != want {
			t.Fatalf("radius after %d switches = %d, want %d", frame, got, want)
		}
		if err := garland.Render(frame, canvas); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSampleAnchorsHitsOpaquePixels(t *testing.T) {
	sprite := NewPixmap(10, 10, RGBA32)
	for y := 2; y < 5; y++ {
		for x := 6; x < 9; x++ {
			sprite.Data[sprite.PixOffset(x, y)+3] = 0xFF
		}
	}

	anchors, err := SampleAnchors(sprite, 50, NewRand(3, streamGarland))
	if err != nil {
		t.Fatal(err)
	}
	if len(anchors) != 50 {
		t.Fatalf("got %d anchors, want 50", len(anchors))
	}
	for _, pt := range anchors {
		if !pt.In(image.Rect(6, 2, 9, 5)) {
			t.Errorf("anchor %v lies on a transparent pixel", pt)
		}
	}
}

func TestSampleAnchorsTransparentSprite(t *testing.T) {
	sprite := NewPixmap(4, 4, RGBA32)
	if _, err := SampleAnchors(sprite, 3, NewRand(1, streamGarland)); !errors.Is(err, ErrNoOpaquePixels) {
		t.Errorf("error = %v, want %v", err, ErrNoOpaquePixels)
	}
}

func TestNewLightGroupsUsesCanvasCoordinates(t *testing.T) {
	figure := solidSprite(10, 20, white)
	colors := []color.RGBA{{R: 255, A: 255}, {B: 255, A: 255}}

	groups, err := NewLightGroups(figure, colors, 8, 100, 50, NewRand(1, streamGarland))
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	bounds := image.Rect(95, 40, 105, 60)
	for i, group := range groups {
		if group.Color != colors[i] {
			t.Errorf("group %d color = %v, want %v", i, group.Color, colors[i])
		}
		if len(group.Anchors) != 8 {
			t.Errorf("group %d has %d anchors, want 8", i, len(group.Anchors))
		}
		for _, pt := range group.Anchors {
			if !pt.In(bounds) {
				t.Errorf("anchor %v outside the figure at %v", pt, bounds)
			}
		}
	}
}

func TestNewLightGroupsRoundsAnchors(t *testing.T) {
	figure := solidSprite(1, 1, white)
	tests := []struct {
		name             string
		centerX, centerY float64
		want             image.Point
	}{
		{"half pixel up", 10, 10, image.Point{X: 10, Y: 10}},
		{"half pixel to even", 11, 11, image.Point{X: 10, Y: 10}},
		{"negative", -3, -3, image.Point{X: -4, Y: -4}},
		{"fraction", 4.2, 7.9, image.Point{X: 4, Y: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := NewLightGroups(figure, []color.RGBA{{R: 255, A: 255}}, 1,
				tt.centerX, tt.centerY, NewRand(1, streamGarland))
			if err != nil {
				t.Fatal(err)
			}
			if got := groups[0].Anchors[0]; got != tt.want {
				t.Errorf("anchor = %v, want %v", got, tt.want)
			}
		})
	}
}
