package snowscene

import (
	"bytes"
	"image/color"
	"testing"
)

func TestBlendAlphaZeroKeepsBackground(t *testing.T) {
	canvas := filledCanvas(4, 4, 77)
	before := canvas.Clone()

	DrawSprite(canvas, solidSprite(2, 2, color.NRGBA{R: 255, G: 10, B: 10, A: 0}), 2, 2)
	BlendPixel(canvas, 1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 0})

	if !bytes.Equal(canvas.Data, before.Data) {
		t.Error("alpha 0 changed the canvas")
	}
}

func TestBlendOpaqueReplacesBackground(t *testing.T) {
	canvas := filledCanvas(4, 4, 77)
	DrawSprite(canvas, solidSprite(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255}), 2, 2)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := canvas.RGBAt(x, y)
			if got.R != 10 || got.G != 20 || got.B != 30 {
				t.Fatalf("pixel (%d,%d) = %v, want {10 20 30}", x, y, got)
			}
		}
	}
}

func TestBlendRoundsToNearest(t *testing.T) {
	canvas := filledCanvas(1, 1, 100)
	BlendPixel(canvas, 0, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 128})
	if got := canvas.Data[0]; got != 150 {
		t.Errorf("blended channel = %d, want 150", got)
	}
}

func TestDrawSpriteClipsToCanvas(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		changed int
	}{
		{"inside", 5, 5, 16},
		{"top left corner", 0, 0, 4},
		{"bottom right corner", 10, 10, 4},
		{"left edge", 0, 5, 8},
		{"far outside", 100, -100, 0},
		{"just outside", -2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := NewPixmap(10, 10, RGB24)
			DrawSprite(canvas, solidSprite(4, 4, red), tt.x, tt.y)

			changed := 0
			for y := 0; y < canvas.Height; y++ {
				for x := 0; x < canvas.Width; x++ {
					if canvas.RGBAt(x, y).R != 0 {
						changed++
					}
				}
			}
			if changed != tt.changed {
				t.Errorf("changed pixels = %d, want %d", changed, tt.changed)
			}
		})
	}
}

func TestDrawSpriteCenters(t *testing.T) {
	canvas := NewPixmap(10, 10, RGB24)
	DrawSprite(canvas, solidSprite(2, 2, red), 5, 5)

	for _, p := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		if canvas.RGBAt(p[0], p[1]).R != 255 {
			t.Errorf("pixel %v not drawn", p)
		}
	}
	if canvas.RGBAt(6, 6).R != 0 || canvas.RGBAt(3, 3).R != 0 {
		t.Error("sprite drawn outside its rectangle")
	}
}

func TestDrawSpriteIgnoresWrongFormats(t *testing.T) {
	rgbSprite := NewPixmap(2, 2, RGB24)
	for i := range rgbSprite.Data {
		rgbSprite.Data[i] = 255
	}
	canvas := NewPixmap(4, 4, RGB24)
	DrawSprite(canvas, rgbSprite, 2, 2)
	if bytes.IndexByte(canvas.Data, 0xFF) >= 0 {
		t.Error("sprite without alpha was drawn")
	}

	rgbaCanvas := NewPixmap(4, 4, RGBA32)
	DrawSprite(rgbaCanvas, solidSprite(2, 2, red), 2, 2)
	if bytes.IndexByte(rgbaCanvas.Data, 0xFF) >= 0 {
		t.Error("sprite was drawn onto a four-channel canvas")
	}

	DrawSprite(nil, solidSprite(2, 2, red), 0, 0)
	DrawSprite(canvas, nil, 0, 0)
}

func TestFillDisc(t *testing.T) {
	canvas := NewPixmap(11, 11, RGB24)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	FillDisc(canvas, 5, 5, 2, c)

	inside := [][2]int{{5, 5}, {5, 3}, {7, 5}, {6, 6}}
	outside := [][2]int{{3, 3}, {7, 7}, {5, 8}, {8, 5}}
	for _, p := range inside {
		if got := canvas.RGBAt(p[0], p[1]); got.R != 1 || got.G != 2 || got.B != 3 {
			t.Errorf("pixel %v = %v, want disc color", p, got)
		}
	}
	for _, p := range outside {
		if got := canvas.RGBAt(p[0], p[1]); got.R != 0 {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
}

func TestFillDiscClipsToCanvas(t *testing.T) {
	canvas := NewPixmap(4, 4, RGB24)
	FillDisc(canvas, 0, 0, 3, color.RGBA{R: 9, A: 255})
	FillDisc(canvas, -20, 50, 3, color.RGBA{R: 9, A: 255})

	if canvas.RGBAt(0, 0).R != 9 {
		t.Error("corner pixel not painted")
	}
	if canvas.RGBAt(3, 3).R != 0 {
		t.Error("pixel outside the disc painted")
	}
}
