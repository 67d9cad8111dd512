package snowscene

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPromoteRGBA(t *testing.T) {
	rgb := NewPixmap(2, 1, RGB24)
	copy(rgb.Data, []byte{1, 2, 3, 4, 5, 6})

	rgba, err := PromoteRGBA(rgb)
	if err != nil {
		t.Fatal(err)
	}
	if rgba.PixFormat != RGBA32 {
		t.Fatalf("format = %v, want %v", rgba.PixFormat, RGBA32)
	}
	if got := rgba.RGBAt(1, 0); got != (color.NRGBA{R: 4, G: 5, B: 6, A: 0xFF}) {
		t.Errorf("pixel = %v, want {4 5 6 255}", got)
	}

	same := solidSprite(1, 1, red)
	if promoted, _ := PromoteRGBA(same); promoted != same {
		t.Error("RGBA32 pixmap was copied")
	}

	if _, err := PromoteRGBA(&Pixmap{PixFormat: PixelFormat(7)}); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("error = %v, want %v", err, ErrUnsupportedChannels)
	}
}

func TestClearAlpha(t *testing.T) {
	sprite := NewPixmap(3, 1, RGBA32)
	copy(sprite.Data, []byte{9, 9, 9, 10, 9, 9, 9, 29, 9, 9, 9, 30})

	cleared := ClearAlpha(sprite, DefaultAlphaThreshold)
	want := []uint8{0, 0, 30}
	for x, a := range want {
		if got := cleared.RGBAt(x, 0).A; got != a {
			t.Errorf("alpha at %d = %d, want %d", x, got, a)
		}
	}
	if sprite.RGBAt(0, 0).A != 10 {
		t.Error("source sprite was modified")
	}
}

func TestScaleToHeight(t *testing.T) {
	tests := []struct {
		w, h, height int
		wantW        int
	}{
		{20, 10, 5, 10},
		{10, 20, 40, 20},
		{30, 10, 3, 9},
		{1, 100, 10, 1},
	}
	for _, tt := range tests {
		scaled, err := ScaleToHeight(solidSprite(tt.w, tt.h, white), tt.height)
		if err != nil {
			t.Fatal(err)
		}
		if scaled.Width != tt.wantW || scaled.Height != tt.height {
			t.Errorf("%dx%d scaled to height %d = %dx%d, want %dx%d",
				tt.w, tt.h, tt.height, scaled.Width, scaled.Height, tt.wantW, tt.height)
		}
	}

	if _, err := ScaleToHeight(NewPixmap(4, 4, RGB24), 2); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("error = %v, want %v", err, ErrUnsupportedChannels)
	}
}

func TestRotateKeepsSizeAndCenter(t *testing.T) {
	sprite := solidSprite(9, 9, white)
	rotated, err := Rotate(sprite, 45)
	if err != nil {
		t.Fatal(err)
	}
	if rotated.Width != 9 || rotated.Height != 9 {
		t.Fatalf("size = %dx%d, want 9x9", rotated.Width, rotated.Height)
	}
	if got := rotated.RGBAt(4, 4); got != white {
		t.Errorf("center = %v, want %v", got, white)
	}
	if got := rotated.RGBAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
}

func TestPrepareSprite(t *testing.T) {
	rgb := NewPixmap(8, 4, RGB24)
	sprite, err := PrepareSprite(rgb, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sprite.PixFormat != RGBA32 || sprite.Width != 4 || sprite.Height != 2 {
		t.Errorf("sprite = %dx%d %v, want 4x2 RGBA32", sprite.Width, sprite.Height, sprite.PixFormat)
	}

	kept, err := PrepareSprite(solidSprite(5, 7, white), 0)
	if err != nil {
		t.Fatal(err)
	}
	if kept.Width != 5 || kept.Height != 7 {
		t.Errorf("size = %dx%d, want 5x7", kept.Width, kept.Height)
	}

	if _, err := PrepareSprite(nil, 2); err == nil {
		t.Error("empty sprite accepted")
	}
}

func TestPixmapImageConversions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 10, A: 128})

	pixmap := PixmapFromImage(src)
	if got := pixmap.RGBAt(1, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("pixel = %v, want {200 100 50 255}", got)
	}
	if got := pixmap.RGBAt(0, 1); got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}

	img := pixmap.Image()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("premultiplied pixel = %v, want {200 100 50 255}", got)
	}

	view, err := pixmap.NRGBA()
	if err != nil {
		t.Fatal(err)
	}
	view.SetNRGBA(0, 0, color.NRGBA{G: 1, A: 1})
	if pixmap.RGBAt(0, 0).G != 1 {
		t.Error("NRGBA view does not share pixels")
	}

	if _, err := NewPixmap(1, 1, RGB24).NRGBA(); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("error = %v, want %v", err, ErrUnsupportedChannels)
	}
}
