package snowscene

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DefaultAlphaThreshold is the alpha below which sprite pixels are made fully
// transparent, removing near-transparent fringes left by image editors.
const DefaultAlphaThreshold = 30

// PromoteRGBA returns an RGBA32 version of the pixmap. RGB24 pixels become
// fully opaque; RGBA32 pixmaps are returned as is.
func PromoteRGBA(pixmap *Pixmap) (*Pixmap, error) {
	switch pixmap.PixFormat {
	case RGBA32:
		return pixmap, nil
	case RGB24:
		rgba := NewPixmap(pixmap.Width, pixmap.Height, RGBA32)
		for y := 0; y < pixmap.Height; y++ {
			src := pixmap.Data[y*pixmap.BytePerLine:]
			dst := rgba.Data[y*rgba.BytePerLine:]
			for x := 0; x < pixmap.Width; x++ {
				copy(dst[x*4:x*4+3], src[x*3:x*3+3])
				dst[x*4+3] = 0xFF
			}
		}
		return rgba, nil
	default:
		return nil, fmt.Errorf("pixel format %v: %w", pixmap.PixFormat, ErrUnsupportedChannels)
	}
}

// ClearAlpha returns a copy of an RGBA32 pixmap where every alpha below
// threshold is set to zero.
func ClearAlpha(pixmap *Pixmap, threshold uint8) *Pixmap {
	result := pixmap.Clone()
	if result.PixFormat != RGBA32 {
		return result
	}
	for y := 0; y < result.Height; y++ {
		row := result.Data[y*result.BytePerLine:]
		for x := 0; x < result.Width; x++ {
			if row[x*4+3] < threshold {
				row[x*4+3] = 0
			}
		}
	}
	return result
}

// ScaleToHeight resizes the sprite to the given height keeping its aspect ratio.
func ScaleToHeight(sprite *Pixmap, height int) (*Pixmap, error) {
	src, err := sprite.NRGBA()
	if err != nil {
		return nil, err
	}
	if sprite.IsEmpty() {
		return nil, fmt.Errorf("cannot scale an empty sprite")
	}

	height = max(height, 1)
	width := max(int(float64(sprite.Width)*(float64(height)/float64(sprite.Height))), 1)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return pixmapFromPremultiplied(dst), nil
}

// Rotate rotates the sprite about its center by the given angle in degrees,
// counter-clockwise for positive angles. The result has the size of the
// source; areas not covered by the rotated source stay transparent.
func Rotate(sprite *Pixmap, degrees float64) (*Pixmap, error) {
	src, err := sprite.NRGBA()
	if err != nil {
		return nil, err
	}

	theta := degrees * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	cx := float64(sprite.Width) / 2
	cy := float64(sprite.Height) / 2

	s2d := f64.Aff3{
		cos, sin, (1-cos)*cx - sin*cy,
		-sin, cos, sin*cx + (1-cos)*cy,
	}

	dst := image.NewRGBA(src.Bounds())
	xdraw.BiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Src, nil)
	return pixmapFromPremultiplied(dst), nil
}

// PrepareSprite turns a decoded image into a ready-to-draw sprite: the
// pixmap is promoted to RGBA32, near-transparent pixels are cleared and the
// result is scaled to height. A height of zero keeps the original size.
func PrepareSprite(pixmap *Pixmap, height int) (*Pixmap, error) {
	if pixmap.IsEmpty() {
		return nil, fmt.Errorf("sprite is empty")
	}
	rgba, err := PromoteRGBA(pixmap)
	if err != nil {
		return nil, err
	}
	cleared := ClearAlpha(rgba, DefaultAlphaThreshold)
	if height <= 0 {
		return cleared, nil
	}
	return ScaleToHeight(cleared, height)
}
