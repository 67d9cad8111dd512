package snowscene

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Pixmap contains a collection of pixels
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
	PixFormat   PixelFormat
}

// NewPixmap creates a zero-filled Pixmap
func NewPixmap(width, height int, pixFormat PixelFormat) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	bytePerLine := width * GetPixelSize(pixFormat)
	return &Pixmap{
		Data:        make([]byte, bytePerLine*height),
		Width:       width,
		Height:      height,
		BytePerLine: bytePerLine,
		PixFormat:   pixFormat,
	}
}

// IsEmpty reports whether the pixmap has no pixels.
func (pixmap *Pixmap) IsEmpty() bool {
	return pixmap == nil || pixmap.Width <= 0 || pixmap.Height <= 0 || len(pixmap.Data) == 0
}

// Clear fills the pixmap with zero bytes. For a canvas this is black.
func (pixmap *Pixmap) Clear() {
	for i := range pixmap.Data {
		pixmap.Data[i] = 0
	}
}

// PixOffset returns the offset of the first byte of the pixel at (x, y).
func (pixmap *Pixmap) PixOffset(x, y int) int {
	return y*pixmap.BytePerLine + x*GetPixelSize(pixmap.PixFormat)
}

// Clone returns a deep copy of the pixmap
func (pixmap *Pixmap) Clone() *Pixmap {
	clone := *pixmap
	clone.Data = make([]byte, len(pixmap.Data))
	copy(clone.Data, pixmap.Data)
	return &clone
}

// NRGBA returns an image.NRGBA sharing the pixels of an RGBA32 pixmap.
func (pixmap *Pixmap) NRGBA() (*image.NRGBA, error) {
	if pixmap.PixFormat != RGBA32 {
		return nil, fmt.Errorf("pixmap format %v has no alpha: %w", pixmap.PixFormat, ErrUnsupportedChannels)
	}
	return &image.NRGBA{
		Pix:    pixmap.Data,
		Stride: pixmap.BytePerLine,
		Rect:   image.Rect(0, 0, pixmap.Width, pixmap.Height),
	}, nil
}

// Image copies the pixmap into a new image.RGBA. An RGB24 pixmap becomes
// fully opaque.
func (pixmap *Pixmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pixmap.Width, pixmap.Height))
	pixSize := GetPixelSize(pixmap.PixFormat)
	for y := 0; y < pixmap.Height; y++ {
		src := pixmap.Data[y*pixmap.BytePerLine:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < pixmap.Width; x++ {
			s := src[x*pixSize:]
			d := dst[x*4 : x*4+4]
			if pixmap.PixFormat == RGBA32 {
				a := uint32(s[3])
				d[0] = uint8(uint32(s[0]) * a / 0xFF)
				d[1] = uint8(uint32(s[1]) * a / 0xFF)
				d[2] = uint8(uint32(s[2]) * a / 0xFF)
				d[3] = s[3]
				continue
			}
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
		}
	}
	return img
}

// PixmapFromImage converts any image into an RGBA32 pixmap with straight alpha.
func PixmapFromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pixmap := NewPixmap(bounds.Dx(), bounds.Dy(), RGBA32)
	for y := 0; y < pixmap.Height; y++ {
		copy(pixmap.Data[y*pixmap.BytePerLine:(y+1)*pixmap.BytePerLine],
			nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+pixmap.BytePerLine])
	}
	return pixmap
}

// pixmapFromPremultiplied converts an image.RGBA back into straight alpha.
func pixmapFromPremultiplied(img *image.RGBA) *Pixmap {
	bounds := img.Bounds()
	pixmap := NewPixmap(bounds.Dx(), bounds.Dy(), RGBA32)
	for y := 0; y < pixmap.Height; y++ {
		src := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		dst := pixmap.Data[y*pixmap.BytePerLine:]
		for x := 0; x < pixmap.Width; x++ {
			s := src[x*4 : x*4+4]
			d := dst[x*4 : x*4+4]
			a := uint32(s[3])
			if a == 0 {
				continue
			}
			d[0] = uint8(min(uint32(s[0])*0xFF/a, 0xFF))
			d[1] = uint8(min(uint32(s[1])*0xFF/a, 0xFF))
			d[2] = uint8(min(uint32(s[2])*0xFF/a, 0xFF))
			d[3] = s[3]
		}
	}
	return pixmap
}

// RGBAt returns the color of the pixel at (x, y).
func (pixmap *Pixmap) RGBAt(x, y int) color.NRGBA {
	off := pixmap.PixOffset(x, y)
	if pixmap.PixFormat == RGBA32 {
		return color.NRGBA{R: pixmap.Data[off], G: pixmap.Data[off+1], B: pixmap.Data[off+2], A: pixmap.Data[off+3]}
	}
	return color.NRGBA{R: pixmap.Data[off], G: pixmap.Data[off+1], B: pixmap.Data[off+2], A: 0xFF}
}
