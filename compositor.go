package snowscene

import (
	"image/color"
	"math"
)

// BlendPixel blends a straight-alpha color over the canvas pixel at (x, y).
// Pixels outside the canvas are ignored.
func BlendPixel(canvas *Pixmap, x, y int, c color.NRGBA) {
	if x < 0 || x >= canvas.Width || y < 0 || y >= canvas.Height {
		return
	}
	off := canvas.PixOffset(x, y)
	blend(canvas.Data[off:off+3], c.R, c.G, c.B, c.A)
}

// blend computes out = a*fg + (1-a)*bg per channel, rounded to nearest.
func blend(bg []byte, r, g, b, a uint8) {
	alpha := uint32(a)
	inv := 0xFF - alpha
	bg[0] = uint8((alpha*uint32(r) + inv*uint32(bg[0]) + 0x7F) / 0xFF)
	bg[1] = uint8((alpha*uint32(g) + inv*uint32(bg[1]) + 0x7F) / 0xFF)
	bg[2] = uint8((alpha*uint32(b) + inv*uint32(bg[2]) + 0x7F) / 0xFF)
}

// DrawSprite alpha-blends the sprite onto the canvas with the sprite centered
// at (x, y). Only the part of the sprite that overlaps the canvas is visited.
// The call does nothing unless the sprite is RGBA32 and the canvas is RGB24.
func DrawSprite(canvas *Pixmap, sprite *Pixmap, x, y float64) {
	if sprite.IsEmpty() || sprite.PixFormat != RGBA32 ||
		canvas.IsEmpty() || canvas.PixFormat != RGB24 {
		return
	}

	xOffset := int(math.Floor(x - float64(sprite.Width)/2))
	yOffset := int(math.Floor(y - float64(sprite.Height)/2))

	startDY := max(0, -yOffset)
	endDY := min(sprite.Height, canvas.Height-yOffset)
	startDX := max(0, -xOffset)
	endDX := min(sprite.Width, canvas.Width-xOffset)

	for dy := startDY; dy < endDY; dy++ {
		src := sprite.Data[dy*sprite.BytePerLine:]
		dst := canvas.Data[(yOffset+dy)*canvas.BytePerLine:]
		for dx := startDX; dx < endDX; dx++ {
			pix := src[dx*4 : dx*4+4]
			if pix[3] == 0 {
				continue
			}
			px := (xOffset + dx) * 3
			blend(dst[px:px+3], pix[0], pix[1], pix[2], pix[3])
		}
	}
}

// FillDisc paints an opaque filled disc without antialiasing. A pixel is
// covered when its distance to the rounded center is at most radius.
func FillDisc(canvas *Pixmap, x, y float64, radius int, c color.RGBA) {
	if canvas.IsEmpty() || canvas.PixFormat != RGB24 || radius < 0 {
		return
	}

	cx := int(math.Round(x))
	cy := int(math.Round(y))
	r2 := radius * radius

	for dy := -radius; dy <= radius; dy++ {
		py := cy + dy
		if py < 0 || py >= canvas.Height {
			continue
		}
		span := int(math.Sqrt(float64(r2 - dy*dy)))
		x0 := max(0, cx-span)
		x1 := min(canvas.Width-1, cx+span)
		row := canvas.Data[py*canvas.BytePerLine:]
		for px := x0; px <= x1; px++ {
			row[px*3] = c.R
			row[px*3+1] = c.G
			row[px*3+2] = c.B
		}
	}
}
