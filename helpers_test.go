package snowscene

import "image/color"

func solidSprite(w, h int, c color.NRGBA) *Pixmap {
	sprite := NewPixmap(w, h, RGBA32)
	for i := 0; i < len(sprite.Data); i += 4 {
		sprite.Data[i], sprite.Data[i+1], sprite.Data[i+2], sprite.Data[i+3] = c.R, c.G, c.B, c.A
	}
	return sprite
}

func filledCanvas(w, h int, v byte) *Pixmap {
	canvas := NewPixmap(w, h, RGB24)
	for i := range canvas.Data {
		canvas.Data[i] = v
	}
	return canvas
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
