package snowscene

// Fir is a still sprite drawn at the same place on every frame.
type Fir struct {
	sprite *Pixmap
	x, y   float64
}

// NewFir creates a layer drawing the sprite centered at (x, y).
func NewFir(sprite *Pixmap, x, y float64) *Fir {
	return &Fir{sprite: sprite, x: x, y: y}
}

// Sprite returns the fir sprite. The garland samples its lamps from it.
func (fir *Fir) Sprite() *Pixmap {
	return fir.sprite
}

// Render draws the fir.
func (fir *Fir) Render(frameIdx int, canvas *Pixmap) error {
	DrawSprite(canvas, fir.sprite, fir.x, fir.y)
	return nil
}
