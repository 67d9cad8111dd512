package snowscene

// Layer is one animated part of the scene. Render advances the layer to
// frameIdx and paints it onto the canvas. Frames are rendered strictly in
// increasing order.
type Layer interface {
	Render(frameIdx int, canvas *Pixmap) error
}
