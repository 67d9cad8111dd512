package snowscene

import "fmt"

// Scene contains the layers of a frame in painting order.
type Scene struct {
	Layers []Layer
}

// Render paints all layers onto the canvas, later layers over earlier ones.
func (scene *Scene) Render(frameIdx int, canvas *Pixmap) error {
	for i, layer := range scene.Layers {
		if err := layer.Render(frameIdx, canvas); err != nil {
			return fmt.Errorf("layer %d (%T): %w", i, layer, err)
		}
	}
	return nil
}
