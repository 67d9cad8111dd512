package snowscene

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSequenceSink writes every frame into its own PNG file.
type PNGSequenceSink struct {
	frameCounter
	dir     string
	encoder png.Encoder
}

// NewPNGSequenceSink creates the output directory if needed.
func NewPNGSequenceSink(dir string) (*PNGSequenceSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSinkOpen)
	}
	return &PNGSequenceSink{
		dir:     dir,
		encoder: png.Encoder{CompressionLevel: png.BestSpeed},
	}, nil
}

// FramePath returns the file name of a frame.
func (sink *PNGSequenceSink) FramePath(frameIdx int) string {
	return filepath.Join(sink.dir, fmt.Sprintf("frame_%06d.png", frameIdx))
}

// WriteFrame encodes the frame to its file.
func (sink *PNGSequenceSink) WriteFrame(frameIdx int, frame *Pixmap) error {
	if err := sink.check(frameIdx); err != nil {
		return err
	}

	file, err := os.Create(sink.FramePath(frameIdx))
	if err != nil {
		return err
	}
	defer file.Close()

	if err = sink.encoder.Encode(file, frame.Image()); err != nil {
		return err
	}
	return file.Sync()
}

// Close does nothing; every frame is already on disk.
func (sink *PNGSequenceSink) Close() error {
	return nil
}
