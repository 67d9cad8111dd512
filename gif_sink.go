package snowscene

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// GIFSink collects frames and writes an animated GIF on Close. Frames are
// reduced to the Plan 9 palette with Floyd-Steinberg dithering.
type GIFSink struct {
	frameCounter
	path  string
	delay int
	anim  gif.GIF
}

// NewGIFSink checks that the output file can be created.
func NewGIFSink(path string, fps int) (*GIFSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSinkOpen)
	}
	file.Close()

	return &GIFSink{
		path:  path,
		delay: frameDelay(fps),
	}, nil
}

// WriteFrame quantizes the frame and keeps it.
func (sink *GIFSink) WriteFrame(frameIdx int, frame *Pixmap) error {
	if err := sink.check(frameIdx); err != nil {
		return err
	}

	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, frame.Image(), image.Point{})

	sink.anim.Image = append(sink.anim.Image, paletted)
	sink.anim.Delay = append(sink.anim.Delay, sink.delay)
	return nil
}

// Close encodes all frames to the file.
func (sink *GIFSink) Close() error {
	file, err := os.Create(sink.path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err = gif.EncodeAll(file, &sink.anim); err != nil {
		return err
	}
	return file.Sync()
}
