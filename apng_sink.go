package snowscene

import (
	"fmt"
	"image"
	"os"

	"github.com/setanarut/apng"
)

// APNGSink collects frames and writes an animated PNG on Close.
type APNGSink struct {
	frameCounter
	path   string
	delay  uint16
	frames []image.Image
}

// NewAPNGSink checks that the output file can be created.
func NewAPNGSink(path string, fps int) (*APNGSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSinkOpen)
	}
	file.Close()
	os.Remove(path)

	return &APNGSink{
		path:  path,
		delay: uint16(frameDelay(fps)),
	}, nil
}

// WriteFrame keeps a copy of the frame.
func (sink *APNGSink) WriteFrame(frameIdx int, frame *Pixmap) error {
	if err := sink.check(frameIdx); err != nil {
		return err
	}
	sink.frames = append(sink.frames, frame.Image())
	return nil
}

// Close encodes all frames to the file.
func (sink *APNGSink) Close() error {
	if len(sink.frames) == 0 {
		return fmt.Errorf("apng %s: no frames written", sink.path)
	}
	apng.Save(sink.path, sink.frames, sink.delay)
	if _, err := os.Stat(sink.path); err != nil {
		return fmt.Errorf("apng %s was not written: %w", sink.path, err)
	}
	return nil
}
