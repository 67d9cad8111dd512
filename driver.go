package snowscene

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Driver renders the frames of a scene one by one and hands them to the sink
type Driver struct {
	scene       *Scene
	sink        FrameSink
	canvas      *Pixmap
	fps         int
	totalFrames int
	log         logrus.FieldLogger

	nextFrameNum int
}

// NewDriver creates new Driver
func NewDriver(scene *Scene, sink FrameSink, width, height, fps, totalFrames int, log logrus.FieldLogger) (*Driver, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: %w", width, height, ErrInvalidConfig)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps %d: %w", fps, ErrInvalidConfig)
	}
	if totalFrames < 0 {
		return nil, fmt.Errorf("total frames %d: %w", totalFrames, ErrInvalidConfig)
	}
	if sink == nil {
		return nil, errors.New("Driver needs a frame sink")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Driver{
		scene:       scene,
		sink:        sink,
		canvas:      NewPixmap(width, height, RGB24),
		fps:         fps,
		totalFrames: totalFrames,
		log:         log,
	}, nil
}

// Canvas returns the canvas of the last rendered frame.
func (driver *Driver) Canvas() *Pixmap {
	return driver.canvas
}

// Done reports whether all frames have been rendered.
func (driver *Driver) Done() bool {
	return driver.nextFrameNum >= driver.totalFrames
}

// Next renders the next frame and writes it to the sink.
func (driver *Driver) Next() error {
	if driver.Done() {
		return errors.New("Driver has already rendered all frames")
	}

	frameIdx := driver.nextFrameNum
	driver.canvas.Clear()
	if err := driver.scene.Render(frameIdx, driver.canvas); err != nil {
		return fmt.Errorf("frame %d: %w", frameIdx, err)
	}
	if err := driver.sink.WriteFrame(frameIdx, driver.canvas); err != nil {
		return fmt.Errorf("frame %d: %w", frameIdx, err)
	}
	driver.nextFrameNum++

	if driver.nextFrameNum%driver.fps == 0 || driver.Done() {
		driver.log.WithFields(logrus.Fields{
			"frame":   driver.nextFrameNum,
			"total":   driver.totalFrames,
			"percent": fmt.Sprintf("%.2f", 100*float64(driver.nextFrameNum)/float64(driver.totalFrames)),
		}).Info("Frames written")
	}
	return nil
}

// Run renders all remaining frames and closes the sink. The sink is closed
// even when rendering fails.
func (driver *Driver) Run() error {
	for !driver.Done() {
		if err := driver.Next(); err != nil {
			driver.sink.Close()
			return err
		}
	}

	if err := driver.sink.Close(); err != nil {
		return fmt.Errorf("closing frame sink: %w", err)
	}
	driver.log.WithField("frames", driver.totalFrames).Info("Video saved")
	return nil
}
