package snowscene

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
)

const defaultCodec = "libx264"

// FFmpegSink streams raw RGB frames to an ffmpeg process which encodes them
// into a video file.
type FFmpegSink struct {
	frameCounter
	width  int
	height int
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *bufio.Writer
	stderr bytes.Buffer
}

// NewFFmpegSink starts ffmpeg writing to path.
func NewFFmpegSink(path string, width, height, fps int, ffmpegPath, codec string) (*FFmpegSink, error) {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if codec == "" {
		codec = defaultCodec
	}

	sink := &FFmpegSink{width: width, height: height}
	sink.cmd = exec.Command(ffmpegPath,
		"-y", "-loglevel", "error",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.Itoa(fps),
		"-i", "-",
		"-c:v", codec,
		"-pix_fmt", "yuv420p",
		path)
	sink.cmd.Stderr = &sink.stderr

	stdin, err := sink.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSinkOpen)
	}
	sink.stdin = stdin
	sink.out = bufio.NewWriterSize(stdin, 1<<20)

	if err = sink.cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", ffmpegPath, err, ErrSinkOpen)
	}
	return sink, nil
}

// WriteFrame sends the frame's pixels to ffmpeg.
func (sink *FFmpegSink) WriteFrame(frameIdx int, frame *Pixmap) error {
	if err := sink.check(frameIdx); err != nil {
		return err
	}
	if frame.PixFormat != RGB24 || frame.Width != sink.width || frame.Height != sink.height {
		return fmt.Errorf("frame %d is %dx%d %v, expected %dx%d RGB24",
			frameIdx, frame.Width, frame.Height, frame.PixFormat, sink.width, sink.height)
	}

	rowSize := frame.Width * 3
	for y := 0; y < frame.Height; y++ {
		row := frame.Data[y*frame.BytePerLine : y*frame.BytePerLine+rowSize]
		if _, err := sink.out.Write(row); err != nil {
			return fmt.Errorf("ffmpeg: %v: %s", err, sink.stderr.String())
		}
	}
	return nil
}

// Close finishes the video and waits for ffmpeg to exit.
func (sink *FFmpegSink) Close() error {
	if err := sink.out.Flush(); err != nil {
		sink.stdin.Close()
		sink.cmd.Wait()
		return fmt.Errorf("ffmpeg: %v: %s", err, sink.stderr.String())
	}
	if err := sink.stdin.Close(); err != nil {
		return err
	}
	if err := sink.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %v: %s", err, sink.stderr.String())
	}
	return nil
}
