package snowscene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FrameSink is the interface definition for video output. Frames are handed
// over one at a time, in increasing order and without gaps.
type FrameSink interface {
	WriteFrame(frameIdx int, frame *Pixmap) error
	Close() error
}

// frameCounter rejects frames written out of order.
type frameCounter struct {
	next int
}

func (counter *frameCounter) check(frameIdx int) error {
	if frameIdx != counter.next {
		return fmt.Errorf("got frame %d, expected frame %d: %w", frameIdx, counter.next, ErrFrameOrder)
	}
	counter.next++
	return nil
}

// Frames returns the number of frames accepted so far.
func (counter *frameCounter) Frames() int {
	return counter.next
}

// Sink formats
const (
	FormatFFmpeg = "ffmpeg"
	FormatPNG    = "png"
	FormatGIF    = "gif"
	FormatAPNG   = "apng"
	FormatNull   = "null"
)

// SinkOptions selects and configures a frame sink.
type SinkOptions struct {
	// Format is one of the Format constants. Empty picks the format from the
	// extension of Path.
	Format string
	Path   string
	Width  int
	Height int
	FPS    int
	// FFmpegPath is the ffmpeg executable; empty means "ffmpeg" from PATH.
	FFmpegPath string
	// Codec is the ffmpeg video codec.
	Codec string
}

// FormatForPath guesses the sink format from an output path.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return FormatGIF
	case ".apng", ".png":
		return FormatAPNG
	case "":
		return FormatPNG
	default:
		return FormatFFmpeg
	}
}

// OpenFrameSink opens the sink described by opts.
func OpenFrameSink(opts SinkOptions) (FrameSink, error) {
	format := opts.Format
	if format == "" {
		format = FormatForPath(opts.Path)
	}

	switch format {
	case FormatFFmpeg:
		return NewFFmpegSink(opts.Path, opts.Width, opts.Height, opts.FPS, opts.FFmpegPath, opts.Codec)
	case FormatPNG:
		return NewPNGSequenceSink(opts.Path)
	case FormatGIF:
		return NewGIFSink(opts.Path, opts.FPS)
	case FormatAPNG:
		return NewAPNGSink(opts.Path, opts.FPS)
	case FormatNull:
		return NewNullFrameSink(), nil
	default:
		return nil, fmt.Errorf("unknown output format '%s': %w", format, ErrSinkOpen)
	}
}

// frameDelay returns the delay between frames in hundredths of a second.
func frameDelay(fps int) int {
	if fps <= 0 {
		return 1
	}
	return max(1, (100+fps/2)/fps)
}
