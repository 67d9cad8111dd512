package snowscene

// NullFrameSink discards frames, counting them
type NullFrameSink struct {
	frameCounter
	closed bool
}

// NewNullFrameSink returns null frame sink
func NewNullFrameSink() *NullFrameSink {
	return &NullFrameSink{}
}

// WriteFrame checks the frame order and drops the frame.
func (sink *NullFrameSink) WriteFrame(frameIdx int, frame *Pixmap) error {
	return sink.check(frameIdx)
}

// Close marks the sink closed.
func (sink *NullFrameSink) Close() error {
	sink.closed = true
	return nil
}

// Closed reports whether Close was called.
func (sink *NullFrameSink) Closed() bool {
	return sink.closed
}
