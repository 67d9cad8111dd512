package snowscene

// PixelFormat is an enumeration of pixel formats
type PixelFormat int

const (
	// RGB24 is 24-bit opaque RGB format (R, G, B bytes). Canvases use it.
	RGB24 PixelFormat = iota
	// RGBA32 is 32-bit RGB format with straight alpha (R, G, B, A bytes).
	// Sprites use it.
	RGBA32
)

// GetPixelSize returns the number of bytes per pixel
func GetPixelSize(pixFormat PixelFormat) int {
	switch pixFormat {
	case RGB24:
		return 3
	case RGBA32:
		return 4
	default:
		return 0
	}
}

func (pixFormat PixelFormat) String() string {
	switch pixFormat {
	case RGB24:
		return "RGB24"
	case RGBA32:
		return "RGBA32"
	default:
		return "unknown"
	}
}
