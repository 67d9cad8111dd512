package snowscene

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// packedMagic starts every packed pixmap file.
var packedMagic = [4]byte{'S', 'N', 'P', 'K'}

const maxPackedSide = 32000

var errInvalidPackedData = errors.New("invalid packed pixmap data")

// PackedPixmap is a run-length encoded pixmap. Each row is a sequence of
// (count, pixel) runs terminated by a zero byte. Sprites with large
// transparent areas pack well.
type PackedPixmap struct {
	Data      []byte
	Width     int
	Height    int
	PixFormat PixelFormat
}

// PackPixmap packs Pixmap
func PackPixmap(pixmap *Pixmap) *PackedPixmap {
	packedPixmap := &PackedPixmap{
		Width:     pixmap.Width,
		Height:    pixmap.Height,
		PixFormat: pixmap.PixFormat,
	}

	pixSize := GetPixelSize(pixmap.PixFormat)
	for y := 0; y < pixmap.Height; y++ {
		rowOffset := pixmap.BytePerLine * y
		row := pixmap.Data[rowOffset : rowOffset+pixmap.Width*pixSize]

		for pixOffset := 0; pixOffset < len(row); {
			pixel := row[pixOffset : pixOffset+pixSize]

			var runLength byte = 1
			pixOffset += pixSize
			for pixOffset < len(row) && runLength < 0xFF &&
				bytes.Equal(pixel, row[pixOffset:pixOffset+pixSize]) {
				runLength++
				pixOffset += pixSize
			}

			packedPixmap.Data = append(packedPixmap.Data, runLength)
			packedPixmap.Data = append(packedPixmap.Data, pixel...)
		}
		packedPixmap.Data = append(packedPixmap.Data, 0x00) // end of row
	}

	return packedPixmap
}

// Unpack unpacks PackedPixmap
func (packedPixmap *PackedPixmap) Unpack() (*Pixmap, error) {
	pixSize := GetPixelSize(packedPixmap.PixFormat)
	if pixSize == 0 {
		return nil, fmt.Errorf("pixel format %d: %w", packedPixmap.PixFormat, ErrUnsupportedChannels)
	}

	pixmap := NewPixmap(packedPixmap.Width, packedPixmap.Height, packedPixmap.PixFormat)
	data := packedPixmap.Data
	out := pixmap.Data[:0]

	rowCount := 0
	rowSize := 0
	for pos := 0; pos < len(data); {
		runLength := int(data[pos])
		pos++
		if runLength == 0 {
			if rowSize != packedPixmap.Width {
				return nil, fmt.Errorf("row %d has %d pixels: %w", rowCount, rowSize, errInvalidPackedData)
			}
			rowCount++
			rowSize = 0
			continue
		}

		if rowCount >= packedPixmap.Height || pos+pixSize > len(data) || rowSize+runLength > packedPixmap.Width {
			return nil, errInvalidPackedData
		}
		pixel := data[pos : pos+pixSize]
		for i := 0; i < runLength; i++ {
			out = append(out, pixel...)
		}
		rowSize += runLength
		pos += pixSize
	}

	if rowCount != packedPixmap.Height {
		return nil, fmt.Errorf("%d rows, expected %d: %w", rowCount, packedPixmap.Height, errInvalidPackedData)
	}
	return pixmap, nil
}

// WriteTo writes the header and the packed data.
func (packedPixmap *PackedPixmap) WriteTo(w io.Writer) (int64, error) {
	header := struct {
		Magic     [4]byte
		PixFormat uint32
		Width     uint32
		Height    uint32
	}{
		packedMagic,
		uint32(packedPixmap.PixFormat),
		uint32(packedPixmap.Width),
		uint32(packedPixmap.Height),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return 0, err
	}
	n, err := w.Write(packedPixmap.Data)
	return int64(binary.Size(&header) + n), err
}

// Save saves PackedPixmap
func (packedPixmap *PackedPixmap) Save(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err = packedPixmap.WriteTo(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// ReadPackedPixmap reads a packed pixmap and checks its structure.
func ReadPackedPixmap(r io.Reader) (*PackedPixmap, error) {
	var header struct {
		Magic     [4]byte
		PixFormat uint32
		Width     uint32
		Height    uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != packedMagic {
		return nil, fmt.Errorf("bad magic %q: %w", header.Magic[:], errInvalidPackedData)
	}

	pixFormat := PixelFormat(header.PixFormat)
	if GetPixelSize(pixFormat) == 0 {
		return nil, fmt.Errorf("pixel format %d: %w", header.PixFormat, ErrUnsupportedChannels)
	}
	if header.Width > maxPackedSide || header.Height > maxPackedSide {
		return nil, fmt.Errorf("size %dx%d: %w", header.Width, header.Height, errInvalidPackedData)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return &PackedPixmap{
		Data:      data,
		Width:     int(header.Width),
		Height:    int(header.Height),
		PixFormat: pixFormat,
	}, nil
}

// LoadPackedPixmap loads a packed pixmap file and unpacks it.
func LoadPackedPixmap(fileName string) (*Pixmap, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	packedPixmap, err := ReadPackedPixmap(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return packedPixmap.Unpack()
}
