// Package sdlimage decodes sprite files with SDL_image.
package sdlimage

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rmcsoft/snowscene"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

var initOnce sync.Once

func initImg() {
	initOnce.Do(func() {
		img.Init(img.INIT_JPG | img.INIT_PNG)
	})
}

// PackedExt is the extension of packed pixmap files, which are read without SDL.
const PackedExt = ".ppixmap"

// LoadPixmap loads Pixmap from file. Images without alpha become RGB24
// pixmaps; images with alpha and paletted images become RGBA32 pixmaps.
func LoadPixmap(fileName string) (*snowscene.Pixmap, error) {
	if strings.EqualFold(filepath.Ext(fileName), PackedExt) {
		return snowscene.LoadPackedPixmap(fileName)
	}

	initImg()
	image, err := img.Load(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", fileName, err)
	}
	defer image.Free()

	pixFormat, sdlPixFormat, err := targetFormat(image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	convertedImage, err := image.ConvertFormat(sdlPixFormat, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", fileName, err)
	}
	defer convertedImage.Free()

	pixmap := snowscene.Pixmap{
		Data:        make([]byte, len(convertedImage.Pixels())),
		Width:       int(convertedImage.W),
		Height:      int(convertedImage.H),
		BytePerLine: int(convertedImage.Pitch),
		PixFormat:   pixFormat,
	}
	copy(pixmap.Data, convertedImage.Pixels())
	return &pixmap, nil
}

// targetFormat picks the pixmap format a decoded surface is converted to.
// Paletted surfaces may carry transparency in the palette or a color key, so
// they always become RGBA32; direct-color surfaces keep their alpha channel
// if they have one.
func targetFormat(surface *sdl.Surface) (snowscene.PixelFormat, uint32, error) {
	format := surface.Format
	switch {
	case format.Palette != nil:
		return snowscene.RGBA32, uint32(sdl.PIXELFORMAT_RGBA32), nil
	case format.BytesPerPixel == 3, format.BytesPerPixel == 4 && format.Amask == 0:
		return snowscene.RGB24, uint32(sdl.PIXELFORMAT_RGB24), nil
	case format.BytesPerPixel == 4:
		return snowscene.RGBA32, uint32(sdl.PIXELFORMAT_RGBA32), nil
	default:
		return 0, 0, fmt.Errorf("%d bytes per pixel: %w",
			format.BytesPerPixel, snowscene.ErrUnsupportedChannels)
	}
}

// LoadSprites loads the three sprites of a scene.
func LoadSprites(assets snowscene.AssetsConfig) (snowscene.Sprites, error) {
	var sprites snowscene.Sprites
	var err error

	load := func(name string) *snowscene.Pixmap {
		if err != nil {
			return nil
		}
		var pixmap *snowscene.Pixmap
		pixmap, err = LoadPixmap(filepath.Join(assets.Dir, name))
		return pixmap
	}

	sprites.Snowflake = load(assets.Snowflake)
	sprites.Fir = load(assets.Fir)
	sprites.Hare = load(assets.Hare)
	return sprites, err
}
