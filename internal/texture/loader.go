package texture

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Load decodes a PNG, JPEG or TGA file into an NRGBA image.
// The decoder is picked from the file extension.
func Load(path string) (*image.NRGBA, error) {
	var decode func(f *os.File) (image.Image, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		decode = func(f *os.File) (image.Image, error) { return tga.Decode(f) }
	case ".png":
		decode = func(f *os.File) (image.Image, error) { return png.Decode(f) }
	case ".jpg", ".jpeg":
		decode = func(f *os.File) (image.Image, error) { return jpeg.Decode(f) }
	default:
		return nil, fmt.Errorf("texture: unsupported extension %q: %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture: empty image: %s", path)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
