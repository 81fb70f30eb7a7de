// Package texture loads skin textures and normalizes them to the 64-wide
// atlas layout the model builder expects.
package texture

import (
	"fmt"
	"image"
	"io"
	"os"

	// Skin downloads are PNG; JPEG and TGA show up in older skin packs.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/Faultbox/skinforge/pkg/skin"
)

// Skin is a decoded, normalized skin texture.
type Skin struct {
	Image  *image.NRGBA
	Width  int
	Height int
	Legacy bool // converted from the 64x32 pre-1.8 layout
}

// Load reads and decodes a skin texture from a file.
func Load(path string) (*Skin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a skin texture and validates its dimensions. 64x32 legacy
// skins are expanded onto a 64x64 canvas; 64x64 and 64x128 pass through.
func Decode(r io.Reader) (*Skin, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	nrgba := toNRGBA(img)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()

	if w != skin.AtlasWidth {
		return nil, fmt.Errorf("unsupported skin width %d, want %d", w, skin.AtlasWidth)
	}

	switch h {
	case 32:
		return &Skin{Image: ConvertLegacy(nrgba), Width: w, Height: 64, Legacy: true}, nil
	case 64, 128:
		return &Skin{Image: nrgba, Width: w, Height: h}, nil
	default:
		return nil, fmt.Errorf("unsupported skin height %d, want 32, 64 or 128", h)
	}
}

// toNRGBA converts any decoded image to NRGBA with a zero-based origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
