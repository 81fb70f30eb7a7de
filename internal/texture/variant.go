package texture

import (
	"image"

	"github.com/Faultbox/skinforge/pkg/skin"
)

// variantProbes are texels inside the classic right-arm region that the slim
// unwrap never covers: the classic back face spans columns 52-55 while the
// slim back face ends at column 53.
var variantProbes = [][2]int{
	{54, 20}, {54, 24}, {54, 28},
	{55, 20}, {55, 24}, {55, 28},
}

// DetectVariant guesses the model variant from the arm region of a
// normalized (64x64 or larger) skin. Slim skins leave the probed texels
// fully transparent; any opaque hit means the classic 4-wide arm is painted.
func DetectVariant(img *image.NRGBA) skin.Variant {
	for _, p := range variantProbes {
		if img.NRGBAAt(p[0], p[1]).A != 0 {
			return skin.VariantClassic
		}
	}
	return skin.VariantSlim
}
