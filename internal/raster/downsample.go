package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled render to targetSize with
// premultiplied-alpha CatmullRom filtering. Filtering straight NRGBA would
// smear the color of fully transparent background pixels into the edges of
// the model.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp255(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp255(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp255(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}
