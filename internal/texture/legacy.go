package texture

import (
	"image"
	"image/draw"
)

// legacyCopies maps the right-limb face rectangles of a 64x32 skin onto the
// dedicated left-limb slots of the 64x64 layout. Every copy is mirrored
// horizontally, which also swaps the inner and outer side faces.
var legacyCopies = []struct{ sx, sy, w, h, dx, dy int }{
	{4, 16, 4, 4, 20, 48},   // leg top
	{8, 16, 4, 4, 24, 48},   // leg bottom
	{0, 20, 4, 12, 24, 52},  // leg outer side
	{4, 20, 4, 12, 20, 52},  // leg front
	{8, 20, 4, 12, 16, 52},  // leg inner side
	{12, 20, 4, 12, 28, 52}, // leg back
	{44, 16, 4, 4, 36, 48},  // arm top
	{48, 16, 4, 4, 40, 48},  // arm bottom
	{40, 20, 4, 12, 40, 52}, // arm outer side
	{44, 20, 4, 12, 36, 52}, // arm front
	{48, 20, 4, 12, 32, 52}, // arm inner side
	{52, 20, 4, 12, 44, 52}, // arm back
}

// ConvertLegacy expands a 64x32 pre-1.8 skin onto a 64x64 canvas. The top
// half is copied as-is; left arm and leg textures are synthesized by
// mirroring the right limb into the slots the newer layout reserves for
// them. The overlay regions of the bottom half stay transparent.
func ConvertLegacy(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(dst, image.Rect(0, 0, 64, 32), src, image.Point{}, draw.Src)

	for _, c := range legacyCopies {
		copyMirrored(dst, c.sx, c.sy, c.w, c.h, c.dx, c.dy)
	}
	return dst
}

// copyMirrored copies a rectangle within img, flipping it horizontally.
func copyMirrored(img *image.NRGBA, sx, sy, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(dx+(w-1-x), dy+y, img.NRGBAAt(sx+x, sy+y))
		}
	}
}
