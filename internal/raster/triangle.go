package raster

import (
	"image"
	"math"
)

// Vertex is a projected vertex ready for rasterization: screen-space x/y,
// view-space depth and normalized texture coordinates.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

// alphaCutoff is the minimum texel alpha an alpha-tested fragment keeps.
const alphaCutoff = 128

// RasterizeTriangle fills one triangle into fb with z-buffering and
// nearest-neighbor texture sampling (skins are pixel art; filtering would
// bleed neighboring atlas rectangles into each other).
//
// Triangles are filled regardless of winding, which makes every surface
// double-sided. When alphaTest is set, texels below the cutoff are dropped;
// otherwise texel alpha is ignored and fragments are opaque. shade scales
// the sampled color.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 Vertex, tex *image.NRGBA, alphaTest bool, shade float64) {
	// Orient so the barycentric determinant is positive.
	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det < 0 {
		v1, v2 = v2, v1
		det = -det
	}
	if det < 1e-9 {
		return
	}
	invDet := 1.0 / det

	minX := int(math.Floor(min3(v0.X, v1.X, v2.X)))
	maxX := int(math.Ceil(max3(v0.X, v1.X, v2.X)))
	minY := int(math.Floor(min3(v0.Y, v1.Y, v2.Y)))
	maxY := int(math.Ceil(max3(v0.Y, v1.Y, v2.Y)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	texW := tex.Bounds().Dx()
	texH := tex.Bounds().Dy()

	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - v2.Y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - v2.X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			zIdx := rowOff + sx
			if z <= fb.Depth[zIdx] {
				continue
			}

			u := w0*v0.U + w1*v1.U + w2*v2.U
			v := w0*v0.V + w1*v1.V + w2*v2.V
			r, g, b, a := sampleNearest(tex, texW, texH, u, v)

			if alphaTest {
				if a < alphaCutoff {
					continue
				}
			} else {
				a = 255
			}
			fb.Depth[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(float64(r) * shade)
			fb.Color[pxIdx+1] = clamp255(float64(g) * shade)
			fb.Color[pxIdx+2] = clamp255(float64(b) * shade)
			fb.Color[pxIdx+3] = a
		}
	}
}

// sampleNearest samples the texel containing (u, v). UV space has its origin
// at the bottom left, so v is flipped back to pixel rows.
func sampleNearest(tex *image.NRGBA, texW, texH int, u, v float64) (r, g, b, a uint8) {
	x := int(u * float64(texW))
	y := int((1 - v) * float64(texH))
	if x < 0 {
		x = 0
	} else if x >= texW {
		x = texW - 1
	}
	if y < 0 {
		y = 0
	} else if y >= texH {
		y = texH - 1
	}
	i := tex.PixOffset(x, y)
	return tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3]
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
