// Package raster renders built skin models to images without a GPU.
// It is the backend for headless previews and for tests that need to verify
// what actually ends up on screen.
package raster

import (
	"image"
	gomath "math"

	"github.com/Faultbox/skinforge/pkg/math"
	"github.com/Faultbox/skinforge/pkg/skin"
)

// Options control a software render.
type Options struct {
	Size        int     // output width and height in pixels
	Supersample int     // render at Size*Supersample, then downsample
	Yaw         float32 // model rotation around Y, radians
	Pitch       float32 // model tilt around X, radians
	Margin      int     // blank border in output pixels
}

// DefaultOptions returns the three-quarter preview pose.
func DefaultOptions() Options {
	return Options{
		Size:        512,
		Supersample: 2,
		Yaw:         0.5,
		Pitch:       0.12,
		Margin:      16,
	}
}

// lighting for the flat-shaded preview: soft key light from the upper front
// left plus a floor of ambient.
var lightDir = math.Vec3{X: -0.4, Y: 0.7, Z: 0.6}.Normalize()

const (
	ambient = 0.55
	direct  = 0.45
)

// Render draws the model with its skin texture onto a transparent canvas
// using an orthographic projection. Hidden meshes are skipped entirely.
func Render(m *skin.Model, tex *image.NRGBA, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = 512
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	renderSize := opts.Size * opts.Supersample
	margin := opts.Margin * opts.Supersample

	rot := math.RotateX(opts.Pitch).Mul(math.RotateY(opts.Yaw))

	// Bounds of the visible geometry after rotation, for fit-to-frame.
	minB := math.Vec3{X: 1e30, Y: 1e30, Z: 1e30}
	maxB := math.Vec3{X: -1e30, Y: -1e30, Z: -1e30}
	forEachVisibleVertex(m, rot, func(p math.Vec3) {
		if p.X < minB.X {
			minB.X = p.X
		}
		if p.Y < minB.Y {
			minB.Y = p.Y
		}
		if p.X > maxB.X {
			maxB.X = p.X
		}
		if p.Y > maxB.Y {
			maxB.Y = p.Y
		}
	})
	if minB.X > maxB.X {
		// Nothing visible.
		return image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	}

	span := maxB.X - minB.X
	if maxB.Y-minB.Y > span {
		span = maxB.Y - minB.Y
	}
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(renderSize-2*margin) / float64(span)
	cx := float64(minB.X+maxB.X) / 2
	cy := float64(minB.Y+maxB.Y) / 2
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)

	for _, mesh := range m.Meshes() {
		if !mesh.Visible {
			continue
		}
		alphaTest := mesh.Layer == skin.LayerOverlay
		c := mesh.Cuboid

		// Project all 24 vertices once per mesh.
		projected := make([]Vertex, len(c.Vertices))
		for i, vtx := range c.Vertices {
			p := rot.TransformVec3(math.Vec3{
				X: vtx.Position[0], Y: vtx.Position[1], Z: vtx.Position[2],
			}.Add(m.Offset))
			projected[i] = Vertex{
				X: (float64(p.X)-cx)*scale + half,
				Y: half - (float64(p.Y)-cy)*scale,
				Z: float64(p.Z) * scale,
				U: float64(vtx.TexCoord[0]),
				V: float64(vtx.TexCoord[1]),
			}
		}

		for tri := 0; tri < len(c.Indices); tri += 3 {
			n := c.Vertices[c.Indices[tri]].Normal
			worldN := rot.TransformVec3(math.Vec3{X: n[0], Y: n[1], Z: n[2]})
			ndl := gomath.Abs(float64(worldN.Dot(lightDir)))
			shade := ambient + direct*ndl

			RasterizeTriangle(fb,
				projected[c.Indices[tri]],
				projected[c.Indices[tri+1]],
				projected[c.Indices[tri+2]],
				tex, alphaTest, shade)
		}
	}

	img := fb.Image()
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}

func forEachVisibleVertex(m *skin.Model, rot math.Mat4, fn func(math.Vec3)) {
	for _, mesh := range m.Meshes() {
		if !mesh.Visible {
			continue
		}
		for _, vtx := range mesh.Cuboid.Vertices {
			p := math.Vec3{X: vtx.Position[0], Y: vtx.Position[1], Z: vtx.Position[2]}.Add(m.Offset)
			fn(rot.TransformVec3(p))
		}
	}
}
