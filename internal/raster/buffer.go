package raster

import "image"

// FrameBuffer is an RGBA render target with a depth buffer. Depth grows
// toward the viewer: a fragment wins when its z is greater than the stored
// value.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8
	Depth  []float64
}

// NewFrameBuffer allocates a cleared framebuffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint8, width*height*4),
		Depth:  make([]float64, width*height),
	}
	for i := range fb.Depth {
		fb.Depth[i] = -1e30
	}
	return fb
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
