// Package renderer draws skin models with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skinforge/internal/logger"
	"github.com/Faultbox/skinforge/pkg/math"
	"github.com/Faultbox/skinforge/pkg/skin"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// glMesh holds the GPU buffers for one model mesh.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32

	// Uniform locations
	locMVP         int32
	locLightDir    int32
	locAlphaCutoff int32
	locForceOpaque int32

	texture uint32

	model  *skin.Model
	meshes map[string]*glMesh
}

// New creates a new renderer.
// Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[string]*glMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.12, 0.12, 0.16, 1.0)

	var err error
	r.program, err = createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locMVP = gl.GetUniformLocation(r.program, gl.Str("uMVP\x00"))
	r.locLightDir = gl.GetUniformLocation(r.program, gl.Str("uLightDir\x00"))
	r.locAlphaCutoff = gl.GetUniformLocation(r.program, gl.Str("uAlphaCutoff\x00"))
	r.locForceOpaque = gl.GetUniformLocation(r.program, gl.Str("uForceOpaque\x00"))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	r.meshes = make(map[string]*glMesh)
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// SetModel uploads the model's meshes to the GPU, replacing any previous
// geometry. The model reference is kept so visibility toggles take effect
// on the next frame without a re-upload.
func (r *Renderer) SetModel(m *skin.Model) {
	for _, gm := range r.meshes {
		gl.DeleteVertexArrays(1, &gm.vao)
		gl.DeleteBuffers(1, &gm.vbo)
		gl.DeleteBuffers(1, &gm.ebo)
	}
	r.meshes = make(map[string]*glMesh)
	r.model = m

	for _, mesh := range m.Meshes() {
		r.meshes[mesh.Name] = uploadMesh(mesh)
	}

	logger.Debug("model uploaded",
		zap.String("variant", string(m.Variant)),
		zap.Int("meshes", len(r.meshes)),
	)
}

// uploadMesh creates the VAO/VBO/EBO for one cuboid mesh.
// Vertex layout matches skin.Vertex: position, normal, texcoord.
func uploadMesh(mesh *skin.Mesh) *glMesh {
	gm := &glMesh{indexCount: int32(len(mesh.Cuboid.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	verts := mesh.Cuboid.Vertices
	const stride = int32(8 * 4) // 3 position + 3 normal + 2 texcoord floats
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(stride), unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	idx := mesh.Cuboid.Indices
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, unsafe.Pointer(&idx[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return gm
}

// SetTexture uploads the skin texture. NEAREST filtering keeps the
// pixel-art look at any zoom.
func (r *Renderer) SetTexture(img *image.NRGBA) {
	if r.texture == 0 {
		gl.GenTextures(1, &r.texture)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw renders the current model with the given view and projection.
// Base layers draw first with backface culling; overlay layers draw in a
// second pass without culling so their inside faces show through holes.
func (r *Renderer) Draw(view, proj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.model == nil || r.texture == 0 {
		return
	}

	// Model matrix is the root offset that drops the feet onto the origin.
	model := math.Translate(r.model.Offset.X, r.model.Offset.Y, r.model.Offset.Z)
	mvp := proj.Mul(view).Mul(model)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.Uniform3f(r.locLightDir, -0.4, 0.7, 0.6)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	// Base pass
	gl.Enable(gl.CULL_FACE)
	gl.Uniform1f(r.locAlphaCutoff, 0.0)
	gl.Uniform1i(r.locForceOpaque, 1)
	r.drawLayer(skin.LayerBase)

	// Overlay pass
	gl.Disable(gl.CULL_FACE)
	gl.Uniform1f(r.locAlphaCutoff, 0.5)
	gl.Uniform1i(r.locForceOpaque, 0)
	r.drawLayer(skin.LayerOverlay)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) drawLayer(layer skin.Layer) {
	for _, mesh := range r.model.Meshes() {
		if mesh.Layer != layer || !mesh.Visible {
			continue
		}
		gm, ok := r.meshes[mesh.Name]
		if !ok {
			continue
		}
		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	}
}

// Screenshot reads back the framebuffer as an image. OpenGL rows run
// bottom-up, so the result is flipped into top-down order.
func (r *Renderer) Screenshot() *image.NRGBA {
	w, h := r.config.Width, r.config.Height
	pix := make([]uint8, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*rowLen : (h-y)*rowLen]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], src)
	}
	return img
}
