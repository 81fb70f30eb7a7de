package skin

import "github.com/Faultbox/skinforge/pkg/math"

// Vertex is a single mesh vertex. Field order matches the GPU attribute
// layout used by the renderers.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Cuboid is a six-faced box with per-face texture coordinates. Faces occupy
// fixed vertex ranges: face i owns vertices [i*4, i*4+4) in the order
// up, down, right, front, left, back; corners within a face run top-left,
// top-right, bottom-right, bottom-left as seen from outside.
type Cuboid struct {
	Size     math.Vec3
	Position math.Vec3
	Vertices []Vertex // 24 vertices, 4 per face
	Indices  []uint32 // 36 indices, CCW seen from outside
}

// faceBasis gives, for each face, its outward normal plus the directions
// that run along the texture's horizontal and vertical axes, as signed axis
// vectors. "Front" is the +Z face, the one seen from the default +Z camera.
// Top and bottom are oriented so the rectangle's bottom edge touches the
// front face.
var faceBasis = [faceCount]struct{ normal, right, up math.Vec3 }{
	FaceUp:    {math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
	FaceDown:  {math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
	FaceRight: {math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
	FaceFront: {math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
	FaceLeft:  {math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
	FaceBack:  {math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
}

// faceCorners is the (right, up) sign pair per corner, in the fixed
// TL/TR/BR/BL order that matches FaceUV.
var faceCorners = [4][2]float32{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}

// NewCuboid builds a box of the given size centered at position, each face
// textured by its rectangle in uv mapped against a atlasW x atlasH atlas.
func NewCuboid(size, position math.Vec3, uv CuboidUV, atlasW, atlasH int) *Cuboid {
	half := size.Scale(0.5)
	c := &Cuboid{
		Size:     size,
		Position: position,
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	for f := Face(0); f < faceCount; f++ {
		basis := faceBasis[f]
		uvCorners := MapRect(uv.rect(f), atlasW, atlasH)
		base := uint32(len(c.Vertices))

		for i, s := range faceCorners {
			p := position.
				Add(basis.normal.Mul(half)).
				Add(basis.right.Mul(half).Scale(s[0])).
				Add(basis.up.Mul(half).Scale(s[1]))
			c.Vertices = append(c.Vertices, Vertex{
				Position: [3]float32{p.X, p.Y, p.Z},
				Normal:   [3]float32{basis.normal.X, basis.normal.Y, basis.normal.Z},
				TexCoord: uvCorners[i],
			})
		}

		// Two CCW triangles: (TL, BL, BR) and (TL, BR, TR).
		c.Indices = append(c.Indices, base, base+3, base+2, base, base+2, base+1)
	}

	return c
}

// FaceVertices returns the four vertices of the given face.
func (c *Cuboid) FaceVertices(f Face) []Vertex {
	return c.Vertices[int(f)*4 : int(f)*4+4]
}
