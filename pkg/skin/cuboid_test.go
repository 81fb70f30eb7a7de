package skin

import (
	"testing"

	"github.com/Faultbox/skinforge/pkg/math"
)

func testUV() CuboidUV {
	return boxUV(0, 0, 8, 8, 8)
}

func TestNewCuboidCounts(t *testing.T) {
	c := NewCuboid(math.Vec3{X: 8, Y: 8, Z: 8}, math.Vec3{}, testUV(), 64, 64)
	if len(c.Vertices) != 24 {
		t.Errorf("vertex count = %d, want 24", len(c.Vertices))
	}
	if len(c.Indices) != 36 {
		t.Errorf("index count = %d, want 36", len(c.Indices))
	}
}

func TestNewCuboidFaceBinding(t *testing.T) {
	// Every face must carry the UVs of its own atlas rectangle, regardless
	// of the order the geometry is emitted in.
	uv := testUV()
	c := NewCuboid(math.Vec3{X: 8, Y: 8, Z: 8}, math.Vec3{}, uv, 64, 64)

	for f := Face(0); f < faceCount; f++ {
		want := MapRect(uv.rect(f), 64, 64)
		verts := c.FaceVertices(f)
		for i, v := range verts {
			if v.TexCoord != want[i] {
				t.Errorf("face %s corner %d uv = %v, want %v", f, i, v.TexCoord, want[i])
			}
		}
	}
}

func TestNewCuboidFrontFaceGeometry(t *testing.T) {
	c := NewCuboid(math.Vec3{X: 8, Y: 8, Z: 8}, math.Vec3{Y: 24}, testUV(), 64, 64)
	verts := c.FaceVertices(FaceFront)

	for i, v := range verts {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Fatalf("front face corner %d normal = %v, want +Z", i, v.Normal)
		}
		if v.Position[2] != 4 {
			t.Errorf("front face corner %d z = %v, want 4", i, v.Position[2])
		}
	}

	// Corner order TL, TR, BR, BL seen from +Z: x runs -4,4,4,-4 and
	// y runs 28,28,20,20 (centered at y=24).
	wantX := [4]float32{-4, 4, 4, -4}
	wantY := [4]float32{28, 28, 20, 20}
	for i, v := range verts {
		if v.Position[0] != wantX[i] || v.Position[1] != wantY[i] {
			t.Errorf("front face corner %d = (%v, %v), want (%v, %v)",
				i, v.Position[0], v.Position[1], wantX[i], wantY[i])
		}
	}
}

func TestNewCuboidWinding(t *testing.T) {
	// Each triangle's geometric normal must point the same way as its face
	// normal: counter-clockwise winding seen from outside.
	c := NewCuboid(math.Vec3{X: 8, Y: 12, Z: 4}, math.Vec3{}, boxUV(16, 16, 8, 12, 4), 64, 64)

	for tri := 0; tri < len(c.Indices); tri += 3 {
		a := c.Vertices[c.Indices[tri]]
		b := c.Vertices[c.Indices[tri+1]]
		d := c.Vertices[c.Indices[tri+2]]

		av := math.Vec3{X: a.Position[0], Y: a.Position[1], Z: a.Position[2]}
		bv := math.Vec3{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]}
		dv := math.Vec3{X: d.Position[0], Y: d.Position[1], Z: d.Position[2]}

		n := bv.Sub(av).Cross(dv.Sub(bv))
		face := math.Vec3{X: a.Normal[0], Y: a.Normal[1], Z: a.Normal[2]}
		if n.Dot(face) <= 0 {
			t.Errorf("triangle at index %d winds against its face normal %v", tri, face)
		}
	}
}

func TestNewCuboidTextureOrientation(t *testing.T) {
	// The top-left texel of the front rectangle must land on the top-left
	// corner of the front face: highest v on highest y, lowest u on lowest x.
	// A numerically correct but rotated/transposed assignment fails here.
	c := NewCuboid(math.Vec3{X: 8, Y: 8, Z: 8}, math.Vec3{}, testUV(), 64, 64)
	verts := c.FaceVertices(FaceFront)

	var topLeft, bottomRight Vertex
	for _, v := range verts {
		if v.Position[0] < 0 && v.Position[1] > 0 {
			topLeft = v
		}
		if v.Position[0] > 0 && v.Position[1] < 0 {
			bottomRight = v
		}
	}

	if !(topLeft.TexCoord[0] < bottomRight.TexCoord[0]) {
		t.Errorf("u should grow left to right: TL u=%v, BR u=%v",
			topLeft.TexCoord[0], bottomRight.TexCoord[0])
	}
	if !(topLeft.TexCoord[1] > bottomRight.TexCoord[1]) {
		t.Errorf("v should shrink top to bottom: TL v=%v, BR v=%v",
			topLeft.TexCoord[1], bottomRight.TexCoord[1])
	}
}
