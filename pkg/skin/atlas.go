// Package skin builds layered humanoid models from Minecraft skin textures.
//
// A skin is a 64-pixel-wide texture atlas packing the surfaces of all six
// body parts at fixed offsets. Build turns the atlas layout plus a model
// variant into a rooted hierarchy of textured cuboids that a renderer can
// draw directly.
package skin

// AtlasWidth is the fixed pixel width of the skin texture atlas.
const AtlasWidth = 64

// Face identifies one of the six faces of a cuboid.
type Face int

// Faces in the fixed order the cuboid builder emits them.
const (
	FaceUp Face = iota
	FaceDown
	FaceRight
	FaceFront
	FaceLeft
	FaceBack
	faceCount
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceLeft:
		return "left"
	case FaceBack:
		return "back"
	}
	return "unknown"
}

// FaceRect is a rectangle on the texture atlas in pixel coordinates,
// top-left origin.
type FaceRect struct {
	X, Y, W, H int
}

// FaceUV holds the normalized texture coordinates for the four corners of a
// cuboid face, in the order top-left, top-right, bottom-right, bottom-left
// as seen from outside the cuboid.
type FaceUV [4][2]float32

// MapRect converts a pixel rectangle into corner UVs for an atlas of the
// given dimensions. Pixel rectangles use a top-left origin while UV space
// has its origin at the bottom left, so the V axis must be flipped; without
// the flip every texture renders mirrored vertically.
func MapRect(r FaceRect, atlasW, atlasH int) FaceUV {
	u0 := float32(r.X) / float32(atlasW)
	u1 := float32(r.X+r.W) / float32(atlasW)
	v0 := 1 - float32(r.Y)/float32(atlasH)
	v1 := 1 - float32(r.Y+r.H)/float32(atlasH)
	return FaceUV{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
}

// CuboidUV names the atlas rectangle for each face of a cuboid.
type CuboidUV struct {
	Up, Down, Right, Front, Left, Back FaceRect
}

// rect returns the rectangle bound to the given face.
func (c CuboidUV) rect(f Face) FaceRect {
	switch f {
	case FaceUp:
		return c.Up
	case FaceDown:
		return c.Down
	case FaceRight:
		return c.Right
	case FaceFront:
		return c.Front
	case FaceLeft:
		return c.Left
	default:
		return c.Back
	}
}

// boxUV lays out the six face rectangles for a box unwrapped at atlas
// position (u, v) with pixel dimensions (w, h, d), following the standard
// skin atlas layout: top and bottom above, then right/front/left/back in one
// row.
func boxUV(u, v, w, h, d int) CuboidUV {
	return CuboidUV{
		Up:    FaceRect{u + d, v, w, d},
		Down:  FaceRect{u + d + w, v, w, d},
		Right: FaceRect{u, v + d, d, h},
		Front: FaceRect{u + d, v + d, w, h},
		Left:  FaceRect{u + d + w, v + d, d, h},
		Back:  FaceRect{u + 2*d + w, v + d, w, h},
	}
}
