package skin

import "github.com/Faultbox/skinforge/pkg/math"

// PartKey identifies one of the six body parts.
type PartKey string

// Body parts of the humanoid model.
const (
	PartHead     PartKey = "head"
	PartBody     PartKey = "body"
	PartLeftArm  PartKey = "leftArm"
	PartRightArm PartKey = "rightArm"
	PartLeftLeg  PartKey = "leftLeg"
	PartRightLeg PartKey = "rightLeg"
)

// Parts lists all body parts in assembly order.
var Parts = [...]PartKey{PartHead, PartBody, PartLeftArm, PartRightArm, PartLeftLeg, PartRightLeg}

// Layer distinguishes the opaque base skin from the alpha-tested overlay
// (hat, jacket, sleeves).
type Layer int

// Layers of a body part.
const (
	LayerBase Layer = iota
	LayerOverlay
)

// String returns the layer name used in mesh names.
func (l Layer) String() string {
	if l == LayerOverlay {
		return "overlay"
	}
	return "base"
}

// Variant selects the arm geometry of the model: classic 4-pixel-wide arms
// or slim 3-pixel-wide arms.
type Variant string

// Model variants.
const (
	VariantClassic Variant = "classic"
	VariantSlim    Variant = "slim"
)

// ArmWidth returns the arm box width for the variant.
func (v Variant) ArmWidth() int {
	if v == VariantSlim {
		return 3
	}
	return 4
}

// partLayout is one entry of the body part catalogue: box sizes, the part's
// offset from the model pivot, and the atlas unwrap origin of both layers.
type partLayout struct {
	part        PartKey
	size        math.Vec3
	overlaySize math.Vec3
	position    math.Vec3
	baseUV      CuboidUV
	overlayUV   CuboidUV
}

// catalogue returns the six-part layout for the given variant. All offsets
// are the standard 64-wide skin atlas positions. Arm rectangles scale with
// the variant's arm width, and the arm attachment point moves in so the arm
// stays flush against the body.
func catalogue(v Variant) [6]partLayout {
	aw := v.ArmWidth()
	armX := 4 + float32(aw)/2

	return [6]partLayout{
		{
			part:        PartHead,
			size:        math.Vec3{X: 8, Y: 8, Z: 8},
			overlaySize: math.Vec3{X: 9, Y: 9, Z: 9},
			position:    math.Vec3{Y: 24},
			baseUV:      boxUV(0, 0, 8, 8, 8),
			overlayUV:   boxUV(32, 0, 8, 8, 8),
		},
		{
			part:        PartBody,
			size:        math.Vec3{X: 8, Y: 12, Z: 4},
			overlaySize: math.Vec3{X: 8.5, Y: 12.5, Z: 4.5},
			position:    math.Vec3{Y: 14},
			baseUV:      boxUV(16, 16, 8, 12, 4),
			overlayUV:   boxUV(16, 32, 8, 12, 4),
		},
		{
			part:        PartLeftArm,
			size:        math.Vec3{X: float32(aw), Y: 12, Z: 4},
			overlaySize: math.Vec3{X: float32(aw) + 0.5, Y: 12.5, Z: 4.5},
			position:    math.Vec3{X: -armX, Y: 14},
			baseUV:      boxUV(32, 48, aw, 12, 4),
			overlayUV:   boxUV(48, 48, aw, 12, 4),
		},
		{
			part:        PartRightArm,
			size:        math.Vec3{X: float32(aw), Y: 12, Z: 4},
			overlaySize: math.Vec3{X: float32(aw) + 0.5, Y: 12.5, Z: 4.5},
			position:    math.Vec3{X: armX, Y: 14},
			baseUV:      boxUV(40, 16, aw, 12, 4),
			overlayUV:   boxUV(40, 32, aw, 12, 4),
		},
		{
			part:        PartLeftLeg,
			size:        math.Vec3{X: 4, Y: 12, Z: 4},
			overlaySize: math.Vec3{X: 4.5, Y: 12.5, Z: 4.5},
			position:    math.Vec3{X: -2, Y: 2},
			baseUV:      boxUV(16, 48, 4, 12, 4),
			overlayUV:   boxUV(0, 48, 4, 12, 4),
		},
		{
			part:        PartRightLeg,
			size:        math.Vec3{X: 4, Y: 12, Z: 4},
			overlaySize: math.Vec3{X: 4.5, Y: 12.5, Z: 4.5},
			position:    math.Vec3{X: 2, Y: 2},
			baseUV:      boxUV(0, 16, 4, 12, 4),
			overlayUV:   boxUV(0, 32, 4, 12, 4),
		},
	}
}
