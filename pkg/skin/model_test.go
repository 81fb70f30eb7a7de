package skin

import (
	"reflect"
	"testing"

	"github.com/Faultbox/skinforge/pkg/math"
)

func TestBuildStructure(t *testing.T) {
	m := Build(Options{Variant: VariantClassic, TextureHeight: 64})

	if len(m.Groups) != 6 {
		t.Fatalf("group count = %d, want 6", len(m.Groups))
	}
	if got := len(m.Meshes()); got != 12 {
		t.Fatalf("mesh count = %d, want 12", got)
	}
	if m.Offset != (math.Vec3{Y: -12}) {
		t.Errorf("root offset = %v, want (0,-12,0)", m.Offset)
	}

	for _, p := range Parts {
		base := m.MeshByName(string(p) + "-base")
		overlay := m.MeshByName(string(p) + "-overlay")
		if base == nil || overlay == nil {
			t.Fatalf("part %s missing a layer mesh", p)
		}
		if !base.Visible || !overlay.Visible {
			t.Errorf("part %s should default to visible", p)
		}
	}
}

func TestBuildVariantArms(t *testing.T) {
	classic := Build(Options{Variant: VariantClassic})
	slim := Build(Options{Variant: VariantSlim})

	cArm := classic.MeshByName("leftArm-base").Cuboid
	sArm := slim.MeshByName("leftArm-base").Cuboid

	if cArm.Size.X != 4 {
		t.Errorf("classic arm width = %v, want 4", cArm.Size.X)
	}
	if sArm.Size.X != 3 {
		t.Errorf("slim arm width = %v, want 3", sArm.Size.X)
	}
	if cArm.Position.X != -6 {
		t.Errorf("classic left arm offset = %v, want -6", cArm.Position.X)
	}
	if sArm.Position.X != -5.5 {
		t.Errorf("slim left arm offset = %v, want -5.5", sArm.Position.X)
	}

	if right := classic.MeshByName("rightArm-base").Cuboid; right.Position.X != 6 {
		t.Errorf("classic right arm offset = %v, want 6", right.Position.X)
	}
}

func TestBuildVariantOnlyChangesArms(t *testing.T) {
	classic := Build(Options{Variant: VariantClassic})
	slim := Build(Options{Variant: VariantSlim})

	for _, p := range []PartKey{PartHead, PartBody, PartLeftLeg, PartRightLeg} {
		for _, l := range []Layer{LayerBase, LayerOverlay} {
			name := string(p) + "-" + l.String()
			a := classic.MeshByName(name).Cuboid
			b := slim.MeshByName(name).Cuboid
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%s geometry changed across variants", name)
			}
		}
	}

	for _, p := range []PartKey{PartLeftArm, PartRightArm} {
		a := classic.MeshByName(string(p) + "-base").Cuboid
		b := slim.MeshByName(string(p) + "-base").Cuboid
		if reflect.DeepEqual(a, b) {
			t.Errorf("%s geometry should differ across variants", p)
		}
	}
}

func TestBuildOverlayPadding(t *testing.T) {
	m := Build(Options{Variant: VariantClassic})

	for _, g := range m.Groups {
		base := g.Base.Cuboid
		overlay := g.Overlay.Cuboid
		if !(overlay.Size.X > base.Size.X && overlay.Size.Y > base.Size.Y && overlay.Size.Z > base.Size.Z) {
			t.Errorf("%s overlay %v does not exceed base %v on every axis",
				g.Part, overlay.Size, base.Size)
		}
		if overlay.Position != base.Position {
			t.Errorf("%s overlay position %v differs from base %v",
				g.Part, overlay.Position, base.Position)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	opts := Options{Variant: VariantSlim, TextureHeight: 128, Visibility: DefaultVisibility()}
	a := Build(opts)
	b := Build(opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds with identical options differ structurally")
	}
}

func TestSetVisibleAffectsOneMesh(t *testing.T) {
	m := Build(Options{Variant: VariantClassic})

	if !m.SetVisible(PartHead, LayerOverlay, false) {
		t.Fatal("SetVisible returned false for a known part")
	}

	for _, mesh := range m.Meshes() {
		wantVisible := !(mesh.Part == PartHead && mesh.Layer == LayerOverlay)
		if mesh.Visible != wantVisible {
			t.Errorf("%s visible = %v, want %v", mesh.Name, mesh.Visible, wantVisible)
		}
	}

	if m.SetVisible("torso", LayerBase, false) {
		t.Error("SetVisible should return false for an unknown part")
	}
}

func TestApplyVisibility(t *testing.T) {
	m := Build(Options{Variant: VariantClassic})

	v := DefaultVisibility()
	v[PartBody] = LayerToggle{Base: true, Overlay: false}
	v[PartLeftLeg] = LayerToggle{Base: false, Overlay: false}
	m.ApplyVisibility(v)

	if m.MeshByName("body-overlay").Visible {
		t.Error("body overlay should be hidden")
	}
	if m.MeshByName("body-base").Visible != true {
		t.Error("body base should stay visible")
	}
	if m.MeshByName("leftLeg-base").Visible || m.MeshByName("leftLeg-overlay").Visible {
		t.Error("left leg should be fully hidden")
	}
	if !m.MeshByName("head-base").Visible {
		t.Error("untouched parts should stay visible")
	}
}

func TestBuildVisibilityOption(t *testing.T) {
	v := DefaultVisibility()
	v[PartRightArm] = LayerToggle{Base: false, Overlay: true}
	m := Build(Options{Variant: VariantClassic, Visibility: v})

	if m.MeshByName("rightArm-base").Visible {
		t.Error("rightArm base should start hidden")
	}
	if !m.MeshByName("rightArm-overlay").Visible {
		t.Error("rightArm overlay should start visible")
	}
}

func TestBuildTallAtlasScalesV(t *testing.T) {
	std := Build(Options{TextureHeight: 64})
	tall := Build(Options{TextureHeight: 128})

	a := std.MeshByName("head-base").Cuboid.FaceVertices(FaceFront)
	b := tall.MeshByName("head-base").Cuboid.FaceVertices(FaceFront)

	// Same pixel rect, taller atlas: u identical, v compressed toward 1.
	if a[0].TexCoord[0] != b[0].TexCoord[0] {
		t.Errorf("u changed with atlas height: %v vs %v", a[0].TexCoord[0], b[0].TexCoord[0])
	}
	if !(b[0].TexCoord[1] > a[0].TexCoord[1]) {
		t.Errorf("v on 128-tall atlas (%v) should sit above 64-tall (%v)",
			b[0].TexCoord[1], a[0].TexCoord[1])
	}
}

func TestBounds(t *testing.T) {
	m := Build(Options{Variant: VariantClassic})
	min, max := m.Bounds()

	// Head overlay spans y 19.5..28.5, offset by -12 gives max 16.5.
	if max.Y != 16.5 {
		t.Errorf("max.Y = %v, want 16.5", max.Y)
	}
	// Leg overlay bottom: 2 - 12.5/2 - 12 = -16.25.
	if min.Y != -16.25 {
		t.Errorf("min.Y = %v, want -16.25", min.Y)
	}
	if min.X != -max.X {
		t.Errorf("bounds should be symmetric in X: %v vs %v", min.X, max.X)
	}
}
