package skin

import (
	"fmt"

	"github.com/Faultbox/skinforge/pkg/math"
)

// Mesh is one renderable layer of a body part.
type Mesh struct {
	Name    string
	Part    PartKey
	Layer   Layer
	Visible bool
	Cuboid  *Cuboid
}

// Group is a named per-part node holding both layer meshes.
type Group struct {
	Name    string
	Part    PartKey
	Base    *Mesh
	Overlay *Mesh
}

// Model is the assembled humanoid: six part groups under one root, two
// meshes per group. Geometry is immutable after Build; only mesh visibility
// may change. Switching variant or texture height requires a new Build.
type Model struct {
	Variant       Variant
	TextureWidth  int
	TextureHeight int

	// Offset is the root translation. It drops the model so the feet rest
	// at a stable anchor regardless of the internal part coordinates.
	Offset math.Vec3

	Groups []*Group
	byName map[string]*Mesh
}

// Options configures a model build.
type Options struct {
	Variant       Variant
	TextureHeight int        // 64 or 128; 0 means 64
	Visibility    Visibility // nil means everything visible
}

// Build assembles the full humanoid model for the given options. The build
// is pure: identical options produce structurally identical models.
//
// An unsupported TextureHeight is a caller contract violation; the declared
// height must be validated where the texture is loaded.
func Build(opts Options) *Model {
	if opts.Variant == "" {
		opts.Variant = VariantClassic
	}
	if opts.TextureHeight == 0 {
		opts.TextureHeight = 64
	}

	m := &Model{
		Variant:       opts.Variant,
		TextureWidth:  AtlasWidth,
		TextureHeight: opts.TextureHeight,
		Offset:        math.Vec3{Y: -12},
		Groups:        make([]*Group, 0, len(Parts)),
		byName:        make(map[string]*Mesh, 2*len(Parts)),
	}

	for _, entry := range catalogue(opts.Variant) {
		g := &Group{Name: string(entry.part), Part: entry.part}
		g.Base = m.addMesh(entry.part, LayerBase, opts.Visibility,
			NewCuboid(entry.size, entry.position, entry.baseUV, m.TextureWidth, m.TextureHeight))
		g.Overlay = m.addMesh(entry.part, LayerOverlay, opts.Visibility,
			NewCuboid(entry.overlaySize, entry.position, entry.overlayUV, m.TextureWidth, m.TextureHeight))
		m.Groups = append(m.Groups, g)
	}

	return m
}

func (m *Model) addMesh(part PartKey, layer Layer, vis Visibility, c *Cuboid) *Mesh {
	mesh := &Mesh{
		Name:    fmt.Sprintf("%s-%s", part, layer),
		Part:    part,
		Layer:   layer,
		Visible: vis.visible(part, layer),
		Cuboid:  c,
	}
	m.byName[mesh.Name] = mesh
	return mesh
}

// MeshByName returns the mesh with the given stable name
// ("<part>-base" or "<part>-overlay"), or nil.
func (m *Model) MeshByName(name string) *Mesh {
	return m.byName[name]
}

// Meshes returns all meshes in a stable order: per part, base then overlay.
func (m *Model) Meshes() []*Mesh {
	out := make([]*Mesh, 0, 2*len(m.Groups))
	for _, g := range m.Groups {
		out = append(out, g.Base, g.Overlay)
	}
	return out
}

// SetVisible toggles one part/layer mesh. It only flips the visibility flag;
// geometry and topology are untouched. Returns false for an unknown part.
func (m *Model) SetVisible(part PartKey, layer Layer, visible bool) bool {
	mesh := m.byName[fmt.Sprintf("%s-%s", part, layer)]
	if mesh == nil {
		return false
	}
	mesh.Visible = visible
	return true
}

// ApplyVisibility sets every mesh's visibility from the given map.
func (m *Model) ApplyVisibility(v Visibility) {
	for _, g := range m.Groups {
		g.Base.Visible = v.visible(g.Part, LayerBase)
		g.Overlay.Visible = v.visible(g.Part, LayerOverlay)
	}
}

// Bounds returns the axis-aligned bounds of the whole model including the
// root offset. Useful for fitting a camera.
func (m *Model) Bounds() (min, max math.Vec3) {
	min = math.Vec3{X: 1e10, Y: 1e10, Z: 1e10}
	max = math.Vec3{X: -1e10, Y: -1e10, Z: -1e10}
	for _, g := range m.Groups {
		for _, mesh := range []*Mesh{g.Base, g.Overlay} {
			for _, vtx := range mesh.Cuboid.Vertices {
				p := math.Vec3{X: vtx.Position[0], Y: vtx.Position[1], Z: vtx.Position[2]}.Add(m.Offset)
				if p.X < min.X {
					min.X = p.X
				}
				if p.Y < min.Y {
					min.Y = p.Y
				}
				if p.Z < min.Z {
					min.Z = p.Z
				}
				if p.X > max.X {
					max.X = p.X
				}
				if p.Y > max.Y {
					max.Y = p.Y
				}
				if p.Z > max.Z {
					max.Z = p.Z
				}
			}
		}
	}
	return min, max
}
