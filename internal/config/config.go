// Package config handles viewer and renderer configuration.
package config

import "github.com/Faultbox/skinforge/pkg/skin"

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Skin       SkinConfig       `yaml:"skin"`
	Render     RenderConfig     `yaml:"render"`
	Visibility VisibilityConfig `yaml:"visibility"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SkinConfig selects the skin texture and model variant.
type SkinConfig struct {
	Path    string `yaml:"path"`
	Variant string `yaml:"variant"` // classic, slim or auto
}

// RenderConfig holds settings for headless preview rendering.
type RenderConfig struct {
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
	Format      string `yaml:"format"` // png or webp
	OutputDir   string `yaml:"output_dir"`
	Workers     int    `yaml:"workers"` // 0 means NumCPU
}

// LayerConfig toggles the two layers of one body part.
type LayerConfig struct {
	Base    bool `yaml:"base"`
	Overlay bool `yaml:"overlay"`
}

// VisibilityConfig holds the per-part layer toggles.
type VisibilityConfig struct {
	Head     LayerConfig `yaml:"head"`
	Body     LayerConfig `yaml:"body"`
	LeftArm  LayerConfig `yaml:"left_arm"`
	RightArm LayerConfig `yaml:"right_arm"`
	LeftLeg  LayerConfig `yaml:"left_leg"`
	RightLeg LayerConfig `yaml:"right_leg"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	allVisible := LayerConfig{Base: true, Overlay: true}
	return &Config{
		Window: WindowConfig{
			Width:      900,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
		},
		Skin: SkinConfig{
			Path:    "skin.png",
			Variant: "auto",
		},
		Render: RenderConfig{
			Size:        512,
			Supersample: 2,
			Format:      "png",
			OutputDir:   "renders",
		},
		Visibility: VisibilityConfig{
			Head:     allVisible,
			Body:     allVisible,
			LeftArm:  allVisible,
			RightArm: allVisible,
			LeftLeg:  allVisible,
			RightLeg: allVisible,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ToVisibility converts the config toggles to the model builder's map.
func (v VisibilityConfig) ToVisibility() skin.Visibility {
	return skin.Visibility{
		skin.PartHead:     skin.LayerToggle(v.Head),
		skin.PartBody:     skin.LayerToggle(v.Body),
		skin.PartLeftArm:  skin.LayerToggle(v.LeftArm),
		skin.PartRightArm: skin.LayerToggle(v.RightArm),
		skin.PartLeftLeg:  skin.LayerToggle(v.LeftLeg),
		skin.PartRightLeg: skin.LayerToggle(v.RightLeg),
	}
}

// ModelVariant resolves the configured variant string. Anything other than
// an explicit classic/slim means auto-detection from the texture.
func (s SkinConfig) ModelVariant() (skin.Variant, bool) {
	switch s.Variant {
	case string(skin.VariantClassic):
		return skin.VariantClassic, true
	case string(skin.VariantSlim):
		return skin.VariantSlim, true
	}
	return "", false
}
