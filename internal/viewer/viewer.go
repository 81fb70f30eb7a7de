// Package viewer implements the interactive skin viewer loop.
package viewer

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skinforge/internal/config"
	"github.com/Faultbox/skinforge/internal/engine/camera"
	"github.com/Faultbox/skinforge/internal/engine/renderer"
	"github.com/Faultbox/skinforge/internal/engine/window"
	"github.com/Faultbox/skinforge/internal/logger"
	"github.com/Faultbox/skinforge/internal/texture"
	"github.com/Faultbox/skinforge/pkg/math"
	"github.com/Faultbox/skinforge/pkg/skin"
)

// partKeys maps the number row to body parts.
var partKeys = map[sdl.Keycode]skin.PartKey{
	sdl.K_1: skin.PartHead,
	sdl.K_2: skin.PartBody,
	sdl.K_3: skin.PartLeftArm,
	sdl.K_4: skin.PartRightArm,
	sdl.K_5: skin.PartLeftLeg,
	sdl.K_6: skin.PartRightLeg,
}

// Viewer is the interactive application instance.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera

	tex     *texture.Skin
	variant skin.Variant
	vis     skin.Visibility
	model   *skin.Model

	dragging bool
}

// New loads the skin, builds the model and opens the window.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		vis: cfg.Visibility.ToVisibility(),
	}

	var err error
	v.tex, err = texture.Load(cfg.Skin.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load skin: %w", err)
	}

	if variant, ok := cfg.Skin.ModelVariant(); ok {
		v.variant = variant
	} else {
		v.variant = texture.DetectVariant(v.tex.Image)
		logger.Info("detected model variant", zap.String("variant", string(v.variant)))
	}

	v.model = v.buildModel()

	v.window, err = window.New(window.Config{
		Title:      "Skinforge - " + cfg.Skin.Path,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.renderer.SetModel(v.model)
	v.renderer.SetTexture(v.tex.Image)

	v.camera = camera.New()
	min, max := v.model.Bounds()
	v.camera.FitToBounds(min, max)

	logger.Info("viewer initialized",
		zap.String("skin", cfg.Skin.Path),
		zap.String("variant", string(v.variant)),
		zap.Int("texture_height", v.tex.Height),
		zap.Bool("legacy", v.tex.Legacy),
	)
	return v, nil
}

func (v *Viewer) buildModel() *skin.Model {
	return skin.Build(skin.Options{
		Variant:       v.variant,
		TextureHeight: v.tex.Height,
		Visibility:    v.vis,
	})
}

// Run starts the event and render loop.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			v.handleEvent(event)
		}

		w, h := v.renderer.Size()
		aspect := float32(w) / float32(h)
		proj := math.Perspective(45.0*degToRad, aspect, 0.1, 1000.0)
		v.renderer.Draw(v.camera.ViewMatrix(), proj)

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

const degToRad = 3.14159265 / 180.0

func (v *Viewer) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		v.running = false

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			v.renderer.Resize(int(e.Data1), int(e.Data2))
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = e.State == sdl.PRESSED
		}

	case *sdl.MouseMotionEvent:
		if v.dragging {
			v.camera.HandleDrag(float32(e.XRel), float32(e.YRel))
		}

	case *sdl.MouseWheelEvent:
		v.camera.HandleZoom(float32(e.Y))

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			v.handleKey(e.Keysym.Sym)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Keycode) {
	switch {
	case key == sdl.K_ESCAPE:
		v.running = false

	case key == sdl.K_v:
		v.switchVariant()

	case key == sdl.K_b:
		v.toggleLayer(skin.LayerBase)

	case key == sdl.K_o:
		v.toggleLayer(skin.LayerOverlay)

	case key == sdl.K_F12:
		v.screenshot()

	default:
		if part, ok := partKeys[key]; ok {
			v.togglePart(part)
		}
	}
}

// togglePart flips both layers of one part. A part with any layer showing
// is hidden; a fully hidden part comes back complete.
func (v *Viewer) togglePart(part skin.PartKey) {
	t := v.vis[part]
	show := !(t.Base || t.Overlay)
	v.vis[part] = skin.LayerToggle{Base: show, Overlay: show}
	v.model.ApplyVisibility(v.vis)
	logger.Debug("toggled part", zap.String("part", string(part)), zap.Bool("visible", show))
}

// toggleLayer flips one layer across all parts.
func (v *Viewer) toggleLayer(layer skin.Layer) {
	anyOn := false
	for _, part := range skin.Parts {
		t := v.vis[part]
		if (layer == skin.LayerBase && t.Base) || (layer == skin.LayerOverlay && t.Overlay) {
			anyOn = true
			break
		}
	}
	for _, part := range skin.Parts {
		t := v.vis[part]
		if layer == skin.LayerBase {
			t.Base = !anyOn
		} else {
			t.Overlay = !anyOn
		}
		v.vis[part] = t
	}
	v.model.ApplyVisibility(v.vis)
	logger.Debug("toggled layer", zap.String("layer", layer.String()), zap.Bool("visible", !anyOn))
}

// switchVariant rebuilds the model with the other arm width.
func (v *Viewer) switchVariant() {
	if v.variant == skin.VariantSlim {
		v.variant = skin.VariantClassic
	} else {
		v.variant = skin.VariantSlim
	}
	v.model = v.buildModel()
	v.renderer.SetModel(v.model)
	logger.Info("switched variant", zap.String("variant", string(v.variant)))
}

func (v *Viewer) screenshot() {
	img := v.renderer.Screenshot()
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))

	f, err := os.Create(name)
	if err != nil {
		logger.Error("failed to create screenshot file", zap.Error(err))
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logger.Error("failed to encode screenshot", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
