package config

import "flag"

var (
	flagConfig     *string
	flagDebug      *bool
	flagSkin       *string
	flagVariant    *string
	flagWindowed   *bool
	flagFullscreen *bool
	flagWidth      *int
	flagHeight     *int
)

// ParseFlags registers and parses the viewer's command-line flags. Call this
// early in main(). Binaries with their own flag set skip it and Load then
// applies no overrides.
func ParseFlags() {
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug = flag.Bool("debug", false, "Enable debug logging")
	flagSkin = flag.String("skin", "", "Path to skin texture")
	flagVariant = flag.String("variant", "", "Model variant: classic, slim or auto")
	flagWindowed = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")

	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	if flagConfig == nil {
		return ""
	}
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if flagConfig == nil {
		// ParseFlags was never called.
		return
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSkin != "" {
		cfg.Skin.Path = *flagSkin
	}
	if *flagVariant != "" {
		cfg.Skin.Variant = *flagVariant
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
