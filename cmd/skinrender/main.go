// Package main renders skin textures to preview images without a window.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/Faultbox/skinforge/internal/batch"
	"github.com/Faultbox/skinforge/internal/config"
	"github.com/Faultbox/skinforge/internal/logger"
	"github.com/Faultbox/skinforge/internal/raster"
	"github.com/Faultbox/skinforge/pkg/skin"
)

func main() {
	// Config file (if any) provides the flag defaults.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	skinPath := flag.String("skin", "", "Render a single skin file")
	dir := flag.String("dir", "", "Render every skin in a directory")
	out := flag.String("out", cfg.Render.OutputDir, "Output directory")
	size := flag.Int("size", cfg.Render.Size, "Output image size in pixels")
	supersample := flag.Int("supersample", cfg.Render.Supersample, "Supersampling factor (1 disables)")
	format := flag.String("format", cfg.Render.Format, "Output format: png or webp")
	variant := flag.String("variant", cfg.Skin.Variant, "Model variant: classic, slim or auto")
	yaw := flag.Float64("yaw", 30, "Horizontal model rotation in degrees")
	pitch := flag.Float64("pitch", 10, "Vertical model rotation in degrees")
	workers := flag.Int("workers", cfg.Render.Workers, "Worker goroutines (default: NumCPU)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var paths []string
	switch {
	case *skinPath != "":
		paths = []string{*skinPath}
	case *dir != "":
		var err error
		paths, err = batch.ListSkins(*dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: either -skin or -dir is required.")
		flag.Usage()
		os.Exit(1)
	}

	if len(paths) == 0 {
		fmt.Println("No skins to render.")
		os.Exit(0)
	}

	if *format != "png" && *format != "webp" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want png or webp)\n", *format)
		os.Exit(1)
	}

	var modelVariant skin.Variant
	switch *variant {
	case "classic":
		modelVariant = skin.VariantClassic
	case "slim":
		modelVariant = skin.VariantSlim
	case "auto", "":
		// Detected per skin from the texture.
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q (want classic, slim or auto)\n", *variant)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	nWorkers := *workers
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}

	renderOpts := raster.DefaultOptions()
	renderOpts.Size = *size
	renderOpts.Supersample = *supersample
	renderOpts.Yaw = float32(*yaw * math.Pi / 180)
	renderOpts.Pitch = float32(*pitch * math.Pi / 180)

	fmt.Printf("Skinforge renderer\n")
	fmt.Printf("Skins: %d, Workers: %d\n", len(paths), nWorkers)
	fmt.Printf("Output: %s (%s, %dpx)\n", *out, *format, *size)

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: *out,
		Format:    *format,
		Render:    renderOpts,
		Variant:   modelVariant,
		Workers:   nWorkers,
	}, paths)

	ok, failed := 0, 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", r.Path, r.Error)
		}
	}

	fmt.Printf("Done: %d rendered, %d failed in %s\n", ok, failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}
