// Package batch renders whole directories of skins with a worker pool.
package batch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"github.com/Faultbox/skinforge/internal/logger"
	"github.com/Faultbox/skinforge/internal/raster"
	"github.com/Faultbox/skinforge/internal/texture"
	"github.com/Faultbox/skinforge/pkg/skin"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // "png" or "webp"
	Render    raster.Options
	Variant   skin.Variant // empty means auto-detect per skin
	Workers   int
}

// Result holds the outcome of processing one skin.
type Result struct {
	Path    string
	Output  string
	Success bool
	Error   string
}

// Run renders all skins through a worker pool and reports per-file results
// in input order.
func Run(cfg Config, paths []string) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					logger.Info("batch progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("per_sec", float64(p)/elapsed),
					)
				}
			}
		}
	}()

	// Worker pool
	work := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = processSkin(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		work <- i
	}
	close(work)

	wg.Wait()
	close(done)

	return results
}

func processSkin(cfg Config, path string) Result {
	tex, err := texture.Load(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	variant := cfg.Variant
	if variant == "" {
		variant = texture.DetectVariant(tex.Image)
	}

	model := skin.Build(skin.Options{
		Variant:       variant,
		TextureHeight: tex.Height,
	})
	img := raster.Render(model, tex.Image, cfg.Render)

	outPath := outputPath(cfg, path)
	if err := writeImage(outPath, img, cfg.Format); err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	return Result{Path: path, Output: outPath, Success: true}
}

func outputPath(cfg Config, srcPath string) string {
	name := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	return filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
}

func writeImage(path string, img *image.NRGBA, format string) error {
	if format != "png" && format != "webp" {
		return fmt.Errorf("batch: unknown output format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("batch: encode webp: %w", err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("batch: encode png: %w", err)
		}
	}
	return nil
}

// ListSkins returns the skin image files directly inside dir, sorted by the
// directory order of os.ReadDir (lexical).
func ListSkins(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".tga":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
