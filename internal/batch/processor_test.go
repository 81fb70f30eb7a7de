package batch

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/skinforge/internal/logger"
	"github.com/Faultbox/skinforge/internal/raster"
)

func TestMain(m *testing.M) {
	// Quiet logger for the progress reporter.
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

func writeTestSkin(t *testing.T, path string) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 120, B: 90, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test skin: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test skin: %v", err)
	}
}

func TestRunRendersDirectory(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeTestSkin(t, filepath.Join(inDir, "steve.png"))
	writeTestSkin(t, filepath.Join(inDir, "alex.png"))

	paths, err := ListSkins(inDir)
	if err != nil {
		t.Fatalf("ListSkins: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 skins, got %d", len(paths))
	}

	opts := raster.DefaultOptions()
	opts.Size = 64
	opts.Supersample = 1

	results := Run(Config{
		OutputDir: outDir,
		Format:    "png",
		Render:    opts,
		Workers:   2,
	}, paths)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("render of %s failed: %s", r.Path, r.Error)
			continue
		}
		f, err := os.Open(r.Output)
		if err != nil {
			t.Errorf("output missing for %s: %v", r.Path, err)
			continue
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("output for %s is not a PNG: %v", r.Path, err)
			continue
		}
		if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
			t.Errorf("output for %s is %dx%d, want 64x64",
				r.Path, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestRunReportsBadInput(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	badPath := filepath.Join(inDir, "broken.png")
	if err := os.WriteFile(badPath, []byte("not a png"), 0644); err != nil {
		t.Fatalf("failed to write bad file: %v", err)
	}

	results := Run(Config{
		OutputDir: outDir,
		Format:    "png",
		Render:    raster.DefaultOptions(),
		Workers:   1,
	}, []string{badPath})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Success {
		t.Error("expected failure for broken input")
	}
	if results[0].Error == "" {
		t.Error("expected error message for broken input")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	skinPath := filepath.Join(inDir, "steve.png")
	writeTestSkin(t, skinPath)

	opts := raster.DefaultOptions()
	opts.Size = 32
	opts.Supersample = 1

	results := Run(Config{
		OutputDir: outDir,
		Format:    "gif",
		Render:    opts,
		Workers:   1,
	}, []string{skinPath})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Success {
		t.Error("expected failure for unknown format")
	}
	if results[0].Error == "" {
		t.Error("expected error message for unknown format")
	}

	// No mislabeled file may be left behind.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty output dir, found %v", entries)
	}
}

func TestListSkinsFiltersExtensions(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.png", "b.jpg", "c.tga", "d.txt", "e.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatalf("failed to make subdir: %v", err)
	}

	paths, err := ListSkins(dir)
	if err != nil {
		t.Fatalf("ListSkins: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 skins, got %d: %v", len(paths), paths)
	}
	for _, p := range paths {
		switch filepath.Base(p) {
		case "a.png", "b.jpg", "c.tga":
		default:
			t.Errorf("unexpected path %s", p)
		}
	}
}
