package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	want := color.NRGBA{10, 200, 30, 255}
	if err := Save(testImage(4, 3, want), path, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Bounds().Dx(), img.Bounds().Dy())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("pixel: got (%d,%d,%d), want (%d,%d,%d)",
			r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
}

func TestSave_ExplicitFormatOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	// Extension says .dat, explicit format says png.
	path := filepath.Join(dir, "out.dat")

	if err := Save(testImage(2, 2, color.NRGBA{0, 0, 0, 255}), path, "png"); err != nil {
		t.Fatalf("Save with explicit format failed: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("saved file did not decode: %v", err)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	err := Save(testImage(1, 1, color.NRGBA{A: 255}), filepath.Join(dir, "out.xyz"), "")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.png")

	if err := Save(testImage(1, 1, color.NRGBA{A: 255}), path, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatSupported(t *testing.T) {
	for _, f := range SupportedFormats() {
		if !FormatSupported(f) {
			t.Errorf("FormatSupported(%q) = false, want true", f)
		}
	}
	if FormatSupported("webp") {
		t.Error("webp is read-only and must not report encode support")
	}
}

func TestNextOutputName_SkipsExisting(t *testing.T) {
	dir := t.TempDir()

	first := NextOutputName(dir)
	if first != filepath.Join(dir, "output1.png") {
		t.Fatalf("got %q, want output1.png", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	second := NextOutputName(dir)
	if second != filepath.Join(dir, "output2.png") {
		t.Errorf("got %q, want output2.png", second)
	}
}

func TestImageCache_LoadAndEvict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cached.png")
	if err := Save(testImage(2, 2, color.NRGBA{255, 0, 0, 255}), path, ""); err != nil {
		t.Fatal(err)
	}

	cache := NewImageCache()
	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cache Load failed: %v", err)
	}
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load should return the cached image")
	}

	cache.Evict(path)
	img3, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if img3 == img1 {
		t.Error("Load after Evict should decode a fresh image")
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.png")
	if err := Save(testImage(12, 7, color.NRGBA{A: 255}), path, ""); err != nil {
		t.Fatal(err)
	}

	info, err := Info(NewImageCache(), path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Width != 12 || info.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}
