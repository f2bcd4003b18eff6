package pipeline

import (
	"image"
	"image/color"
	"testing"
)

// fillImage creates a uniform NRGBA test image.
func fillImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pixelAt(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestBinaryThreshold_EqualityGoesToBlack(t *testing.T) {
	// Set the cutoff to the exact magnitude of the test pixel. The
	// comparison is strictly-greater, so equality must classify as black.
	cfg := DefaultConfig()
	cfg.BinaryThreshold = Magnitude(100, 100, 100)

	src := fillImage(1, 1, color.NRGBA{100, 100, 100, 255})
	dst := Process(src, cfg)

	if got := pixelAt(dst, 0, 0); got != black {
		t.Errorf("equal magnitude: got %v, want black", got)
	}

	// A slightly brighter pixel crosses the cutoff.
	src = fillImage(1, 1, color.NRGBA{101, 101, 101, 255})
	dst = Process(src, cfg)
	if got := pixelAt(dst, 0, 0); got != white {
		t.Errorf("magnitude above cutoff: got %v, want white", got)
	}
}

func TestBinaryThreshold_WinsOverMulti(t *testing.T) {
	// Both mode flags set: binary takes precedence, so a mid-gray pixel
	// becomes pure black instead of passing through the banding rules.
	cfg := DefaultConfig()
	cfg.UseMultipleThresholds = true

	src := fillImage(2, 2, color.NRGBA{100, 100, 100, 255})
	dst := Process(src, cfg)

	if got := pixelAt(dst, 1, 1); got != black {
		t.Errorf("binary precedence: got %v, want black", got)
	}
}

func TestMultiThreshold_ContrastWinsOverBlackBand(t *testing.T) {
	// Magnitude ~0.196 satisfies both the contrast condition and the
	// black band; the contrast rule must win.
	cfg := Config{
		UseMultipleThresholds: true,
		ApplyContrast:         true,
		ContrastThreshold:     0.5,
		BlackThreshold:        0.7,
		WhiteThreshold:        0.9,
		Multiplier:            2.0,
	}

	src := fillImage(1, 1, color.NRGBA{50, 50, 50, 255})
	dst := Process(src, cfg)

	want := color.NRGBA{100, 100, 100, 255}
	if got := pixelAt(dst, 0, 0); got != want {
		t.Errorf("contrast precedence: got %v, want %v", got, want)
	}
}

func TestMultiThreshold_ContrastClampsAt255(t *testing.T) {
	cfg := Config{
		UseMultipleThresholds: true,
		ApplyContrast:         true,
		ContrastThreshold:     1.1, // every pixel qualifies
		Multiplier:            2.0,
	}

	src := fillImage(1, 1, color.NRGBA{200, 150, 10, 255})
	dst := Process(src, cfg)

	want := color.NRGBA{255, 255, 20, 255}
	if got := pixelAt(dst, 0, 0); got != want {
		t.Errorf("contrast clamp: got %v, want %v", got, want)
	}
}

func TestMultiThreshold_NegativeMultiplierWraps(t *testing.T) {
	// There is deliberately no lower clamp: a negative multiplier
	// produces a negative product that truncates toward zero and wraps
	// through the integer conversion. -100 wraps to 156.
	cfg := Config{
		UseMultipleThresholds: true,
		ApplyContrast:         true,
		ContrastThreshold:     1.1, // every pixel qualifies
		Multiplier:            -1.0,
	}

	src := fillImage(1, 1, color.NRGBA{100, 100, 100, 255})
	dst := Process(src, cfg)

	want := color.NRGBA{156, 156, 156, 255}
	if got := pixelAt(dst, 0, 0); got != want {
		t.Errorf("negative multiplier: got %v, want %v", got, want)
	}
}

func TestMultiThreshold_Bands(t *testing.T) {
	cfg := Config{
		UseMultipleThresholds: true,
		WhiteThreshold:        0.9,
		BlackThreshold:        0.7,
	}

	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{"above white threshold", color.NRGBA{240, 240, 240, 255}, white},
		{"below black threshold", color.NRGBA{100, 100, 100, 255}, black},
		{"in between passes through", color.NRGBA{210, 210, 210, 255}, color.NRGBA{210, 210, 210, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fillImage(1, 1, tt.in)
			dst := Process(src, cfg)
			if got := pixelAt(dst, 0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPassthroughMode_CopiesPixels(t *testing.T) {
	cfg := Config{} // both mode flags off

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	colors := []color.NRGBA{
		{10, 20, 30, 255}, {200, 0, 100, 255}, {0, 0, 0, 255},
		{255, 255, 255, 255}, {1, 1, 1, 255}, {128, 64, 32, 255},
	}
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, colors[i])
			i++
		}
	}

	dst := Process(src, cfg)

	i = 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := pixelAt(dst, x, y); got != colors[i] {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, colors[i])
			}
			i++
		}
	}
}

func TestThreshold_SourceAlphaIgnored(t *testing.T) {
	// A transparent white pixel classifies by its stored RGB, not by the
	// premultiplied value.
	cfg := DefaultConfig()

	src := fillImage(1, 1, color.NRGBA{255, 255, 255, 0})
	dst := Process(src, cfg)

	if got := pixelAt(dst, 0, 0); got != white {
		t.Errorf("transparent white: got %v, want white", got)
	}
}

func TestThreshold_NonZeroOriginSource(t *testing.T) {
	// Sources with offset bounds (e.g. sub-images) must map onto the
	// zero-origin destination.
	src := image.NewNRGBA(image.Rect(5, 7, 7, 9))
	for y := 7; y < 9; y++ {
		for x := 5; x < 7; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	dst := Process(src, DefaultConfig())

	if dst.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v, want (0,0)-(2,2)", dst.Bounds())
	}
	if got := pixelAt(dst, 0, 0); got != white {
		t.Errorf("offset source pixel: got %v, want white", got)
	}
}
