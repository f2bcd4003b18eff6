package pipeline

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// applyThreshold classifies every source pixel into the destination image.
// Each destination pixel depends only on the corresponding source pixel,
// so the scan is split into row bands and processed in parallel; the
// output is identical to a sequential scan.
//
// The destination is normalized to a zero origin; the source is read
// through its own bounds offset.
func applyThreshold(src image.Image, dst *image.NRGBA, cfg Config) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	mode := cfg.mode()

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				r, g, b := pixelRGB(src, bounds.Min.X+x, bounds.Min.Y+y)
				magnitude := Magnitude(r, g, b)

				switch mode {
				case modeBinary:
					if magnitude > cfg.BinaryThreshold {
						dst.SetNRGBA(x, y, white)
					} else {
						dst.SetNRGBA(x, y, black)
					}
				case modeMulti:
					dst.SetNRGBA(x, y, classifyMulti(r, g, b, magnitude, cfg))
				default:
					dst.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
				}
			}
		}
	})
}

// classifyMulti applies the multi-threshold rule cascade to one pixel.
// Contrast wins over the white/black bands even when the magnitude would
// also satisfy them.
func classifyMulti(r, g, b uint8, magnitude float64, cfg Config) color.NRGBA {
	switch cfg.multiRuleFor(magnitude) {
	case ruleContrast:
		return color.NRGBA{
			R: scaleChannel(r, cfg.Multiplier),
			G: scaleChannel(g, cfg.Multiplier),
			B: scaleChannel(b, cfg.Multiplier),
			A: 255,
		}
	case ruleWhite:
		return white
	case ruleBlack:
		return black
	default:
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	}
}

// scaleChannel multiplies a channel value and clamps the result to at most
// 255, truncating toward zero. There is deliberately no lower clamp: a
// negative multiplier produces a negative product that wraps through the
// integer conversion, matching the reference behavior.
func scaleChannel(c uint8, multiplier float64) uint8 {
	v := float64(c) * multiplier
	if v > 255 {
		v = 255
	}
	return uint8(int32(v))
}

// pixelRGB reads a pixel's 8-bit RGB components, ignoring alpha. The
// NRGBA conversion un-premultiplies so transparent pixels keep their
// stored color values.
func pixelRGB(img image.Image, x, y int) (r, g, b uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}
