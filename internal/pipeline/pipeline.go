package pipeline

import "image"

// Process runs the full pipeline over a decoded source image and returns a
// newly allocated destination of the same dimensions. The source is never
// mutated. The destination has a zero origin and an opaque alpha channel.
//
// Stage order is fixed: threshold, then neighbor adjustment (only when
// both UseBinaryThreshold and AdjustBlackPixelsNeighbors are set), then
// inversion (only when InvertColors is set). Process always succeeds; a
// zero-area source yields a zero-area destination.
func Process(src image.Image, cfg Config) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	applyThreshold(src, dst, cfg)

	if cfg.UseBinaryThreshold && cfg.AdjustBlackPixelsNeighbors {
		adjustBlackPixelNeighbors(dst)
	}

	if cfg.InvertColors {
		invertColors(dst)
	}

	return dst
}
