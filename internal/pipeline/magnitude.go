package pipeline

import "math"

// maxColorNorm is the Euclidean norm of pure white (255,255,255).
var maxColorNorm = math.Sqrt(3 * 255 * 255)

// Magnitude maps an RGB triple to a normalized brightness scalar in [0,1]:
// the Euclidean norm of the color vector divided by the norm of pure
// white. Black yields 0.0, white 1.0, and any gray (v,v,v) yields v/255.
func Magnitude(r, g, b uint8) float64 {
	rf, gf, bf := float64(r), float64(g), float64(b)
	return math.Sqrt(rf*rf+gf*gf+bf*bf) / maxColorNorm
}
