package analyze

import (
	"image"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/dhodgson615/Image-Processing-Toolkit/internal/pipeline"
)

// MagnitudeStats summarizes the distribution of pixel magnitudes over an
// image. Quantiles are empirical; all values lie in [0,1].
type MagnitudeStats struct {
	Pixels int     `json:"pixels"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// Stats computes magnitude statistics over every pixel of img. A
// zero-area image yields a zero-valued result.
func Stats(img image.Image) *MagnitudeStats {
	mags := magnitudes(img, 1)
	s := &MagnitudeStats{Pixels: len(mags)}
	if len(mags) == 0 {
		return s
	}

	sort.Float64s(mags)
	s.Mean = stat.Mean(mags, nil)
	if len(mags) > 1 {
		// StdDev uses the n-1 denominator and is NaN for one sample.
		s.StdDev = stat.StdDev(mags, nil)
	}
	s.Min = mags[0]
	s.Max = mags[len(mags)-1]
	s.P10 = stat.Quantile(0.1, stat.Empirical, mags, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, mags, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, mags, nil)
	return s
}

// PaletteColor is one dominant color with its relative weight.
type PaletteColor struct {
	Hex    string  `json:"hex"`
	R      uint8   `json:"r"`
	G      uint8   `json:"g"`
	B      uint8   `json:"b"`
	Weight float64 `json:"weight"`
}

// DominantColors extracts up to count dominant colors, strongest first.
func DominantColors(img image.Image, count int) []PaletteColor {
	if count <= 0 {
		return nil
	}
	candidates := dominantcolor.FindWeight(img, count)
	out := make([]PaletteColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, PaletteColor{
			Hex:    col.Clamped().Hex(),
			R:      c.RGBA.R,
			G:      c.RGBA.G,
			B:      c.RGBA.B,
			Weight: c.Weight,
		})
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// magnitudes collects pipeline magnitudes for every step-th pixel in both
// axes. step must be >= 1.
func magnitudes(img image.Image, step int) []float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	out := make([]float64, 0, (width/step+1)*(height/step+1))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, pipeline.Magnitude(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return out
}
