package analyze

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// maxSuggestSamples bounds the observation count fed to k-means so large
// images stay tractable; sampling strides both axes evenly.
const maxSuggestSamples = 12000

// ThresholdSuggestion carries data-driven starting points for the
// pipeline's magnitude cutoffs. With 2 levels only BinaryThreshold is
// set; with 3 levels BlackThreshold and WhiteThreshold are set. Centers
// lists the cluster centers in ascending order.
type ThresholdSuggestion struct {
	Levels          int       `json:"levels"`
	BinaryThreshold float64   `json:"binary_threshold,omitempty"`
	BlackThreshold  float64   `json:"black_threshold,omitempty"`
	WhiteThreshold  float64   `json:"white_threshold,omitempty"`
	Centers         []float64 `json:"centers"`
}

// SuggestThresholds clusters sampled pixel magnitudes with k-means and
// places each suggested cutoff at the midpoint between adjacent cluster
// centers. levels must be 2 (binary) or 3 (black/white bands).
func SuggestThresholds(img image.Image, levels int) (*ThresholdSuggestion, error) {
	if levels != 2 && levels != 3 {
		return nil, fmt.Errorf("levels must be 2 or 3, got %d", levels)
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total < levels {
		return nil, fmt.Errorf("image has %d pixels, need at least %d", total, levels)
	}

	step := 1
	if total > maxSuggestSamples {
		step = int(math.Sqrt(float64(total)/float64(maxSuggestSamples))) + 1
	}
	mags := magnitudes(img, step)

	dataset := make(clusters.Observations, 0, len(mags))
	for _, m := range mags {
		dataset = append(dataset, clusters.Coordinates{m})
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, levels)
	if err != nil {
		return nil, fmt.Errorf("magnitude clustering failed: %w", err)
	}

	centers := make([]float64, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) > 0 {
			centers = append(centers, c.Center[0])
		}
	}
	sort.Float64s(centers)
	if len(centers) != levels {
		return nil, fmt.Errorf("clustering produced %d centers, want %d", len(centers), levels)
	}

	s := &ThresholdSuggestion{Levels: levels, Centers: centers}
	if levels == 2 {
		s.BinaryThreshold = (centers[0] + centers[1]) / 2
	} else {
		s.BlackThreshold = (centers[0] + centers[1]) / 2
		s.WhiteThreshold = (centers[1] + centers[2]) / 2
	}
	return s, nil
}
