package pipeline

// Config holds the parameters for one pipeline run. A Config is passed by
// value into Process and never mutated, so a single value can be reused
// across runs or goroutines.
//
// UseBinaryThreshold and UseMultipleThresholds are logically exclusive:
// both may be set, but binary always wins per the fixed precedence in the
// threshold stage.
type Config struct {
	// UseBinaryThreshold selects single-cutoff black/white classification.
	UseBinaryThreshold bool

	// AdjustBlackPixelsNeighbors enables the morphological darkening pass.
	// It only takes effect together with UseBinaryThreshold, since the
	// pass assumes an already-binarized image.
	AdjustBlackPixelsNeighbors bool

	// UseMultipleThresholds selects the white/black banding classifier
	// with optional contrast remapping. Ignored when UseBinaryThreshold
	// is set.
	UseMultipleThresholds bool

	// ApplyContrast enables the contrast rule inside the multi-threshold
	// classifier.
	ApplyContrast bool

	// InvertColors replaces every channel c with 255-c as the final stage.
	InvertColors bool

	// BinaryThreshold is the magnitude cutoff for binary mode. Pixels with
	// magnitude strictly greater become white; equal or lower become black.
	BinaryThreshold float64

	// WhiteThreshold is the magnitude above which multi-threshold pixels
	// become pure white.
	WhiteThreshold float64

	// BlackThreshold is the magnitude below which multi-threshold pixels
	// become pure black.
	BlackThreshold float64

	// ContrastThreshold is the magnitude below which the contrast rule
	// applies (when ApplyContrast is set).
	ContrastThreshold float64

	// Multiplier scales each channel under the contrast rule. Results are
	// clamped to at most 255; there is no lower clamp.
	Multiplier float64
}

// DefaultConfig returns the reference defaults: binary thresholding at
// 0.53 with every optional stage disabled.
func DefaultConfig() Config {
	return Config{
		UseBinaryThreshold: true,
		BinaryThreshold:    0.53,
		WhiteThreshold:     0.9,
		BlackThreshold:     0.7,
	}
}

// thresholdMode is the tagged variant selecting the per-pixel classifier.
// Precedence is fixed: binary wins over multi, multi over passthrough.
type thresholdMode int

const (
	modeBinary thresholdMode = iota
	modeMulti
	modePassthrough
)

func (c Config) mode() thresholdMode {
	switch {
	case c.UseBinaryThreshold:
		return modeBinary
	case c.UseMultipleThresholds:
		return modeMulti
	default:
		return modePassthrough
	}
}

// multiRule is the tagged variant selecting the rule applied to a pixel in
// multi-threshold mode. Evaluated in declaration order; first match wins,
// so contrast takes priority over the white/black bands.
type multiRule int

const (
	ruleContrast multiRule = iota
	ruleWhite
	ruleBlack
	rulePassthrough
)

func (c Config) multiRuleFor(magnitude float64) multiRule {
	switch {
	case c.ApplyContrast && magnitude < c.ContrastThreshold:
		return ruleContrast
	case magnitude > c.WhiteThreshold:
		return ruleWhite
	case magnitude < c.BlackThreshold:
		return ruleBlack
	default:
		return rulePassthrough
	}
}
