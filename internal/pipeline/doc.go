// Package pipeline implements the pixel-processing core of the toolkit:
// binary and multi-level thresholding, contrast remapping, color inversion,
// and a morphological darkening pass that spreads black regions outward by
// exactly one ring.
//
// # Processing Model
//
// Process is a pure function from (source image, Config) to a new
// destination image. The source is never mutated. Stages run in a fixed
// order:
//
//  1. Threshold: every source pixel is classified into a destination pixel.
//  2. Neighbor adjustment (optional): white neighbors of pure-black pixels
//     are darkened to the halo color RGB(1,1,1), in place.
//  3. Inversion (optional): every channel is replaced by 255-c, in place.
//
// # Magnitude
//
// Classification is driven by a pixel's magnitude: the Euclidean norm of
// its RGB vector normalized by the norm of pure white, so black maps to
// 0.0, white to 1.0, and any gray (v,v,v) to v/255.
//
// # Determinism and Concurrency
//
// The threshold stage writes each destination pixel from exactly the
// corresponding source pixel, so it is parallelized across row bands with
// no synchronization and no change in output. The neighbor adjustment
// stage reads and writes the same image during its own scan; it always
// runs sequentially in row-major order so results are reproducible.
//
// # Permissiveness
//
// Config values are never validated. Thresholds outside [0,1], negative
// multipliers, and zero-area images all produce well-defined (if visually
// degenerate) output rather than errors. Process has no failure modes.
package pipeline
