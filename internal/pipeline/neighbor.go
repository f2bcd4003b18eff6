package pipeline

import "image"

// haloValue is the near-black marker written over white neighbors of
// black pixels. It is distinct from pure black (so it never seeds further
// darkening) and from pure white (so it is never darkened again), which
// guarantees the spread is exactly one ring thick.
const haloValue = 1

// neighborOffsets enumerates the 8-connected neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// adjustBlackPixelNeighbors darkens every pure-white pixel that touches a
// pure-black pixel. The scan is strictly sequential row-major: the pass
// reads and writes the same image, and a halo pixel written early in the
// scan must be visible to later seeds so they skip it. When two black
// seeds share a white neighbor, the seed scanned first claims it.
func adjustBlackPixelNeighbors(img *image.NRGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isBlackPixel(img, x, y) {
				darkenWhiteNeighbors(img, x, y, width, height)
			}
		}
	}
}

func darkenWhiteNeighbors(img *image.NRGBA, x, y, width, height int) {
	for _, dir := range neighborOffsets {
		nx := x + dir[0]
		ny := y + dir[1]
		if nx >= 0 && nx < width && ny >= 0 && ny < height && isWhitePixel(img, nx, ny) {
			i := img.PixOffset(nx, ny)
			img.Pix[i] = haloValue
			img.Pix[i+1] = haloValue
			img.Pix[i+2] = haloValue
		}
	}
}

// isBlackPixel reports whether the pixel's RGB is exactly (0,0,0). Alpha
// is ignored.
func isBlackPixel(img *image.NRGBA, x, y int) bool {
	i := img.PixOffset(x, y)
	return img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0
}

// isWhitePixel reports whether the pixel's RGB is exactly (255,255,255).
// Alpha is ignored.
func isWhitePixel(img *image.NRGBA, x, y int) bool {
	i := img.PixOffset(x, y)
	return img.Pix[i] == 255 && img.Pix[i+1] == 255 && img.Pix[i+2] == 255
}
