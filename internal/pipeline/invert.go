package pipeline

import "image"

// invertColors replaces each channel c with 255-c, in place. Alpha is left
// untouched. Applying it twice restores the original image.
func invertColors(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255 - img.Pix[i]
		img.Pix[i+1] = 255 - img.Pix[i+1]
		img.Pix[i+2] = 255 - img.Pix[i+2]
	}
}
