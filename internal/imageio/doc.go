// Package imageio is the file I/O collaborator around the processing
// pipeline: decoding, encoding, and extension-based format negotiation.
// The pipeline itself never inspects file formats; it receives a decoded
// image.Image and hands back a processed one for this package to encode.
//
// Decoding supports JPEG, PNG, GIF, TIFF, BMP and (read-only) WebP.
// Encoding supports JPEG, PNG, GIF, TIFF and BMP; the format is chosen by
// explicit name or negotiated from the output filename's extension.
//
// The ImageCache type is safe for concurrent use; it avoids redundant
// decodes when the same file is analyzed and then processed.
package imageio
