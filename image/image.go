/*
Package image converts between runs of packed pixels, as found in the pixel
segments of a Revenant .dat file, and *image.RGBA rasters.

A segment is width * height two byte pixels stored row by row with no padding
and no header. The encoding of each pixel is described in package pixel.
*/
package image

const (
	bytesPerPixel = 2

	// Decoding stops once fewer than this many bytes remain, leaving any
	// remaining pixels black. Source files in the wild are often short.
	minRemaining = 4
)
