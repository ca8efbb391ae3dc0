package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/revenant/pixel"
)

var black = image.NewUniform(color.RGBA{0, 0, 0, 0xff})

// Decode reads width * height packed pixels from b and returns them as an
// opaque raster of exactly that size, along with the number of pixels that
// were decoded. If b runs short the remaining pixels are left black.
func Decode(b []byte, width, height int) (*image.RGBA, int) {
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), black, image.Point{}, draw.Src)

	var i, n int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if len(b)-i < minRemaining {
				return m, n
			}
			r, g, bl := pixel.Unpack(b[i], b[i+1])
			m.SetRGBA(x, y, color.RGBA{r, g, bl, 0xff})
			i += bytesPerPixel
			n++
		}
	}

	return m, n
}
