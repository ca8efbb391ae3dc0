package image

import (
	"image"

	"github.com/bodgit/revenant/pixel"
)

// Encode returns the packed pixels of m in row-major order, starting from the
// top-left corner of its bounds. The result is always two bytes per pixel.
func Encode(m image.Image) []byte {
	b := m.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*bytesPerPixel)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hi, lo := pixel.Model.Convert(m.At(x, y)).(pixel.Color).Bytes()
			out = append(out, hi, lo)
		}
	}
	return out
}
