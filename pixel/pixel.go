/*
Package pixel implements the packed 16-bit color used by Revenant .dat files.

Each channel is reduced to 5 bits and the fields are stored, most significant
bit first, as:

	G2 G3 G4 B0 B1 B2 B3 B4 | A R0 R1 R2 R3 R4 G0 G1

where X0 is the most significant bit of channel X. The first byte on disk
holds the upper eight bits. The alpha bit is always written as zero.
*/
package pixel

import "image/color"

const (
	channelBits = 5
	channelMask = 1<<channelBits - 1
	shift       = 8 - channelBits
)

// Pack quantizes an 8-bit RGB triple and returns the two bytes stored on
// disk. The low three bits of every channel are discarded.
func Pack(r, g, b uint8) (uint8, uint8) {
	c := pack(r, g, b)
	return uint8(c >> 8), uint8(c)
}

// Unpack is the inverse of Pack. Channels are expanded by multiplying by 8 so
// the largest value that can be reconstructed is 248.
func Unpack(hi, lo uint8) (uint8, uint8, uint8) {
	return Color(uint16(hi)<<8 | uint16(lo)).RGB()
}

func pack(r, g, b uint8) Color {
	r, g, b = r>>shift, g>>shift, b>>shift
	return Color(uint16(g&0x07)<<13 | uint16(b)<<8 | uint16(r)<<2 | uint16(g>>3))
}

// Color is a packed pixel as a big-endian 16-bit word.
type Color uint16

// FromBytes returns the Color stored in the two bytes hi and lo.
func FromBytes(hi, lo uint8) Color {
	return Color(uint16(hi)<<8 | uint16(lo))
}

// Bytes returns the on-disk representation of c.
func (c Color) Bytes() (uint8, uint8) {
	return uint8(c >> 8), uint8(c)
}

// RGB returns the 8-bit channels of c.
func (c Color) RGB() (uint8, uint8, uint8) {
	r := uint8(c>>2) & channelMask
	g := uint8(c&0x03)<<3 | uint8(c>>13)&0x07
	b := uint8(c>>8) & channelMask
	return r << shift, g << shift, b << shift
}

// RGBA implements color.Color. Packed pixels are always opaque.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}.RGBA()
}

// Model converts any color.Color to a packed Color.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
