package pixel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	tables := []struct {
		name    string
		r, g, b uint8
		hi, lo  uint8
	}{
		{"black", 0, 0, 0, 0x00, 0x00},
		{"red", 248, 0, 0, 0x00, 0x7c},
		{"green", 0, 248, 0, 0xe0, 0x03},
		{"blue", 0, 0, 248, 0x1f, 0x00},
		{"white", 248, 248, 248, 0xff, 0x7f},
		{"white unquantized", 255, 255, 255, 0xff, 0x7f},
		{"low bits dropped", 7, 7, 7, 0x00, 0x00},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			hi, lo := Pack(table.r, table.g, table.b)
			assert.Equal(t, table.hi, hi)
			assert.Equal(t, table.lo, lo)
		})
	}
}

func TestUnpack(t *testing.T) {
	tables := []struct {
		name    string
		hi, lo  uint8
		r, g, b uint8
	}{
		{"black", 0x00, 0x00, 0, 0, 0},
		{"red", 0x00, 0x7c, 248, 0, 0},
		{"green", 0xe0, 0x03, 0, 248, 0},
		{"blue", 0x1f, 0x00, 0, 0, 248},
		{"white", 0xff, 0x7f, 248, 248, 248},
		{"alpha ignored", 0xff, 0xff, 248, 248, 248},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			r, g, b := Unpack(table.hi, table.lo)
			assert.Equal(t, table.r, r)
			assert.Equal(t, table.g, g)
			assert.Equal(t, table.b, b)
		})
	}
}

func TestRoundTripQuantized(t *testing.T) {
	for r := 0; r <= 248; r += 8 {
		for g := 0; g <= 248; g += 8 {
			for b := 0; b <= 248; b += 8 {
				hi, lo := Pack(uint8(r), uint8(g), uint8(b))
				ur, ug, ub := Unpack(hi, lo)
				if ur != uint8(r) || ug != uint8(g) || ub != uint8(b) {
					t.Fatalf("(%d, %d, %d) became (%d, %d, %d)", r, g, b, ur, ug, ub)
				}
			}
		}
	}
}

func TestRoundTripLoss(t *testing.T) {
	// Channels are independent so walking each one separately is enough
	for v := 0; v < 256; v++ {
		c := uint8(v)
		for _, in := range [][3]uint8{{c, 0, 0}, {0, c, 0}, {0, 0, c}, {c, c, c}} {
			hi1, lo1 := Pack(in[0], in[1], in[2])
			hi2, lo2 := Pack(in[0], in[1], in[2])
			assert.Equal(t, hi1, hi2)
			assert.Equal(t, lo1, lo2)

			r, g, b := Unpack(hi1, lo1)
			for i, out := range []uint8{r, g, b} {
				assert.LessOrEqual(t, out, in[i])
				assert.LessOrEqual(t, in[i]-out, uint8(7))
			}
		}
	}
}

func TestColor(t *testing.T) {
	c := FromBytes(0xff, 0x7f)
	hi, lo := c.Bytes()
	assert.Equal(t, uint8(0xff), hi)
	assert.Equal(t, uint8(0x7f), lo)

	assert.Equal(t, color.RGBA{248, 248, 248, 0xff}, color.RGBAModel.Convert(c))
	assert.Equal(t, Color(0x007c), Model.Convert(color.RGBA{255, 0, 0, 0xff}))
	assert.Equal(t, c, Model.Convert(c))
}
