package sculpt

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

/*
	A sculpt map stores one vertex per pixel. The position of the vertex is
	encoded into the three color channels:

	x = channel / 256 (for the channel that carries x)
	y = channel / 256 (for the channel that carries y)
	z = channel / 256 (for the channel that carries the height)

	The grid position (x, y) of a cell is in [0, 64), so its byte value is
	x * 256 / 64. The height is normalised against the lowest and highest cell
	of the grid first; the consumer scales the prim by ZHeight and places it
	at ZOffset.

	Elevation grids have +Y pointing north, sculpt images are stored top to
	bottom. Without flipping the rows the UV mapping is mirrored and the
	sculpt is rendered inside out.
*/

// Channel is an index into an RGB pixel.
type Channel int

// Channels of a sculpt pixel.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Convention describes how grid cells map to pixels.
type Convention struct {
	// FlipY stores grid row y at image row Size-1-y.
	FlipY bool

	// X, Y and Z name the channel each coordinate is written to.
	X, Y, Z Channel
}

// DefaultConvention is what Second Life expects for sculpted prims.
var DefaultConvention = Convention{
	FlipY: true,
	X:     Red,
	Y:     Green,
	Z:     Blue,
}

// Validate checks that every coordinate has a channel of its own.
func (c Convention) Validate() error {
	seen := map[Channel]bool{}

	for _, ch := range []Channel{c.X, c.Y, c.Z} {
		if ch < Red || ch > Blue {
			return fmt.Errorf("invalid channel %s", ch)
		}
		if seen[ch] {
			return fmt.Errorf("channel %s is used twice", ch)
		}
		seen[ch] = true
	}

	return nil
}

// Row returns the image row for grid row y.
func (c Convention) Row(y int) int {
	if c.FlipY {
		return elevation.Size - 1 - y
	}
	return y
}

// PositionToByte encodes a grid index into a channel value.
func PositionToByte(i int) uint8 {
	return uint8((i * 256) / elevation.Size)
}

// HeightToByte quantizes a normalised height in [0, 1], rounding down.
func HeightToByte(zNorm float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Floor(zNorm*256))))
}

// Pixel builds the color for grid cell (x, y) with normalised height zNorm.
func (c Convention) Pixel(x, y int, zNorm float64) color.RGBA {
	var ch [3]uint8

	ch[c.X] = PositionToByte(x)
	ch[c.Y] = PositionToByte(y)
	ch[c.Z] = HeightToByte(zNorm)

	return color.RGBA{R: ch[Red], G: ch[Green], B: ch[Blue], A: 255}
}

// Vertex decodes a pixel back into the grid cell and normalised height it
// was made from. Height is only accurate to 1/256.
func (c Convention) Vertex(p color.RGBA) (x, y int, zNorm float64) {
	ch := [3]uint8{p.R, p.G, p.B}

	x = int(ch[c.X]) * elevation.Size / 256
	y = int(ch[c.Y]) * elevation.Size / 256
	zNorm = float64(ch[c.Z]) / 256

	return x, y, zNorm
}
