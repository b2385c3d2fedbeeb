package elevation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Size is the edge length of a sculpt map. Sculpt textures are always 64x64.
const Size = 64

// ErrMalformedInput is returned for grids that are empty, not rectangular or
// contain non-finite samples.
var ErrMalformedInput = errors.New("malformed input")

// Grid is a dense, rectangular grid of elevation samples indexed [x][y].
// It is read-only after construction.
type Grid struct {
	width, height int
	values        [][]float64
}

// NewGrid builds a grid from values[x][y]. The values are copied.
func NewGrid(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}

	width := len(values)
	height := len(values[0])

	data := make([][]float64, width)
	for x := 0; x < width; x++ {
		if len(values[x]) != height {
			return nil, fmt.Errorf("%w: row %d has %d samples, expected %d", ErrMalformedInput, x, len(values[x]), height)
		}

		data[x] = make([]float64, height)
		for y, v := range values[x] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: sample (%d, %d) is not finite", ErrMalformedInput, x, y)
			}
			data[x][y] = v
		}
	}

	return &Grid{width: width, height: height, values: data}, nil
}

// FromBytes builds a grid from raw byte samples rows[x][y].
func FromBytes(rows [][]byte) (*Grid, error) {
	values := make([][]float64, len(rows))

	for x, row := range rows {
		values[x] = make([]float64, len(row))
		for y, b := range row {
			values[x][y] = float64(b)
		}
	}

	return NewGrid(values)
}

// Dims returns the dimensions of the grid.
func (g *Grid) Dims() (width, height int) {
	return g.width, g.height
}

// At returns the sample at (x, y).
// It will panic if x or y are out of bounds for the grid.
func (g *Grid) At(x, y int) float64 {
	return g.values[x][y]
}

// Grid64 is a sculpt sized grid of absolute elevations indexed [x][y].
type Grid64 [Size][Size]float64

// Bounds holds the elevation extent of a Grid64.
type Bounds struct {
	Min, Max float64
}

// Range returns Max - Min.
func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

// Bounds calculates the smallest and largest elevation in the grid.
func (g *Grid64) Bounds() Bounds {
	b := Bounds{Min: math.Inf(1), Max: math.Inf(-1)}

	for x := 0; x < Size; x++ {
		b.Min = math.Min(b.Min, floats.Min(g[x][:]))
		b.Max = math.Max(b.Max, floats.Max(g[x][:]))
	}

	return b
}
