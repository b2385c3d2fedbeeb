package elevation

import "math"

// Scale converts a raw sample into an absolute elevation.
func Scale(raw, scale, offset float64) float64 {
	return raw*(scale/256.0) + offset
}

// Resample resizes the grid to Size x Size and converts the samples into
// absolute elevations.
//
// Instead of blending, every output cell takes the minimum of its four
// neighbouring input samples, so the resulting surface never rises above the
// terrain it approximates. Grids that already are Size x Size are only scaled.
//
// Scans usually capture Size+1 samples per axis with samples on the cell
// edges. For those the x=0 column and y=0 row only sample the first input
// column and row, and the x=63 column and y=63 row include the last one.
func Resample(g *Grid, scale, offset float64) *Grid64 {
	out := &Grid64{}

	if g.width == Size && g.height == Size {
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				out[x][y] = Scale(g.values[x][y], scale, offset)
			}
		}
		return out
	}

	for x := 0; x < Size; x++ {
		xf := math.Min(float64(g.width-1), float64(x)/Size*float64(g.width))
		x0, x1 := int(math.Floor(xf)), int(math.Ceil(xf))

		for y := 0; y < Size; y++ {
			yf := math.Min(float64(g.height-1), float64(y)/Size*float64(g.height))
			y0, y1 := int(math.Floor(yf)), int(math.Ceil(yf))

			z := math.Min(
				math.Min(g.values[x0][y0], g.values[x0][y1]),
				math.Min(g.values[x1][y0], g.values[x1][y1]),
			)

			out[x][y] = Scale(z, scale, offset)
		}
	}

	return out
}
