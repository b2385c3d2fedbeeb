package sculpt

import (
	"fmt"
	"math"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

// Generate turns raw elevation bytes rows[x][y] into a sculpt map. Raw values
// are converted with raw * scale/256 + offset.
func Generate(rows [][]byte, scale, offset float64) (*Raster, error) {
	grid, err := elevation.FromBytes(rows)
	if err != nil {
		return nil, err
	}

	return GenerateFromGrid(grid, scale, offset)
}

// GenerateFromGrid resamples and encodes an already decoded grid.
func GenerateFromGrid(grid *elevation.Grid, scale, offset float64) (*Raster, error) {
	if err := checkConversion(scale, offset); err != nil {
		return nil, err
	}

	return Encode(elevation.Resample(grid, scale, offset))
}

func checkConversion(scale, offset float64) error {
	if !isFinite(scale) || !isFinite(offset) {
		return fmt.Errorf("%w: scale %v and offset %v must be finite", elevation.ErrMalformedInput, scale, offset)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
