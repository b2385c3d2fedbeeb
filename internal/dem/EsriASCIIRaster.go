package dem

import (
	"fmt"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

// EsriASCIIRaster represents a ESRI ASCII Grid
type EsriASCIIRaster struct {
	Ncols, Nrows     uint
	Xcenter, Ycenter *float64
	Xcorner, Ycorner *float64
	CellSize         float64
	NoDataValue      *float64
	Data             [][]float64
}

// Dims returns the dimensions of the grid.
func (raster EsriASCIIRaster) Dims() (c, r uint) {
	return raster.Ncols, raster.Nrows
}

// Z returns the value of a grid value at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (raster EsriASCIIRaster) Z(c, r uint) float64 {
	return raster.Data[r][c]
}

// Grid converts the raster into an elevation grid indexed [x][y] with +Y
// pointing north. ESRI grids store the northernmost row first.
// Cells holding the NODATA value are rejected.
func (raster EsriASCIIRaster) Grid() (*elevation.Grid, error) {
	cols, rows := raster.Dims()
	if uint(len(raster.Data)) != rows {
		return nil, fmt.Errorf("%w: DEM has %d of %d rows", elevation.ErrMalformedInput, len(raster.Data), rows)
	}

	values := make([][]float64, cols)
	for c := uint(0); c < cols; c++ {
		values[c] = make([]float64, rows)
		for r := uint(0); r < rows; r++ {
			z := raster.Z(c, r)
			if raster.NoDataValue != nil && z == *raster.NoDataValue {
				return nil, fmt.Errorf("%w: DEM has no data at column %d row %d", elevation.ErrMalformedInput, c, r)
			}
			values[c][rows-1-r] = z
		}
	}

	return elevation.NewGrid(values)
}
