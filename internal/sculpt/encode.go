package sculpt

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

var (
	// ErrDegenerateTerrain is returned for grids without any height difference.
	ErrDegenerateTerrain = errors.New("degenerate terrain: all elevations are equal")

	// ErrInvariantViolation signals a normalised height outside [0, 1].
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// Raster is an encoded sculpt map.
type Raster struct {
	// Pixels is indexed [column][row] in image coordinates.
	Pixels [elevation.Size][elevation.Size]color.RGBA

	// ZOffset is the lowest elevation, ZHeight the distance to the highest.
	ZOffset, ZHeight float64

	Convention Convention
}

// Encode converts the grid into a sculpt map using DefaultConvention.
func Encode(grid *elevation.Grid64) (*Raster, error) {
	return EncodeWith(grid, DefaultConvention)
}

// EncodeWith converts the grid into a sculpt map using the given convention.
func EncodeWith(grid *elevation.Grid64, conv Convention) (*Raster, error) {
	if err := conv.Validate(); err != nil {
		return nil, err
	}

	bounds := grid.Bounds()
	zRange := bounds.Range()

	if zRange == 0 {
		return nil, ErrDegenerateTerrain
	}
	if math.IsNaN(zRange) || math.IsInf(zRange, 0) {
		return nil, fmt.Errorf("%w: elevation range is %v", elevation.ErrMalformedInput, zRange)
	}

	raster := &Raster{
		ZOffset:    bounds.Min,
		ZHeight:    zRange,
		Convention: conv,
	}

	for x := 0; x < elevation.Size; x++ {
		for y := 0; y < elevation.Size; y++ {
			zNorm := (grid[x][y] - bounds.Min) / zRange

			if !(zNorm >= 0 && zNorm <= 1) {
				return nil, fmt.Errorf("%w: cell (%d, %d) normalises to %v", ErrInvariantViolation, x, y, zNorm)
			}

			raster.Pixels[x][conv.Row(y)] = conv.Pixel(x, y, zNorm)
		}
	}

	return raster, nil
}

// At returns the pixel at image coordinates (x, row).
func (r *Raster) At(x, row int) color.RGBA {
	return r.Pixels[x][row]
}

// Image returns the sculpt map as an opaque image.
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, elevation.Size, elevation.Size))

	for x := 0; x < elevation.Size; x++ {
		for row := 0; row < elevation.Size; row++ {
			img.SetRGBA(x, row, r.Pixels[x][row])
		}
	}

	return img
}

// FromImage reads a sculpt map back from an image. ZOffset and ZHeight are
// not stored in the image and stay zero.
func FromImage(img image.Image, conv Convention) (*Raster, error) {
	b := img.Bounds()
	if b.Dx() != elevation.Size || b.Dy() != elevation.Size {
		return nil, fmt.Errorf("sculpt images must be %dx%d, got %dx%d", elevation.Size, elevation.Size, b.Dx(), b.Dy())
	}

	raster := &Raster{Convention: conv}
	for x := 0; x < elevation.Size; x++ {
		for row := 0; row < elevation.Size; row++ {
			raster.Pixels[x][row] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+row)).(color.RGBA)
		}
	}

	return raster, nil
}
