package dem

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

const sampleDEM = `ncols 3
nrows 2
xllcorner 0.0
yllcorner 0.0
cellsize 4
NODATA_value -9999

1 2 3
4 5 6
`

func TestParseEsriASCIIRaster(t *testing.T) {
	raster, err := ParseEsriASCIIRaster(strings.NewReader(sampleDEM))
	require.NoError(t, err)

	c, r := raster.Dims()
	assert.Equal(t, uint(3), c)
	assert.Equal(t, uint(2), r)
	assert.Equal(t, 4.0, raster.CellSize)
	require.NotNil(t, raster.NoDataValue)
	assert.Equal(t, -9999.0, *raster.NoDataValue)
	require.NotNil(t, raster.Xcorner)
	assert.Nil(t, raster.Xcenter)
	assert.Equal(t, 6.0, raster.Z(2, 1))
}

func TestParseEsriASCIIRaster_Errors(t *testing.T) {
	tests := []struct {
		name string
		dem  string
	}{
		{"missing header", "ncols 2\nnrows 1\n1 2\n"},
		{"short row", "ncols 3\nnrows 1\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 2\n"},
		{"missing rows", "ncols 2\nnrows 2\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 2\n"},
		{"bad value", "ncols 2\nnrows 1\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 x\n"},
		{"bad cellsize", "ncols 2\nnrows 1\nxllcenter 0\nyllcenter 0\ncellsize -1\n1 2\n"},
		{"zero cols", "ncols 0\nnrows 1\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEsriASCIIRaster(strings.NewReader(tt.dem))
			assert.Error(t, err)
		})
	}
}

func TestParseEsriASCIIRaster_HugeHeader(t *testing.T) {
	tests := []struct {
		name string
		dem  string
		want string
	}{
		{"rows", "ncols 2\nnrows 4294967295\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 2\n3 4\n", "2 data rows"},
		{"cols", "ncols 4294967295\nnrows 1\nxllcenter 0\nyllcenter 0\ncellsize 1\n1 2\n", "too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEsriASCIIRaster(strings.NewReader(tt.dem))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGrid(t *testing.T) {
	raster, err := ParseEsriASCIIRaster(strings.NewReader(sampleDEM))
	require.NoError(t, err)

	g, err := raster.Grid()
	require.NoError(t, err)

	w, h := g.Dims()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	// southern row is y=0
	assert.Equal(t, 4.0, g.At(0, 0))
	assert.Equal(t, 1.0, g.At(0, 1))
	assert.Equal(t, 6.0, g.At(2, 0))
	assert.Equal(t, 3.0, g.At(2, 1))
}

func TestGrid_NoData(t *testing.T) {
	raster, err := ParseEsriASCIIRaster(strings.NewReader(strings.Replace(sampleDEM, "4 5 6", "4 -9999 6", 1)))
	require.NoError(t, err)

	_, err = raster.Grid()
	assert.ErrorIs(t, err, elevation.ErrMalformedInput)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "dem.asc")
	require.NoError(t, os.WriteFile(plain, []byte(sampleDEM), 0o644))

	compressed := filepath.Join(dir, "dem.asc.gz")
	f, err := os.Create(compressed)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleDEM))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, compressed} {
		raster, err := Read(path)
		require.NoError(t, err, path)
		assert.Equal(t, 5.0, raster.Z(1, 1), path)
	}

	_, err = Read(filepath.Join(dir, "missing.asc"))
	assert.Error(t, err)
}
