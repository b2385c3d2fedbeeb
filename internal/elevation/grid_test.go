package elevation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  [][]float64
		wantErr bool
	}{
		{"rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, false},
		{"single cell", [][]float64{{7}}, false},
		{"empty", [][]float64{}, true},
		{"empty row", [][]float64{{}}, true},
		{"ragged", [][]float64{{1, 2, 3}, {4, 5}}, true},
		{"nan", [][]float64{{1, math.NaN()}}, true},
		{"inf", [][]float64{{math.Inf(1), 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGrid(tt.values)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			w, h := g.Dims()
			assert.Equal(t, len(tt.values), w)
			assert.Equal(t, len(tt.values[0]), h)
		})
	}
}

func TestNewGrid_CopiesValues(t *testing.T) {
	values := [][]float64{{1, 2}, {3, 4}}
	g, err := NewGrid(values)
	require.NoError(t, err)

	values[1][0] = 99
	assert.Equal(t, 3.0, g.At(1, 0))
}

func TestFromBytes(t *testing.T) {
	g, err := FromBytes([][]byte{{0, 255}, {16, 32}})
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.At(0, 0))
	assert.Equal(t, 255.0, g.At(0, 1))
	assert.Equal(t, 16.0, g.At(1, 0))
	assert.Equal(t, 32.0, g.At(1, 1))

	_, err = FromBytes([][]byte{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestGrid64_Bounds(t *testing.T) {
	g := &Grid64{}
	g[3][60] = -12.5
	g[63][0] = 40

	b := g.Bounds()
	assert.Equal(t, -12.5, b.Min)
	assert.Equal(t, 40.0, b.Max)
	assert.Equal(t, 52.5, b.Range())
}
