// Package mounts finds the peaks of a resampled region as GeoJSON.
package mounts

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

// RegionSize is the edge length of a region in metres.
const RegionSize = 256.0

// CellSize is the distance between two sculpt vertices in metres.
const CellSize = RegionSize / elevation.Size

// Build returns the region footprint and all peaks of the grid. Peaks are
// sorted from highest to lowest.
func Build(region string, grid *elevation.Grid64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	footprint := geojson.NewFeature(orb.Polygon{orb.Ring{
		{0, 0}, {RegionSize, 0}, {RegionSize, RegionSize}, {0, RegionSize}, {0, 0},
	}})
	footprint.Properties["region"] = region
	fc.Append(footprint)

	peaks := []*geojson.Feature{}

	// for all cells (except edges)
	for x := 1; x < elevation.Size-1; x++ {
		for y := 1; y < elevation.Size-1; y++ {
			if !isPeak(grid, x, y) {
				continue
			}

			elev := grid[x][y]
			feature := geojson.NewFeature(orb.Point{float64(x) * CellSize, float64(y) * CellSize})
			feature.Properties["elevation"] = elev
			feature.Properties["text"] = fmt.Sprintf("%.0f", math.Round(elev))
			peaks = append(peaks, feature)
		}
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Properties["elevation"].(float64) > peaks[j].Properties["elevation"].(float64)
	})

	fc.Features = append(fc.Features, peaks...)

	return fc
}

// isPeak reports whether all eight neighbours are lower. Equal neighbours
// rule a cell out so that plateaus don't produce peaks.
func isPeak(grid *elevation.Grid64, x, y int) bool {
	elev := grid[x][y]

	for cx := x - 1; cx <= x+1; cx++ {
		for cy := y - 1; cy <= y+1; cy++ {
			if cx == x && cy == y {
				continue
			}
			if grid[cx][cy] >= elev {
				return false
			}
		}
	}

	return true
}

// Write a feature collection as GeoJSON to path
func Write(path string, fc *geojson.FeatureCollection) error {
	bytes, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, bytes, 0o644)
}
