package sculpt

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
	"github.com/gruppe-adler/regionsculpt/internal/utils"
)

// RunPyramid writes the pyramid test sculpt
func RunPyramid(flagSet *flag.FlagSet) {

	start := time.Now()

	outputPtr := flagSet.String("out", "/tmp/sculpttest.png", "Path to output png")

	flagSet.Parse(os.Args[2:])

	if *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	raster, err := Encode(Pyramid())
	if err != nil {
		log.Fatal(err)
	}

	if err := utils.SavePNG(*outputPtr, raster.Image()); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Wrote", *outputPtr)
	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// Pyramid returns a test surface: a pyramid one unit high centred on the grid.
func Pyramid() *elevation.Grid64 {
	grid := &elevation.Grid64{}
	halfway := elevation.Size * 0.5

	for x := 0; x < elevation.Size; x++ {
		for y := 0; y < elevation.Size; y++ {
			z1 := halfway - math.Abs(halfway-float64(x))
			z2 := halfway - math.Abs(halfway-float64(y))
			grid[x][y] = math.Min(z1, z2) / halfway
		}
	}

	return grid
}
