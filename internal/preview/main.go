package preview

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gruppe-adler/regionsculpt/internal/sculpt"
	"github.com/gruppe-adler/regionsculpt/internal/utils"
	"github.com/gruppe-adler/regionsculpt/internal/validate"
	"github.com/nfnt/resize"
)

var sizes = []uint{128, 256, 512}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to sculpt map png")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if err := validate.OutputDirectory(*outputPtr); err != nil {
		log.Fatal(err)
	}

	if err := validate.SculptImage(*inputPtr); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Validated input")

	timer = time.Now()
	fmt.Println("▶️  Loading sculpt map")

	img, err := utils.LoadPNG(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	// make sure the image is a sculpt map before scaling it up
	if _, err := sculpt.FromImage(img, sculpt.DefaultConvention); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Loaded sculpt map in", time.Since(timer).String())

	name := strings.TrimSuffix(filepath.Base(*inputPtr), filepath.Ext(*inputPtr))

	for _, size := range sizes {
		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		path := filepath.Join(*outputPtr, fmt.Sprintf("%s_%d.png", name, size))
		if err := utils.SavePNG(path, Scale(img, size)); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Since(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// Scale enlarges a sculpt map to size x size. Nearest neighbour keeps every
// vertex color as it is.
func Scale(img image.Image, size uint) image.Image {
	return resize.Resize(size, size, img, resize.NearestNeighbor)
}
