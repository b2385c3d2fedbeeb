package sculpt

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gruppe-adler/regionsculpt/internal/batch"
	"github.com/gruppe-adler/regionsculpt/internal/dem"
	"github.com/gruppe-adler/regionsculpt/internal/elevation"
	"github.com/gruppe-adler/regionsculpt/internal/mounts"
	"github.com/gruppe-adler/regionsculpt/internal/scan"
	"github.com/gruppe-adler/regionsculpt/internal/sculptjson"
	"github.com/gruppe-adler/regionsculpt/internal/utils"
	"github.com/gruppe-adler/regionsculpt/internal/validate"
)

// Input formats
const (
	FormatScan = "scan"
	FormatEsri = "esri"
)

// Options configures a sculpt run
type Options struct {
	OutputDirectory string
	Prefix          string
	Format          string
	Workers         int
	WriteMeta       bool
	WriteMounts     bool
}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	outputPtr := flagSet.String("out", "/tmp", "Path to output directory")
	prefixPtr := flagSet.String("prefix", "terrainsculpt-", "Prefix of the output file names")
	formatPtr := flagSet.String("format", FormatScan, "Input format: scan (scanner email) or esri (ESRI ASCII grid, optionally .gz)")
	workersPtr := flagSet.Int("workers", runtime.NumCPU(), "Number of files processed in parallel")
	metaPtr := flagSet.Bool("meta", true, "Write a .json descriptor next to every sculpt map")
	mountsPtr := flagSet.Bool("mounts", false, "Write a .geojson with the peaks of every region")

	flagSet.Parse(os.Args[2:])

	inputs := flagSet.Args()

	if len(inputs) == 0 {
		fmt.Printf("USAGE:\n    %s sculpt [FLAGS] FILE...\n\n", os.Args[0])
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if *formatPtr != FormatScan && *formatPtr != FormatEsri {
		log.Fatal(fmt.Errorf("unknown input format %q", *formatPtr))
	}

	if err := validate.OutputDirectory(*outputPtr); err != nil {
		log.Fatal(err)
	}

	if err := validate.InputFiles(inputs); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Validated", len(inputs), "input files")

	opts := Options{
		OutputDirectory: *outputPtr,
		Prefix:          *prefixPtr,
		Format:          *formatPtr,
		Workers:         *workersPtr,
		WriteMeta:       *metaPtr,
		WriteMounts:     *mountsPtr,
	}

	timer := time.Now()
	fmt.Println("▶️  Building sculpt maps")
	results := Process(context.Background(), inputs, opts)
	failed := batch.Failed(results)

	for _, r := range failed {
		fmt.Printf("❌  %s: %v\n", r.Item, r.Err)
	}
	fmt.Printf("✔️  Built %d of %d sculpt maps in %s\n", len(results)-len(failed), len(results), time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())

	if len(failed) > 0 {
		os.Exit(1)
	}
}

// ErrDuplicateOutput is returned for an input whose region was already
// produced by an earlier input of the same run.
var ErrDuplicateOutput = errors.New("duplicate output")

// job is one input file ready to be written
type job struct {
	path      string
	region    string
	base      string
	width     int
	height    int
	scale     float64
	offset    float64
	resampled *elevation.Grid64
	raster    *Raster
}

// Process builds a sculpt map for every input file. Files are independent,
// a broken file is reported in its result and does not stop the others.
// When several files name the same region, the first one in input order is
// written and the others fail with ErrDuplicateOutput.
func Process(ctx context.Context, inputs []string, opts Options) []batch.Result {
	jobs := make([]*job, len(inputs))

	errs := batch.Each(ctx, len(inputs), opts.Workers, func(ctx context.Context, i int) error {
		j, err := prepare(inputs[i], opts)
		jobs[i] = j
		return err
	})

	owners := map[string]string{}
	for i, j := range jobs {
		if errs[i] != nil {
			continue
		}
		if owner, ok := owners[j.base]; ok {
			errs[i] = fmt.Errorf("%w: region %s is already written from %s", ErrDuplicateOutput, j.region, owner)
			continue
		}
		owners[j.base] = j.path
	}

	writeErrs := batch.Each(ctx, len(inputs), opts.Workers, func(ctx context.Context, i int) error {
		if errs[i] != nil {
			return nil
		}
		return write(jobs[i], opts)
	})

	results := make([]batch.Result, len(inputs))
	for i, path := range inputs {
		err := errs[i]
		if err == nil {
			err = writeErrs[i]
		}
		results[i] = batch.Result{Item: path, Err: err}
	}

	return results
}

// prepare loads, resamples and encodes one input file.
func prepare(path string, opts Options) (*job, error) {
	region, grid, scale, offset, err := load(path, opts.Format)
	if err != nil {
		return nil, err
	}

	w, h := grid.Dims()
	fmt.Printf("ℹ️  Region: %s scale: %1.3f  offset %1.3f  grid: %dx%d\n", region, scale, offset, w, h)

	if err := checkConversion(scale, offset); err != nil {
		return nil, err
	}

	resampled := elevation.Resample(grid, scale, offset)

	raster, err := Encode(resampled)
	if err != nil {
		return nil, fmt.Errorf("region %s: %w", region, err)
	}
	fmt.Printf("ℹ️  Region: %s Z bounds: %3.2f to %3.2f\n", region, raster.ZOffset, raster.ZOffset+raster.ZHeight)

	return &job{
		path:      path,
		region:    region,
		base:      filepath.Join(opts.OutputDirectory, opts.Prefix+utils.SafeFileName(region)),
		width:     w,
		height:    h,
		scale:     scale,
		offset:    offset,
		resampled: resampled,
		raster:    raster,
	}, nil
}

func write(j *job, opts Options) error {
	if err := utils.SavePNG(j.base+".png", j.raster.Image()); err != nil {
		return err
	}

	if opts.WriteMeta {
		meta := describe(j.region, filepath.Base(j.base+".png"), j.width, j.height, j.scale, j.offset, j.raster)
		if err := sculptjson.Write(j.base+".json", meta); err != nil {
			return err
		}
	}

	if opts.WriteMounts {
		if err := mounts.Write(j.base+".geojson", mounts.Build(j.region, j.resampled)); err != nil {
			return err
		}
	}

	fmt.Println("✔️  Wrote", j.base+".png")

	return nil
}

// load reads an input file and returns the region name, raw samples and the
// conversion into absolute elevations.
func load(path, format string) (string, *elevation.Grid, float64, float64, error) {
	switch format {
	case FormatScan:
		s, err := scan.Read(path)
		if err != nil {
			return "", nil, 0, 0, err
		}

		grid, err := s.Grid()
		if err != nil {
			return "", nil, 0, 0, fmt.Errorf("%s: %w", path, err)
		}

		return s.Region, grid, float64(*s.Scale), float64(*s.Offset), nil

	case FormatEsri:
		raster, err := dem.Read(path)
		if err != nil {
			return "", nil, 0, 0, err
		}

		grid, err := raster.Grid()
		if err != nil {
			return "", nil, 0, 0, fmt.Errorf("%s: %w", path, err)
		}

		// DEM values already are elevations
		return regionFromPath(path), grid, 256, 0, nil
	}

	return "", nil, 0, 0, errors.New("unknown input format " + format)
}

func describe(region, image string, sourceWidth, sourceHeight int, scale, offset float64, raster *Raster) sculptjson.SculptJSON {
	return sculptjson.SculptJSON{
		Region:       region,
		Image:        image,
		Size:         elevation.Size,
		SourceWidth:  sourceWidth,
		SourceHeight: sourceHeight,
		Scale:        scale,
		Offset:       offset,
		ZOffset:      raster.ZOffset,
		ZHeight:      raster.ZHeight,
		FlipY:        raster.Convention.FlipY,
		Channels: sculptjson.Channels{
			X: raster.Convention.X.String(),
			Y: raster.Convention.Y.String(),
			Z: raster.Convention.Z.String(),
		},
	}
}

func regionFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}
