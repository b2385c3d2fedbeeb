package dem

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read digital elevation model from given path. Files ending in .gz are
// decompressed.
func Read(path string) (EsriASCIIRaster, error) {
	file, err := os.Open(path)
	if err != nil {
		return EsriASCIIRaster{}, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return EsriASCIIRaster{}, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	raster, err := ParseEsriASCIIRaster(reader)
	if err != nil {
		return raster, fmt.Errorf("%s: %w", path, err)
	}

	return raster, nil
}
