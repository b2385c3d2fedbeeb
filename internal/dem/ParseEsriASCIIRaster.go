package dem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEsriASCIIRaster parses an ESRI ASCII grid
func ParseEsriASCIIRaster(reader io.Reader) (EsriASCIIRaster, error) {

	raster := EsriASCIIRaster{}
	remainingHeaders := []string{"NCOLS", "NROWS", "XLLCENTER", "XLLCORNER", "YLLCENTER", "YLLCORNER", "CELLSIZE", "NODATA_VALUE"}
	stillIsHeader := true
	rowIndex := uint(0)
	var esriData [][]float64

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		// first field as upper case
		keyword := strings.ToUpper(fields[0])

		if stillIsHeader && contains(remainingHeaders, keyword) {
			remainingHeaders = remove(remainingHeaders, keyword)

			// there can either be corner or center not both
			if keyword == "XLLCENTER" || keyword == "YLLCENTER" {
				remainingHeaders = remove(remainingHeaders, "XLLCORNER")
				remainingHeaders = remove(remainingHeaders, "YLLCORNER")
			}
			if keyword == "XLLCORNER" || keyword == "YLLCORNER" {
				remainingHeaders = remove(remainingHeaders, "XLLCENTER")
				remainingHeaders = remove(remainingHeaders, "YLLCENTER")
			}

			err := parseHeaderLine(fields, &raster)

			if err != nil {
				return raster, err
			}
		} else {
			if stillIsHeader { // this is the first data line, if stillIsHeader is true
				// NODATA_VALUE is optional
				remainingHeaders = remove(remainingHeaders, "NODATA_VALUE")

				if len(remainingHeaders) > 0 {
					return raster, fmt.Errorf("DEM doesn't include all mandatory headers, missing %s", strings.Join(remainingHeaders, ", "))
				}

				stillIsHeader = false
			}

			row, err := parseDataLine(fields, raster.Ncols)
			if err != nil {
				return raster, fmt.Errorf("DEM row %d: %w", rowIndex, err)
			}

			esriData = append(esriData, row)
			rowIndex++

			if rowIndex >= raster.Nrows {
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return raster, err
	}

	if rowIndex < raster.Nrows {
		return raster, fmt.Errorf("DEM has %d data rows, expected %d", rowIndex, raster.Nrows)
	}

	raster.Data = esriData

	return raster, nil
}

func parseHeaderLine(fields []string, grid *EsriASCIIRaster) error {
	if len(fields) != 2 {
		return fmt.Errorf("header line must have exactly two fields")
	}

	keyword := strings.ToUpper(fields[0])

	if keyword == "NCOLS" || keyword == "NROWS" {
		i, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return err
		}
		if i == 0 {
			return fmt.Errorf("%s must be greater than 0", keyword)
		}
		if keyword == "NCOLS" {
			grid.Ncols = uint(i)
		} else {
			grid.Nrows = uint(i)
		}
		return nil
	}

	f, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return err
	}

	switch keyword {
	case "XLLCENTER":
		grid.Xcenter = &f
	case "XLLCORNER":
		grid.Xcorner = &f
	case "YLLCENTER":
		grid.Ycenter = &f
	case "YLLCORNER":
		grid.Ycorner = &f
	case "CELLSIZE":
		if f <= 0.0 {
			return fmt.Errorf("CELLSIZE must be greater than 0")
		}
		grid.CellSize = f
	case "NODATA_VALUE":
		grid.NoDataValue = &f
	default:
		return fmt.Errorf("unknown header keyword: %s", fields[0])
	}

	return nil
}

func parseDataLine(fields []string, cols uint) ([]float64, error) {
	// NCOLS is untrusted, only allocate what the line really holds
	if uint(len(fields)) < cols {
		return nil, fmt.Errorf("DEM data row is too short")
	}

	row := make([]float64, cols)

	for i := uint(0); i < cols; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return row, err
		}
		row[i] = f
	}

	return row, nil
}

// contains checks whether an array contains a string
func contains(array []string, element string) bool {
	for _, curElement := range array {
		if curElement == element {
			return true
		}
	}
	return false
}

// remove removes a string from an array
func remove(arr []string, element string) []string {
	var remaining []string

	for i := 0; i < len(arr); i++ {
		if element != arr[i] {
			remaining = append(remaining, arr[i])
		}
	}

	return remaining
}
