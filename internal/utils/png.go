package utils

import (
	"image"
	"image/png"
	"os"
	"strings"
	"unicode"
)

// SavePNG writes img as png to path
func SavePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// LoadPNG reads a png from path
func LoadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return png.Decode(file)
}

// SafeFileName replaces everything that may not appear in a file name with _
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}

	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)
}
