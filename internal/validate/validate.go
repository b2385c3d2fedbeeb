package validate

import (
	"fmt"
	"path/filepath"

	"github.com/gruppe-adler/regionsculpt/internal/utils"
)

// OutputDirectory validates that given directory exists
func OutputDirectory(dirPath string) error {
	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("%s does not exists or is no directory", dirPath)
	}

	return nil
}

// InputFiles validates that at least one input is given and all inputs are files
func InputFiles(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no input files given")
	}

	for _, p := range paths {
		if !utils.IsFile(p) {
			return fmt.Errorf("%s does not exists or is no file", p)
		}
	}

	return nil
}

// SculptImage validates that given path is a png file
func SculptImage(imgPath string) error {
	if !utils.IsFile(imgPath) {
		return fmt.Errorf("%s does not exists or is no file", imgPath)
	}

	if ext := filepath.Ext(imgPath); ext != ".png" {
		return fmt.Errorf("%s is no png file", imgPath)
	}

	return nil
}
