// Package files locates the spreadsheet exports a report run consumes.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrMissingFolder indicates the configured input directory does not exist.
	ErrMissingFolder = errors.New("input folder not found")
	// ErrNoFiles indicates the input directory holds no loadable spreadsheets.
	ErrNoFiles = errors.New("no Excel files found")
)

// FindExcelFiles returns the paths of all .xlsx files directly inside dir,
// sorted by name. Both a missing directory and an empty one are fatal
// configuration errors for the run.
func FindExcelFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFolder, dir)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			// Office lock files are not loadable workbooks.
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}

	sort.Strings(paths)
	return paths, nil
}
