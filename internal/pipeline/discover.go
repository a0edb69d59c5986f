package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Recognized image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

// Discover walks inputDir, collects files with recognized image extensions,
// and returns the paths sorted lexicographically for deterministic
// processing order. A missing or unreadable directory is returned as an
// error; it is fatal for the run and must surface before any timing starts.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if imageExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
