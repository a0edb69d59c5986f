// Package naming maps input image paths to output paths and resolves name
// collisions between inputs that would claim the same output file.
package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath mirrors inputPath's location relative to inputDir under
// outputDir, with the extension replaced by .png (all pipeline output is
// PNG). If inputPath is not under inputDir the basename alone is used.
func OutputPath(inputPath, inputDir, outputDir string) string {
	rel, err := filepath.Rel(inputDir, inputPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(inputPath)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".png"
	return filepath.Join(outputDir, rel)
}
