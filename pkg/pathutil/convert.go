// Package pathutil converts between absolute and root-relative paths.
//
// Symbols carry absolute paths so results from different roots never
// collide. Output shown to users is relative to the project root.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails, the path is already
// relative, or it lies outside the root.
//
// Examples:
//   - ToRelative("/home/user/project/src/main.go", "/home/user/project") → "src/main.go"
//   - ToRelative("/other/location/file.go", "/home/user/project") → "/other/location/file.go"
//   - ToRelative("src/main.go", "/home/user/project") → "src/main.go"
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}
	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		// Different volumes on Windows
		return absPath
	}

	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}
	return relPath
}

// Relativize returns a copy of items with the path selected by field made
// relative to rootDir. The input slice is not modified.
func Relativize[T any](items []T, rootDir string, field func(*T) *string) []T {
	if len(items) == 0 {
		return items
	}

	converted := make([]T, len(items))
	copy(converted, items)
	for i := range converted {
		p := field(&converted[i])
		*p = ToRelative(*p, rootDir)
	}
	return converted
}
