package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRelative(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		name     string
		absPath  string
		rootDir  string
		expected string
	}{
		{
			name:     "simple relative path",
			absPath:  "/home/user/project/src/main.go",
			rootDir:  "/home/user/project",
			expected: "src/main.go",
		},
		{
			name:     "nested relative path",
			absPath:  "/home/user/project/internal/symbols/loader.go",
			rootDir:  "/home/user/project",
			expected: "internal/symbols/loader.go",
		},
		{
			name:     "same directory",
			absPath:  "/home/user/project",
			rootDir:  "/home/user/project",
			expected: ".",
		},
		{
			name:     "already relative path",
			absPath:  "src/main.go",
			rootDir:  "/home/user/project",
			expected: "src/main.go",
		},
		{
			name:     "path outside root",
			absPath:  "/other/location/file.go",
			rootDir:  "/home/user/project",
			expected: "/other/location/file.go",
		},
		{
			name:     "sibling with dotted name stays relative",
			absPath:  "/home/user/project/..hidden/file.go",
			rootDir:  "/home/user/project",
			expected: "..hidden/file.go",
		},
		{
			name:     "empty root directory",
			absPath:  "/home/user/project/file.go",
			rootDir:  "",
			expected: "/home/user/project/file.go",
		},
		{
			name:     "empty path",
			absPath:  "",
			rootDir:  "/home/user/project",
			expected: "",
		},
		{
			name:     "unclean paths",
			absPath:  "/home/user/project/./src/../src/main.go",
			rootDir:  "/home/user/project/",
			expected: "src/main.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), ToRelative(tt.absPath, tt.rootDir))
		})
	}
}

type located struct {
	Name string
	Path string
}

func TestRelativize(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	items := []located{
		{Name: "Circle", Path: filepath.Join(root, "shapes", "circle.go")},
		{Name: "Square", Path: filepath.Join(root, "square.go")},
	}

	converted := Relativize(items, root, func(l *located) *string { return &l.Path })

	assert.Equal(t, filepath.Join("shapes", "circle.go"), converted[0].Path)
	assert.Equal(t, "square.go", converted[1].Path)
	assert.Equal(t, "Circle", converted[0].Name)
	// Original untouched
	assert.Equal(t, filepath.Join(root, "square.go"), items[1].Path)
}

func TestRelativizeEmpty(t *testing.T) {
	var items []located
	assert.Nil(t, Relativize(items, "/root", func(l *located) *string { return &l.Path }))
}
