package symbols

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/navmatch/internal/debug"
	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
	"github.com/standardbeagle/navmatch/internal/security"
)

// Extensions the loader knows how to read
var supportedExtensions = map[string]bool{
	".go":   true,
	".toml": true,
	".txt":  true,
}

// Loader collects candidate symbols from files under a root directory
type Loader struct {
	root    string
	include []string
	exclude []string

	validator   *security.FileValidator
	goExtractor *goExtractor
}

// NewLoader creates a loader. Include and exclude are doublestar globs
// relative to root; an empty include list accepts every supported file.
func NewLoader(root string, include, exclude []string) *Loader {
	return &Loader{
		root:      root,
		include:   include,
		exclude:   exclude,
		validator: security.NewFileValidator(security.DefaultMaxFileSize),
	}
}

// Load walks the root and returns every symbol found, deduplicated.
// Files that fail to read or parse are skipped; their errors come back
// together as a *errors.MultiError alongside the symbols that did load.
// Context cancellation stops the walk and is returned as is.
func (l *Loader) Load(ctx context.Context) ([]Symbol, error) {
	defer l.Close()

	var (
		out     []Symbol
		skipped []error
		seen    = make(map[uint64]struct{})
	)

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			skipped = append(skipped, nmerrors.NewLoadError("walk", path, walkErr).WithRecoverable(true))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			rel = path
		}
		if !l.selected(filepath.ToSlash(rel)) {
			return nil
		}

		syms, err := l.LoadFile(path)
		if err != nil {
			debug.LogLoad("skipping %s: %v\n", path, err)
			skipped = append(skipped, err)
			return nil
		}

		for _, sym := range syms {
			key := xxhash.Sum64String(sym.Path + "\x00" + sym.Qualified() + "\x00" + strconv.Itoa(sym.Line))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, sym)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nmerrors.NewLoadError("walk", l.root, err)
	}

	debug.LogLoad("loaded %d symbols from %s (%d files skipped)\n", len(out), l.root, len(skipped))
	return out, nmerrors.NewMultiError(skipped).ErrOrNil()
}

// LoadFile reads symbols from a single file, choosing the reader by extension
func (l *Loader) LoadFile(path string) ([]Symbol, error) {
	if err := l.validator.Validate(path); err != nil {
		return nil, nmerrors.NewLoadError("validate", path, err).WithRecoverable(true)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nmerrors.NewLoadError("read", path, err).WithRecoverable(true)
	}

	switch filepath.Ext(path) {
	case ".go":
		if l.goExtractor == nil {
			extractor, err := newGoExtractor()
			if err != nil {
				return nil, nmerrors.NewLoadError("init go parser", path, err)
			}
			l.goExtractor = extractor
		}
		syms, err := l.goExtractor.Extract(path, content)
		if err != nil {
			return nil, nmerrors.NewParseError(path, 0, err)
		}
		return syms, nil
	case ".toml":
		return parseTOML(path, content)
	case ".txt":
		return parseList(path, content)
	default:
		return nil, nmerrors.NewLoadError("read", path, fs.ErrInvalid).WithRecoverable(true)
	}
}

func (l *Loader) selected(rel string) bool {
	if !supportedExtensions[filepath.Ext(rel)] {
		return false
	}
	if matchesAny(l.exclude, rel) {
		return false
	}
	return len(l.include) == 0 || matchesAny(l.include, rel)
}

// Close releases the Go parser held after LoadFile. Load calls it itself.
func (l *Loader) Close() {
	if l.goExtractor != nil {
		l.goExtractor.Close()
		l.goExtractor = nil
	}
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}
