package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileName is looked up in the project root
const ConfigFileName = ".navmatch.kdl"

// Empty-query policies. The matcher reports an empty query; the caller decides.
const (
	EmptyPatternNone = "none"
	EmptyPatternAll  = "all"
)

const (
	DefaultMaxResults = 50
	DefaultCacheSize  = 256
)

type Config struct {
	Version int
	Project Project
	Sources Sources
	Search  Search
}

type Project struct {
	Root string
	Name string
}

// Sources selects the files symbols are loaded from. Globs use doublestar
// syntax relative to the project root; an empty Include means every file
// with a supported extension.
type Sources struct {
	Include []string
	Exclude []string
}

type Search struct {
	MaxResults     int    // 0 = unlimited
	Workers        int    // 0 = NumCPU
	EmptyPattern   string // "none" or "all"
	CacheSize      int    // compiled patterns kept in the LRU cache
	RankSimilarity bool   // order equal match kinds by Jaro-Winkler similarity
}

// Default returns the configuration used when no config file exists
func Default(root string) *Config {
	return &Config{
		Version: 1,
		Project: Project{Root: root, Name: filepath.Base(root)},
		Sources: Sources{
			Include: []string{},
			Exclude: getDefaultExclusions(),
		},
		Search: Search{
			MaxResults:     DefaultMaxResults,
			Workers:        runtime.NumCPU(),
			EmptyPattern:   EmptyPatternNone,
			CacheSize:      DefaultCacheSize,
			RankSimilarity: true,
		},
	}
}

// Load reads the config file at path. A missing file yields defaults rooted
// at the file's directory.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	absDir, err := filepath.Abs(dir)
	if err == nil {
		dir = absDir
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default(dir)
		return cfg, NewValidator().ValidateAndSetDefaults(cfg)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parseKDL(string(content), dir)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromRoot loads ConfigFileName from the given project root
func LoadFromRoot(root string) (*Config, error) {
	return Load(filepath.Join(root, ConfigFileName))
}

func getDefaultExclusions() []string {
	return []string{
		"**/.git/**",
		"**/node_modules/**",
		"**/vendor/**",
		"**/testdata/**",
	}
}
