package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("", "/work/demo")
	require.NoError(t, err)

	assert.Equal(t, "/work/demo", cfg.Project.Root)
	assert.Equal(t, "demo", cfg.Project.Name)
	assert.Empty(t, cfg.Sources.Include)
	assert.Contains(t, cfg.Sources.Exclude, "**/.git/**")
	assert.Equal(t, DefaultMaxResults, cfg.Search.MaxResults)
	assert.Equal(t, EmptyPatternNone, cfg.Search.EmptyPattern)
	assert.True(t, cfg.Search.RankSimilarity)
}

func TestParseKDL_AllSections(t *testing.T) {
	content := `
project {
    root "src"
    name "navdemo"
}
sources {
    include "**/*.go" "symbols/*.toml"
    exclude "**/gen/**"
}
search {
    max_results 20
    workers 3
    empty_pattern "all"
    cache_size 16
    rank_similarity false
}
`
	cfg, err := parseKDL(content, "/work/demo")
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("/work/demo/src"), cfg.Project.Root)
	assert.Equal(t, "navdemo", cfg.Project.Name)
	assert.Equal(t, []string{"**/*.go", "symbols/*.toml"}, cfg.Sources.Include)
	assert.Contains(t, cfg.Sources.Exclude, "**/gen/**")
	assert.Contains(t, cfg.Sources.Exclude, "**/.git/**")
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, EmptyPatternAll, cfg.Search.EmptyPattern)
	assert.Equal(t, 16, cfg.Search.CacheSize)
	assert.False(t, cfg.Search.RankSimilarity)
}

func TestParseKDL_BlockStrings(t *testing.T) {
	content := `
sources {
    include {
        "**/*.txt"
        "**/*.go"
    }
}
`
	cfg, err := parseKDL(content, "/work")
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.txt", "**/*.go"}, cfg.Sources.Include)
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := parseKDL(`search {`, "/work")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromRoot(dir)
	require.NoError(t, err, "missing config falls back to defaults")
	assert.Equal(t, dir, cfg.Project.Root)

	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`search { max_results 5 }`), 0644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Positive(t, cfg.Search.Workers)
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty root", func(c *Config) { c.Project.Root = "" }, "project.root"},
		{"bad glob", func(c *Config) { c.Sources.Include = []string{"[a-"} }, "sources"},
		{"negative max", func(c *Config) { c.Search.MaxResults = -1 }, "search.max_results"},
		{"negative workers", func(c *Config) { c.Search.Workers = -2 }, "search.workers"},
		{"negative cache", func(c *Config) { c.Search.CacheSize = -2 }, "search.cache_size"},
		{"unknown policy", func(c *Config) { c.Search.EmptyPattern = "some" }, "search.empty_pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/work")
			tt.modify(cfg)

			err := NewValidator().ValidateAndSetDefaults(cfg)
			var cfgErr *nmerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidatorSmartDefaults(t *testing.T) {
	cfg := Default("/work")
	cfg.Search.Workers = 0
	cfg.Search.CacheSize = 0

	require.NoError(t, NewValidator().ValidateAndSetDefaults(cfg))
	assert.Positive(t, cfg.Search.Workers)
	assert.Equal(t, DefaultCacheSize, cfg.Search.CacheSize)
}
