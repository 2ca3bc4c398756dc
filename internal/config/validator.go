package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"

	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if cfg.Project.Root == "" {
		return nmerrors.NewConfigError("project.root", "", errors.New("project root cannot be empty"))
	}

	for _, pattern := range append(append([]string{}, cfg.Sources.Include...), cfg.Sources.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nmerrors.NewConfigError("sources", pattern, errors.New("invalid glob pattern"))
		}
	}

	if err := v.validateSearchConfig(&cfg.Search); err != nil {
		return err
	}

	v.setSmartDefaults(cfg)
	return nil
}

func (v *Validator) validateSearchConfig(search *Search) error {
	if search.MaxResults < 0 {
		return nmerrors.NewConfigError("search.max_results", strconv.Itoa(search.MaxResults),
			fmt.Errorf("must not be negative"))
	}
	if search.Workers < 0 {
		return nmerrors.NewConfigError("search.workers", strconv.Itoa(search.Workers),
			fmt.Errorf("must not be negative"))
	}
	if search.CacheSize < 0 {
		return nmerrors.NewConfigError("search.cache_size", strconv.Itoa(search.CacheSize),
			fmt.Errorf("must not be negative"))
	}
	switch search.EmptyPattern {
	case EmptyPatternNone, EmptyPatternAll:
	default:
		return nmerrors.NewConfigError("search.empty_pattern", search.EmptyPattern,
			fmt.Errorf("expected %q or %q", EmptyPatternNone, EmptyPatternAll))
	}
	return nil
}

func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = runtime.NumCPU()
	}
	if cfg.Search.CacheSize == 0 {
		cfg.Search.CacheSize = DefaultCacheSize
	}
}
