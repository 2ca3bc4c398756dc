package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/standardbeagle/navmatch/internal/config"
	"github.com/standardbeagle/navmatch/internal/debug"
	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
	"github.com/standardbeagle/navmatch/internal/symbols"
	"github.com/standardbeagle/navmatch/internal/version"

	"github.com/urfave/cli/v2"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	load := config.Load

	// A root without an explicit config looks for the config inside that root
	if rootFlag := c.String("root"); rootFlag != "" && !c.IsSet("config") {
		configPath = rootFlag
		load = config.LoadFromRoot
	}

	cfg, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if includeFlags := c.StringSlice("include"); len(includeFlags) > 0 {
		cfg.Sources.Include = includeFlags
	}
	if excludeFlags := c.StringSlice("exclude"); len(excludeFlags) > 0 {
		cfg.Sources.Exclude = append(cfg.Sources.Exclude, excludeFlags...)
	}
	if rootFlag := c.String("root"); rootFlag != "" {
		absRoot, err := filepath.Abs(rootFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path %q: %w", rootFlag, err)
		}
		cfg.Project.Root = absRoot
	}

	// Search flags exist only on the search command; IsSet is false elsewhere
	if c.IsSet("max") {
		cfg.Search.MaxResults = c.Int("max")
	}
	if c.IsSet("workers") {
		cfg.Search.Workers = c.Int("workers")
	}
	if c.IsSet("empty") {
		cfg.Search.EmptyPattern = c.String("empty")
	}

	// Overrides bypassed the validation config.Load ran
	if err := config.NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSymbols collects candidates for cfg. Files that could not be read are
// reported on stderr and otherwise ignored.
func loadSymbols(c *cli.Context, cfg *config.Config) ([]symbols.Symbol, error) {
	loader := symbols.NewLoader(cfg.Project.Root, cfg.Sources.Include, cfg.Sources.Exclude)
	syms, err := loader.Load(c.Context)

	var skipped *nmerrors.MultiError
	if errors.As(err, &skipped) {
		for _, e := range skipped.Errors {
			fmt.Fprintf(c.App.ErrWriter, "warning: %v\n", e)
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}

	debug.LogCLI("%d symbols under %s\n", len(syms), cfg.Project.Root)
	return syms, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "navmatch",
		Usage:                  "Navigate-to-symbol fuzzy matching over identifiers",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.ConfigFileName,
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Directory to load symbols from (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Load only files matching glob patterns (e.g., --include '**/*.go')",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Skip files matching glob patterns (e.g., --exclude '**/gen/**')",
			},
			&cli.BoolFlag{
				Name:   "debug-log",
				Usage:  "Write debug output to a temporary log file",
				Hidden: true,
			},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("debug-log") {
				return nil
			}
			path, err := debug.InitDebugLogFile()
			if err != nil {
				return err
			}
			debug.EnableDebug = "true"
			fmt.Fprintf(c.App.ErrWriter, "debug log: %s\n", path)
			return nil
		},
		After: func(c *cli.Context) error {
			return debug.CloseDebugLog()
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Aliases:   []string{"s"},
				Usage:     "Find symbols matching a query such as 'B.Q' or 'add meta'",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"m"},
						Usage:   "Maximum results (0 = unlimited, default from config)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Parallel match workers (default from config)",
					},
					&cli.StringFlag{
						Name:  "empty",
						Usage: "What an empty query returns: none or all (default from config)",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: searchCommand,
			},
			{
				Name:      "spans",
				Usage:     "Show how an identifier is split into spans",
				ArgsUsage: "<identifier>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "words",
						Aliases: []string{"w"},
						Usage:   "Use word spans (acronyms kept together) instead of character spans",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: spansCommand,
			},
			{
				Name:  "version",
				Usage: "Print version, commit and build date",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(c.App.Writer, version.FullInfo())
					return err
				},
			},
			{
				Name:  "symbols",
				Usage: "List the candidate symbols that searches run against",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: symbolsCommand,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
