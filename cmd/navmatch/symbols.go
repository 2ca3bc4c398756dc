package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/standardbeagle/navmatch/internal/debug"
	"github.com/standardbeagle/navmatch/internal/symbols"
	"github.com/standardbeagle/navmatch/pkg/pathutil"

	"github.com/urfave/cli/v2"
)

func symbolsCommand(c *cli.Context) error {
	asJSON := c.Bool("json")
	debug.SetQuietMode(asJSON)

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	syms, err := loadSymbols(c, cfg)
	if err != nil {
		return err
	}
	syms = pathutil.Relativize(syms, cfg.Project.Root, func(s *symbols.Symbol) *string { return &s.Path })

	if asJSON {
		if syms == nil {
			syms = []symbols.Symbol{}
		}
		return json.NewEncoder(c.App.Writer).Encode(syms)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, sym := range syms {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sym.Qualified(), sym.Kind, location(sym))
	}
	return w.Flush()
}
