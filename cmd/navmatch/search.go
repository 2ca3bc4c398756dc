package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/standardbeagle/navmatch/internal/debug"
	"github.com/standardbeagle/navmatch/internal/search"
	"github.com/standardbeagle/navmatch/internal/symbols"
	"github.com/standardbeagle/navmatch/pkg/pathutil"

	"github.com/urfave/cli/v2"
)

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: navmatch search <query>")
	}
	query := strings.Join(c.Args().Slice(), " ")
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

	engine := search.NewEngine(syms, search.OptionsFromConfig(cfg.Search))
	results, err := engine.Search(c.Context, query, cfg.Search.MaxResults)
	if err != nil {
		return err
	}
	results = pathutil.Relativize(results, cfg.Project.Root, func(r *search.Result) *string { return &r.Symbol.Path })

	if asJSON {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []search.Result{}
		}
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(c.App.Writer, "no symbols match %q\n", query)
		return nil
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, r := range results {
		kind := r.Kind
		if !r.Matched {
			kind = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", kind, r.Symbol.Qualified(), r.Symbol.Kind, location(r.Symbol))
	}
	return w.Flush()
}

func location(sym symbols.Symbol) string {
	if sym.Path == "" {
		return ""
	}
	if sym.Line > 0 {
		return fmt.Sprintf("%s:%d", sym.Path, sym.Line)
	}
	return sym.Path
}
