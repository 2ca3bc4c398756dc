package search

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/navmatch/internal/config"
	"github.com/standardbeagle/navmatch/internal/debug"
	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
	"github.com/standardbeagle/navmatch/internal/symbols"
	"github.com/standardbeagle/navmatch/pkg/patternmatch"
)

// cancelCheckInterval is how many candidates a worker scans between
// context checks
const cancelCheckInterval = 1024

// Options configures an Engine
type Options struct {
	Workers        int    // 0 = NumCPU
	CacheSize      int    // compiled patterns kept
	EmptyPattern   string // config.EmptyPatternNone or config.EmptyPatternAll
	RankSimilarity bool
}

// OptionsFromConfig maps the search section of a config onto engine options
func OptionsFromConfig(cfg config.Search) Options {
	return Options{
		Workers:        cfg.Workers,
		CacheSize:      cfg.CacheSize,
		EmptyPattern:   cfg.EmptyPattern,
		RankSimilarity: cfg.RankSimilarity,
	}
}

// Result is one ranked candidate. Matched is false only for results listed
// because an empty query was configured to return everything.
type Result struct {
	Symbol     symbols.Symbol         `json:"symbol"`
	Match      patternmatch.MatchInfo `json:"-"`
	Kind       string                 `json:"kind,omitempty"`
	Matched    bool                   `json:"matched"`
	Similarity float64                `json:"similarity,omitempty"`
}

// Engine runs queries over a fixed candidate set. It is safe for
// concurrent use.
type Engine struct {
	symbols []symbols.Symbol
	cache   *PatternCache
	opts    Options
}

// NewEngine creates an engine over syms. The slice is not copied and must
// not be modified while the engine is in use.
func NewEngine(syms []symbols.Symbol, opts Options) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.EmptyPattern == "" {
		opts.EmptyPattern = config.EmptyPatternNone
	}
	return &Engine{
		symbols: syms,
		cache:   NewPatternCache(opts.CacheSize),
		opts:    opts,
	}
}

// Len returns the number of candidates
func (e *Engine) Len() int {
	return len(e.symbols)
}

// Search matches query against every candidate and returns the matches
// best first, at most maxResults of them (0 = no limit).
func (e *Engine) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	pattern, err := e.cache.Compile(query)
	if errors.Is(err, patternmatch.ErrEmptyPattern) {
		debug.LogSearch("empty query %q, policy %s\n", query, e.opts.EmptyPattern)
		if e.opts.EmptyPattern == config.EmptyPatternAll {
			return e.listAll(maxResults), nil
		}
		return nil, nil
	}
	if err != nil {
		return nil, nmerrors.NewSearchError(query, err)
	}

	results, err := e.scan(ctx, pattern)
	if err != nil {
		return nil, nmerrors.NewSearchError(query, err)
	}

	if e.opts.RankSimilarity {
		name := lowerName(pattern)
		for i := range results {
			results[i].Similarity = similarity(name, results[i].Symbol.Name)
		}
	}
	sortResults(results)

	debug.LogSearch("query %q matched %d of %d candidates\n", query, len(results), len(e.symbols))
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// scan partitions the candidates into one contiguous slice per worker
func (e *Engine) scan(ctx context.Context, pattern *patternmatch.Pattern) ([]Result, error) {
	workers := e.opts.Workers
	if workers > len(e.symbols) {
		workers = len(e.symbols)
	}
	if workers == 0 {
		return nil, ctx.Err()
	}

	chunk := (len(e.symbols) + workers - 1) / workers
	partials := make([][]Result, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(e.symbols) {
			end = len(e.symbols)
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			var found []Result
			for i, sym := range e.symbols[start:end] {
				if i%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				m, ok := pattern.MatchQualified(sym.Containers, sym.Name)
				if !ok {
					continue
				}
				found = append(found, Result{Symbol: sym, Match: m, Kind: m.String(), Matched: true})
			}
			partials[w] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, p := range partials {
		results = append(results, p...)
	}
	return results, nil
}

func (e *Engine) listAll(maxResults int) []Result {
	n := len(e.symbols)
	if maxResults > 0 && n > maxResults {
		n = maxResults
	}
	out := make([]Result, n)
	for i := 0; i < n; i++ {
		out[i] = Result{Symbol: e.symbols[i]}
	}
	return out
}

// sortResults orders by match kind, then case sensitivity, then similarity,
// then qualified name so output is deterministic across worker counts.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Match.Better(b.Match) {
			return true
		}
		if b.Match.Better(a.Match) {
			return false
		}
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		qa, qb := a.Symbol.Qualified(), b.Symbol.Qualified()
		if qa != qb {
			return qa < qb
		}
		return a.Symbol.Path < b.Symbol.Path
	})
}

// lowerName joins the name segment's words, e.g. "add metadata" -> "addmetadata"
func lowerName(p *patternmatch.Pattern) string {
	var b strings.Builder
	for _, sp := range p.NameSegment().SubPatterns() {
		b.WriteString(strings.ToLower(sp.Text()))
	}
	return b.String()
}

func similarity(query, name string) float64 {
	score, err := edlib.StringsSimilarity(query, strings.ToLower(name), edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(score)
}
