package config

import (
	"fmt"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/navmatch/internal/debug"
)

// parseKDL reads a .navmatch.kdl document on top of the defaults for dir
//
//	project { root "."; name "demo" }
//	sources {
//	    include "**/*.go" "symbols/*.toml"
//	    exclude "**/gen/**"
//	}
//	search { max_results 20; workers 4; empty_pattern "all" }
func parseKDL(content, dir string) (*Config, error) {
	cfg := Default(dir)

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "sources":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "include":
					cfg.Sources.Include = collectStringArgs(cn)
				case "exclude":
					// Project exclusions add to the defaults
					cfg.Sources.Exclude = append(cfg.Sources.Exclude, collectStringArgs(cn)...)
				}
			}
		case "search":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Search.MaxResults = v
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Search.Workers = v
					}
				case "empty_pattern":
					if s, ok := firstStringArg(cn); ok {
						cfg.Search.EmptyPattern = s
					}
				case "cache_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Search.CacheSize = v
					}
				case "rank_similarity":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Search.RankSimilarity = b
					}
				default:
					debug.LogCLI("ignoring unknown search option %q\n", nodeName(cn))
				}
			}
		default:
			debug.LogCLI("ignoring unknown config section %q\n", nodeName(n))
		}
	}

	if !filepath.IsAbs(cfg.Project.Root) {
		cfg.Project.Root = filepath.Clean(filepath.Join(dir, cfg.Project.Root))
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

// collectStringArgs accepts both the inline form (include "a" "b") and the
// block form (include { "a"; "b" }).
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
