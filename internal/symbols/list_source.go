package symbols

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	nmerrors "github.com/standardbeagle/navmatch/internal/errors"
)

// symbolTable is the layout of a .toml symbol file:
//
//	[[symbol]]
//	name = "Quux"
//	containers = ["Foo", "Bar", "Baz"]
//	kind = "class"
type symbolTable struct {
	Symbol []Symbol `toml:"symbol"`
}

func parseTOML(path string, content []byte) ([]Symbol, error) {
	var table symbolTable
	if err := toml.Unmarshal(content, &table); err != nil {
		return nil, nmerrors.NewParseError(path, 0, err)
	}

	out := make([]Symbol, 0, len(table.Symbol))
	for i, sym := range table.Symbol {
		if sym.Name == "" {
			return nil, nmerrors.NewParseError(path, 0, fmt.Errorf("symbol #%d has no name", i+1))
		}
		if sym.Kind == "" {
			sym.Kind = KindSymbol
		}
		sym.Path = path
		out = append(out, sym)
	}
	return out, nil
}

// parseList reads one dotted name per line. Blank lines and lines starting
// with '#' are skipped.
func parseList(path string, content []byte) ([]Symbol, error) {
	var out []Symbol
	scanner := bufio.NewScanner(bytes.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.HasPrefix(text, ".") || strings.HasSuffix(text, ".") || strings.Contains(text, "..") {
			return nil, nmerrors.NewParseError(path, line, fmt.Errorf("malformed qualified name %q", text))
		}
		sym := ParseQualified(text)
		sym.Path = path
		sym.Line = line
		out = append(out, sym)
	}
	if err := scanner.Err(); err != nil {
		return nil, nmerrors.NewParseError(path, line, err)
	}
	return out, nil
}
