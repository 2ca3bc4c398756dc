package symbols

import (
	"errors"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

// goExtractor pulls declarations out of Go source. Containers are the
// package name followed by the receiver or enclosing type.
// Not safe for concurrent use: it owns a single tree-sitter parser.
type goExtractor struct {
	parser *tree_sitter.Parser
}

func newGoExtractor() (*goExtractor, error) {
	parser := tree_sitter.NewParser()
	language := tree_sitter.NewLanguage(tree_sitter_go.Language())
	if err := parser.SetLanguage(language); err != nil {
		parser.Close()
		return nil, err
	}
	return &goExtractor{parser: parser}, nil
}

func (g *goExtractor) Close() {
	g.parser.Close()
}

func (g *goExtractor) Extract(path string, content []byte) ([]Symbol, error) {
	tree := g.parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New("tree-sitter produced no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	var (
		pkg string
		out []Symbol
	)

	add := func(kind Kind, nameNode *tree_sitter.Node, containers ...string) {
		if nameNode == nil {
			return
		}
		chain := make([]string, 0, len(containers)+1)
		if pkg != "" {
			chain = append(chain, pkg)
		}
		chain = append(chain, containers...)
		out = append(out, Symbol{
			Name:       nodeText(nameNode, content),
			Containers: chain,
			Kind:       kind,
			Path:       path,
			Line:       int(nameNode.StartPosition().Row) + 1,
		})
	}

	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		switch node.Kind() {
		case "package_clause":
			if id := firstDescendant(node, "package_identifier"); id != nil {
				pkg = nodeText(id, content)
			}
		case "function_declaration":
			add(KindFunction, node.ChildByFieldName("name"))
		case "method_declaration":
			var receiver []string
			if recv := node.ChildByFieldName("receiver"); recv != nil {
				if typ := firstDescendant(recv, "type_identifier"); typ != nil {
					receiver = append(receiver, nodeText(typ, content))
				}
			}
			add(KindMethod, node.ChildByFieldName("name"), receiver...)
		case "type_declaration":
			for _, spec := range descendants(node, "type_spec", "type_alias") {
				nameNode := spec.ChildByFieldName("name")
				add(KindType, nameNode)
				if nameNode == nil {
					continue
				}
				typeName := nodeText(nameNode, content)
				if body := spec.ChildByFieldName("type"); body != nil {
					for _, member := range descendants(body, "field_declaration", "method_elem", "method_spec") {
						for _, id := range namedChildrenOfKind(member, "field_identifier") {
							add(KindField, id, typeName)
						}
					}
				}
			}
		case "const_declaration":
			for _, spec := range descendants(node, "const_spec") {
				for _, id := range namedChildrenOfKind(spec, "identifier") {
					add(KindConst, id)
				}
			}
		case "var_declaration":
			for _, spec := range descendants(node, "var_spec") {
				for _, id := range namedChildrenOfKind(spec, "identifier") {
					add(KindVar, id)
				}
			}
		}
	}

	return out, nil
}

func nodeText(n *tree_sitter.Node, content []byte) string {
	return string(content[n.StartByte():n.EndByte()])
}

func namedChildrenOfKind(n *tree_sitter.Node, kind string) []*tree_sitter.Node {
	var out []*tree_sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child != nil && child.Kind() == kind {
			out = append(out, child)
		}
	}
	return out
}

// descendants returns the outermost nodes below n whose kind is in kinds,
// without descending into a match.
func descendants(n *tree_sitter.Node, kinds ...string) []*tree_sitter.Node {
	var out []*tree_sitter.Node
	var walk func(node *tree_sitter.Node)
	walk = func(node *tree_sitter.Node) {
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child == nil {
				continue
			}
			if kindIn(child.Kind(), kinds) {
				out = append(out, child)
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return out
}

func firstDescendant(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		if child.Kind() == kind {
			return child
		}
		if found := firstDescendant(child, kind); found != nil {
			return found
		}
	}
	return nil
}

func kindIn(kind string, kinds []string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
