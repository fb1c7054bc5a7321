package resolver

import "github.com/bayleafwalker/plugdeps/internal/graph"

// RenderTree renders the whole dependency graph as indented lines, one node
// per line, via pre-order depth-first traversal.
//
// Traversal starts from every node with no incoming edges, then from any
// node still unrendered in lexical order, so detached cycle components (where
// every member has an incoming edge) are covered too. A node that was
// already rendered earlier in the call is printed once more as a leaf
// annotated "cycle" rather than re-expanded, which keeps the output finite.
func RenderTree(in Input) []string {
	g := graph.Build(in.Items)

	starts := append(g.Roots(), g.Names()...)

	rendered := make(map[string]bool, len(g.Names()))
	var lines []string

	var walk func(name, indent, connector string, depth int)
	walk = func(name, indent, connector string, depth int) {
		label := name + " (" + nodeStatus(g.Node(name)) + ")"
		if rendered[name] {
			if depth > 0 {
				lines = append(lines, indent+connector+label+" (cycle)")
			}
			return
		}
		rendered[name] = true
		lines = append(lines, indent+connector+label)

		edges := g.EdgesFrom(name)
		childIndent := indent
		if depth > 0 {
			childIndent += "    "
		}
		for i, e := range edges {
			conn := "├── "
			if i == len(edges)-1 {
				conn = "└── "
			}
			walk(e.Target, childIndent, conn, depth+1)
		}
	}

	for _, name := range starts {
		walk(name, "", "", 0)
	}
	return lines
}

func nodeStatus(n *graph.Node) string {
	if n != nil && n.Installed {
		return "installed"
	}
	return "MISSING"
}
