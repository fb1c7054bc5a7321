package graph

import "sort"

// Item is one entry in the snapshot the graph is built from: an installed
// plugin (or a bare declaration target) plus the dependency declarations it
// makes.
type Item struct {
	Name        string
	Installed   bool
	Version     string // raw version text; empty when none recorded
	Marketplace string

	Declarations []RawDeclaration
}

// RawDeclaration is one unnormalized dependency entry as it appears in a
// manifest: either the bare marketplace-alias shorthand or the structured
// form. Exactly one of Alias and Spec is set.
type RawDeclaration struct {
	Target string
	Alias  string
	Spec   *DeclarationSpec
}

// DeclarationSpec is the structured declaration form.
type DeclarationSpec struct {
	Marketplace string
	Source      string // optional "owner/repo"
	Version     string // optional constraint text
}

// Declaration is the normalized form every raw entry reduces to.
// Constraint text is carried verbatim; it is parsed at evaluation time so a
// bad constraint surfaces as an edge-level problem, not a build failure.
type Declaration struct {
	Target      string
	Marketplace string
	Source      string
	Constraint  string
}

// Node is a named vertex: an installed plugin or a declared target that is
// not installed.
type Node struct {
	Name        string
	Installed   bool
	Version     string
	Marketplace string
}

// Edge is a directed dependency: Dependent declares that it requires Target.
type Edge struct {
	Dependent string
	Target    string
	Decl      Declaration

	// Cyclic is set by DetectCycles for edges on a reported cycle.
	Cyclic bool
}

// Graph is a directed dependency graph over named nodes. All accessors
// return nodes and edges in lexical order so downstream output is
// deterministic regardless of map iteration.
type Graph struct {
	nodes map[string]*Node
	order []string
	out   map[string][]*Edge
}

// Build constructs a Graph from a snapshot. The node set is the union of all
// item names and all declaration targets. A dependent redeclaring the same
// target overwrites the earlier declaration; self-references are dropped.
func Build(items []Item) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string][]*Edge),
	}

	for _, it := range items {
		g.nodes[it.Name] = &Node{
			Name:        it.Name,
			Installed:   it.Installed,
			Version:     it.Version,
			Marketplace: it.Marketplace,
		}
	}

	// Last write wins per (dependent, target).
	byTarget := make(map[string]map[string]*Edge)
	for _, it := range items {
		for _, raw := range it.Declarations {
			if raw.Target == it.Name {
				continue
			}
			decl := normalize(raw)
			if _, ok := g.nodes[decl.Target]; !ok {
				g.nodes[decl.Target] = &Node{Name: decl.Target}
			}
			m := byTarget[it.Name]
			if m == nil {
				m = make(map[string]*Edge)
				byTarget[it.Name] = m
			}
			m[decl.Target] = &Edge{Dependent: it.Name, Target: decl.Target, Decl: decl}
		}
	}

	g.order = make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		g.order = append(g.order, name)
	}
	sort.Strings(g.order)

	for dependent, m := range byTarget {
		edges := make([]*Edge, 0, len(m))
		for _, e := range m {
			edges = append(edges, e)
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].Target < edges[j].Target })
		g.out[dependent] = edges
	}

	return g
}

func normalize(raw RawDeclaration) Declaration {
	if raw.Spec != nil {
		return Declaration{
			Target:      raw.Target,
			Marketplace: raw.Spec.Marketplace,
			Source:      raw.Spec.Source,
			Constraint:  raw.Spec.Version,
		}
	}
	return Declaration{Target: raw.Target, Marketplace: raw.Alias}
}

// Node returns the named node, or nil.
func (g *Graph) Node(name string) *Node { return g.nodes[name] }

// Names returns every node name in lexical order.
func (g *Graph) Names() []string { return g.order }

// EdgesFrom returns the outgoing edges of name, target-sorted.
func (g *Graph) EdgesFrom(name string) []*Edge { return g.out[name] }

// Edges returns every edge sorted by dependent name, then target name.
func (g *Graph) Edges() []*Edge {
	var all []*Edge
	for _, name := range g.order {
		all = append(all, g.out[name]...)
	}
	return all
}

// Roots returns the nodes with no incoming edges, in lexical order.
func (g *Graph) Roots() []string {
	incoming := make(map[string]bool)
	for _, edges := range g.out {
		for _, e := range edges {
			incoming[e.Target] = true
		}
	}
	var roots []string
	for _, name := range g.order {
		if !incoming[name] {
			roots = append(roots, name)
		}
	}
	return roots
}
