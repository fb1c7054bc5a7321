package resolver

import "github.com/bayleafwalker/plugdeps/internal/graph"

// Input is the adapter-normalized snapshot the resolver operates on: every
// installed plugin plus the dependency declarations read from its manifest.
//
// The resolver never touches disk; callers build an Input (usually via the
// registry package) and get back a fresh Report.
type Input struct {
	Items []graph.Item
}

// MissingDep is a declared dependency with no installed plugin of that name.
// Marketplace and Source carry what the caller needs to format the
// marketplace-add and install steps.
type MissingDep struct {
	Dependent   string
	Target      string
	Marketplace string
	Source      string
}

// OutdatedDep is an installed dependency whose version fails the declared
// constraint.
type OutdatedDep struct {
	Dependent   string
	Target      string
	Marketplace string
	Installed   string
	Required    string
}

// UnknownDep is a declared constraint against an installed plugin that has
// no recorded version, so the constraint can be neither confirmed nor
// refuted.
type UnknownDep struct {
	Dependent string
	Target    string
	Required  string
}

// InvalidDep is an edge whose constraint text or whose target's installed
// version text failed to parse. The error stays scoped to the edge; the rest
// of the report is unaffected.
type InvalidDep struct {
	Dependent string
	Target    string
	Reason    string
}

// Report is the output of one resolution pass. It is constructed fresh per
// call and never mutated after return.
//
// All slices are ordered by dependent name, then target name; Cycles are in
// canonical rotation and sorted. Two calls on the same snapshot produce
// structurally identical reports.
type Report struct {
	Missing  []MissingDep
	Outdated []OutdatedDep
	Unknown  []UnknownDep
	Invalid  []InvalidDep

	// Cycles lists each dependency cycle once as its member names in order;
	// the closing hop back to the first member is implied.
	Cycles [][]string

	// Tree maps every installed plugin to its declared target names,
	// target-sorted; a plugin declaring nothing maps to an empty list.
	Tree map[string][]string

	// AllSatisfied is true iff Missing and Outdated are both empty. Cycles
	// do not block satisfaction; Unknown and Invalid entries are surfaced
	// separately.
	AllSatisfied bool
}
