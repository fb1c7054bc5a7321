package resolver

import (
	"context"

	"github.com/bayleafwalker/plugdeps/internal/graph"
	"github.com/bayleafwalker/plugdeps/internal/semver"
)

// DefaultResolver is the standard implementation wired into the CLI.
type DefaultResolver struct{}

func NewDefault() *DefaultResolver {
	return &DefaultResolver{}
}

// Resolve builds the dependency graph from the snapshot, detects cycles, and
// classifies every non-cyclic edge as satisfied, missing, outdated, unknown,
// or invalid.
//
// Classification per edge, in order:
//  1. edges on a reported cycle are withheld from classification entirely;
//  2. a target with no installed plugin is missing;
//  3. an unparseable constraint, or an unparseable installed version under a
//     constraint, makes the edge invalid (scoped to that edge);
//  4. an absent constraint is satisfied by whatever is installed;
//  5. an installed target with no recorded version cannot be checked against
//     a constraint and is reported as unknown;
//  6. otherwise the installed version either satisfies the constraint or the
//     edge is outdated.
func (r *DefaultResolver) Resolve(ctx context.Context, in Input) (Report, error) {
	_ = ctx

	g := graph.Build(in.Items)
	cycles := g.DetectCycles()

	rep := Report{
		Cycles: cycles,
		Tree:   make(map[string][]string),
	}

	// Every installed plugin gets a tree entry, empty when it declares
	// nothing; declaration-only targets stay out.
	for _, name := range g.Names() {
		if !g.Node(name).Installed {
			continue
		}
		edges := g.EdgesFrom(name)
		targets := make([]string, 0, len(edges))
		for _, e := range edges {
			targets = append(targets, e.Target)
		}
		rep.Tree[name] = targets
	}

	// Edges() is sorted by (dependent, target), so every bucket below comes
	// out in that order without further sorting.
	for _, e := range g.Edges() {
		if e.Cyclic {
			continue
		}

		target := g.Node(e.Target)
		if target == nil || !target.Installed {
			rep.Missing = append(rep.Missing, MissingDep{
				Dependent:   e.Dependent,
				Target:      e.Target,
				Marketplace: e.Decl.Marketplace,
				Source:      e.Decl.Source,
			})
			continue
		}

		if e.Decl.Constraint == "" {
			continue
		}

		c, err := semver.ParseConstraint(e.Decl.Constraint)
		if err != nil {
			rep.Invalid = append(rep.Invalid, InvalidDep{Dependent: e.Dependent, Target: e.Target, Reason: err.Error()})
			continue
		}

		if target.Version == "" {
			rep.Unknown = append(rep.Unknown, UnknownDep{Dependent: e.Dependent, Target: e.Target, Required: e.Decl.Constraint})
			continue
		}

		v, err := semver.ParseVersion(target.Version)
		if err != nil {
			rep.Invalid = append(rep.Invalid, InvalidDep{Dependent: e.Dependent, Target: e.Target, Reason: err.Error()})
			continue
		}

		if !semver.Satisfies(v, c) {
			rep.Outdated = append(rep.Outdated, OutdatedDep{
				Dependent:   e.Dependent,
				Target:      e.Target,
				Marketplace: e.Decl.Marketplace,
				Installed:   target.Version,
				Required:    e.Decl.Constraint,
			})
		}
	}

	rep.AllSatisfied = len(rep.Missing) == 0 && len(rep.Outdated) == 0
	return rep, nil
}
