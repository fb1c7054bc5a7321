package graph

import (
	"sort"
	"strings"
)

type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

// DetectCycles finds every directed cycle in the graph, marks the edges that
// participate in one, and returns the cycles as ordered node-name lists.
//
// The traversal is a three-state depth-first search started from every node
// in lexical order, so all cycles are found no matter which nodes happen to
// be roots. Each cycle is reported once, rotated to start at its lexically
// smallest member, and the returned list is sorted for stable output.
// Traversal continues past a detected cycle; acyclic regions are unaffected.
func (g *Graph) DetectCycles() [][]string {
	state := make(map[string]visitState, len(g.order))
	seen := make(map[string]bool)
	var cycles [][]string
	var path []string

	var walk func(name string)
	walk = func(name string) {
		state[name] = inProgress
		path = append(path, name)

		for _, e := range g.out[name] {
			switch state[e.Target] {
			case inProgress:
				start := 0
				for i, n := range path {
					if n == e.Target {
						start = i
						break
					}
				}
				cycle := canonical(path[start:])
				key := strings.Join(cycle, "\x00")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			case unvisited:
				walk(e.Target)
			}
		}

		path = path[:len(path)-1]
		state[name] = done
	}

	for _, name := range g.order {
		if state[name] == unvisited {
			walk(name)
		}
	}

	for _, cycle := range cycles {
		g.markCycle(cycle)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], "\x00") < strings.Join(cycles[j], "\x00")
	})
	return cycles
}

// canonical rotates a cycle so its lexically smallest member comes first,
// making rotations of the same cycle compare equal.
func canonical(cycle []string) []string {
	min := 0
	for i, n := range cycle {
		if n < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}

func (g *Graph) markCycle(cycle []string) {
	for i, from := range cycle {
		to := cycle[(i+1)%len(cycle)]
		for _, e := range g.out[from] {
			if e.Target == to {
				e.Cyclic = true
			}
		}
	}
}
