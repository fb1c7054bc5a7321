package resolver

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bayleafwalker/plugdeps/internal/graph"
)

func TestRenderTreeBasic(t *testing.T) {
	lines := RenderTree(Input{Items: []graph.Item{
		installed("app", "1.0.0", requires("lib", "mp", ""), requires("gone", "mp", "")),
		installed("lib", "1.0.0", requires("core", "mp", "")),
		installed("core", "1.0.0"),
	}})

	want := []string{
		"app (installed)",
		"├── gone (MISSING)",
		"└── lib (installed)",
		"    └── core (installed)",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected tree:\ngot:  %q\nwant: %q", lines, want)
	}
}

func TestRenderTreeCycleAnnotatedOnce(t *testing.T) {
	lines := RenderTree(Input{Items: []graph.Item{
		installed("root", "1.0.0", requires("a", "mp", "")),
		installed("a", "1.0.0", requires("b", "mp", "")),
		installed("b", "1.0.0", requires("a", "mp", "")),
	}})

	want := []string{
		"root (installed)",
		"└── a (installed)",
		"    └── b (installed)",
		"        └── a (installed) (cycle)",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected tree:\ngot:  %q\nwant: %q", lines, want)
	}
}

func TestRenderTreeFullyCyclicStillCovered(t *testing.T) {
	lines := RenderTree(Input{Items: []graph.Item{
		installed("a", "1.0.0", requires("b", "mp", "")),
		installed("b", "1.0.0", requires("a", "mp", "")),
	}})

	// No roots exist, so traversal starts from every node; already rendered
	// starts are skipped rather than repeated.
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if lines[0] != "a (installed)" {
		t.Fatalf("expected traversal to start at lexically first node, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "(cycle)") {
		t.Fatalf("expected the closing hop annotated as cycle, got %q", lines[2])
	}
}

func TestRenderTreeDetachedCycleCovered(t *testing.T) {
	// p and q both have incoming edges, so neither is a root; the component
	// must still show up after the rooted part of the graph.
	lines := RenderTree(Input{Items: []graph.Item{
		installed("r", "1.0.0", requires("x", "mp", "")),
		installed("x", "1.0.0"),
		installed("p", "1.0.0", requires("q", "mp", "")),
		installed("q", "1.0.0", requires("p", "mp", "")),
	}})

	want := []string{
		"r (installed)",
		"└── x (installed)",
		"p (installed)",
		"└── q (installed)",
		"    └── p (installed) (cycle)",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected tree:\ngot:  %q\nwant: %q", lines, want)
	}
}

func TestRenderTreeIsolatedNodesListed(t *testing.T) {
	lines := RenderTree(Input{Items: []graph.Item{
		installed("solo", "1.0.0"),
		installed("app", "1.0.0", requires("solo2", "mp", "")),
	}})

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "solo (installed)") {
		t.Fatalf("isolated node missing from tree: %q", lines)
	}
}
