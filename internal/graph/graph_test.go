package graph

import (
	"reflect"
	"testing"
)

func item(name string, installed bool, version string, decls ...RawDeclaration) Item {
	return Item{Name: name, Installed: installed, Version: version, Declarations: decls}
}

func shorthand(target, alias string) RawDeclaration {
	return RawDeclaration{Target: target, Alias: alias}
}

func structured(target, marketplace, source, constraint string) RawDeclaration {
	return RawDeclaration{Target: target, Spec: &DeclarationSpec{Marketplace: marketplace, Source: source, Version: constraint}}
}

func TestBuildNodeSetIsUnionOfItemsAndTargets(t *testing.T) {
	g := Build([]Item{
		item("a", true, "1.0.0", structured("b", "mp", "", "^1.0.0")),
		item("c", true, "2.0.0"),
	})

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(g.Names(), want) {
		t.Fatalf("expected nodes %v, got %v", want, g.Names())
	}
	if g.Node("b").Installed {
		t.Fatalf("declaration-only target should not be installed")
	}
	if !g.Node("a").Installed || g.Node("a").Version != "1.0.0" {
		t.Fatalf("installed node lost its snapshot data: %+v", g.Node("a"))
	}
}

func TestBuildNormalizesShorthand(t *testing.T) {
	g := Build([]Item{item("a", true, "", shorthand("b", "some-marketplace"))})

	edges := g.EdgesFrom("a")
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	d := edges[0].Decl
	if d.Marketplace != "some-marketplace" || d.Source != "" || d.Constraint != "" {
		t.Fatalf("shorthand normalized wrong: %+v", d)
	}
}

func TestBuildLastWriteWinsPerTarget(t *testing.T) {
	g := Build([]Item{item("a", true, "",
		structured("b", "first", "", "^1.0.0"),
		structured("b", "second", "", "^2.0.0"),
	)})

	edges := g.EdgesFrom("a")
	if len(edges) != 1 {
		t.Fatalf("expected redeclaration to overwrite, got %d edges", len(edges))
	}
	if edges[0].Decl.Marketplace != "second" || edges[0].Decl.Constraint != "^2.0.0" {
		t.Fatalf("expected last declaration to win: %+v", edges[0].Decl)
	}
}

func TestBuildDropsSelfReference(t *testing.T) {
	g := Build([]Item{item("a", true, "", shorthand("a", "mp"), shorthand("b", "mp"))})
	if len(g.EdgesFrom("a")) != 1 {
		t.Fatalf("self-reference should be dropped, got %d edges", len(g.EdgesFrom("a")))
	}
}

func TestEdgesSortedByDependentThenTarget(t *testing.T) {
	g := Build([]Item{
		item("z", true, "", shorthand("b", "mp"), shorthand("a", "mp")),
		item("m", true, "", shorthand("z", "mp")),
	})

	var got [][2]string
	for _, e := range g.Edges() {
		got = append(got, [2]string{e.Dependent, e.Target})
	}
	want := [][2]string{{"m", "z"}, {"z", "a"}, {"z", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected edge order %v, got %v", want, got)
	}
}

func TestRoots(t *testing.T) {
	g := Build([]Item{
		item("a", true, "", shorthand("b", "mp")),
		item("b", true, ""),
		item("lone", true, ""),
	})
	want := []string{"a", "lone"}
	if !reflect.DeepEqual(g.Roots(), want) {
		t.Fatalf("expected roots %v, got %v", want, g.Roots())
	}
}
