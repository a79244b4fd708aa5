package fp

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/sxlang"
)

func TestPostwalkSeesRewrittenChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	tree := sxlang.MustParse(`(call + 1 (call * 2 3))`)
	var visited []string
	r := Postwalk(func(n sx.Node) sx.Node {
		visited = append(visited, n.String())
		if i, ok := n.(sx.Int); ok {
			return i * 10
		}
		return n
	}, tree)
	expected := `(call + 10 (call * 20 30))`
	if r.String() != expected {
		t.Errorf("expected %s, got %s", expected, r)
	}
	order := strings.Join(visited, " ")
	if order != "+ 1 * 2 3 (call * 20 30) (call + 10 (call * 20 30))" {
		t.Errorf("unexpected visiting order: %s", order)
	}
	if tree.String() != `(call + 1 (call * 2 3))` {
		t.Errorf("input tree has been modified: %s", tree)
	}
}

func TestPrewalkDescendsIntoResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	f := func(n sx.Node) sx.Node {
		switch n {
		case sx.Sym("a"):
			return sx.E(sx.Call, sx.Sym("b"), sx.Sym("c"))
		case sx.Sym("b"):
			return sx.Sym("d")
		}
		return n
	}
	tree := sxlang.MustParse(`(tuple a)`)
	if r := Prewalk(f, tree); r.String() != `(tuple (call d c))` {
		t.Errorf("prewalk: expected (tuple (call d c)), got %s", r)
	}
	if r := Postwalk(f, tree); r.String() != `(tuple (call b c))` {
		t.Errorf("postwalk: expected (tuple (call b c)), got %s", r)
	}
}

func TestWalkIsGenericOverHeads(t *testing.T) {
	tree := sxlang.MustParse(`(frobnicate (whatever x) y)`)
	r := Postwalk(Identity, tree)
	if !sx.Equal(r, tree) {
		t.Errorf("expected identity walk to preserve %s, got %s", tree, r)
	}
	if e, _ := sx.AsExpr(r); !e.Head.IsOther() || e.Head.Name() != "frobnicate" {
		t.Errorf("expected opaque head to survive the walk, got %v", e.Head)
	}
}

func TestPrewalkEStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	boom := errors.New("boom")
	tree := sxlang.MustParse(`(block x (call y z))`)
	calls := 0
	r, err := PrewalkE(func(n sx.Node) (sx.Node, error) {
		calls++
		if n == sx.Sym("y") {
			return nil, boom
		}
		return n, nil
	}, tree)
	if !errors.Is(err, boom) {
		t.Fatalf("expected error boom, got %v", err)
	}
	if !sx.Equal(r, tree) {
		t.Errorf("expected input tree to be returned on error, got %v", r)
	}
	if calls != 4 { // block, x, call, y
		t.Errorf("expected walk to stop after 4 calls, got %d", calls)
	}
}

func TestPostwalkE(t *testing.T) {
	tree := sxlang.MustParse(`(call f x)`)
	r, err := PostwalkE(func(n sx.Node) (sx.Node, error) {
		if n == sx.Sym("x") {
			return sx.Sym("y"), nil
		}
		return n, nil
	}, tree)
	if err != nil || r.String() != `(call f y)` {
		t.Errorf("expected (call f y), got %v (err=%v)", r, err)
	}
}

func TestTraverseDepthFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	tree := sxlang.MustParse(`(call f (call g x y) (call h z))`)
	nodes := Traverse(tree, DepthFirstDir).Map(Print()).List()
	var s []string
	for _, n := range nodes {
		s = append(s, n.String())
	}
	expected := "f g x y (call g x y) h z (call h z) (call f (call g x y) (call h z))"
	if strings.Join(s, " ") != expected {
		t.Errorf("expected %s, got %s", expected, strings.Join(s, " "))
	}
}

func TestTraverseTopDown(t *testing.T) {
	tree := sxlang.MustParse(`(call f (call g x) y)`)
	var s []string
	for node, S := Traverse(tree, TopDownDir).First(); !S.Done(); node = S.Next() {
		s = append(s, node.String())
		if node.Parent != nil && node.Parent.Args[node.Index] != node.Node {
			t.Errorf("parent/index inconsistent for %s", node)
		}
	}
	expected := "(call f (call g x) y) f (call g x) g x y"
	if strings.Join(s, " ") != expected {
		t.Errorf("expected %s, got %s", expected, strings.Join(s, " "))
	}
}

func TestTraverseWhereLeaves(t *testing.T) {
	tree := sxlang.MustParse(`(block (= x 1) (call f x "s"))`)
	leaves := Traverse(tree, TopDownDir).Where(IsLeaf()).List()
	if len(leaves) != 5 {
		t.Errorf("expected 5 leaves, got %d: %v", len(leaves), leaves)
	}
	calls := Traverse(tree, DepthFirstDir).Where(HasShape(sx.Call)).List()
	if len(calls) != 1 {
		t.Errorf("expected 1 call, got %d", len(calls))
	}
}

func TestTraverseBreak(t *testing.T) {
	tree := sxlang.MustParse(`(tuple a b c d)`)
	count := 0
	for _, S := Traverse(tree, TopDownDir).First(); !S.Done(); S.Next() {
		count++
		if count == 2 {
			S.Break()
		}
	}
	if count != 2 {
		t.Errorf("expected traversal to stop after 2 nodes, got %d", count)
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	tree := sxlang.MustParse(`(block (= y (call + x 1)) (return y))`)
	if !Contains(tree, sxlang.MustParse(`(call + x 1)`)) {
		t.Errorf("expected tree to contain (call + x 1)")
	}
	if !Contains(tree, tree) {
		t.Errorf("expected tree to contain itself")
	}
	if Contains(tree, sx.Sym("z")) {
		t.Errorf("did not expect tree to contain z")
	}
}

func TestReplaceIsNotRescanned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	tree := sxlang.MustParse(`(call + x (call * x 2))`)
	to := sxlang.MustParse(`(call f x)`)
	r := Replace(tree, sx.Sym("x"), to)
	expected := `(call + (call f x) (call * (call f x) 2))`
	if r.String() != expected {
		t.Errorf("expected %s, got %s", expected, r)
	}
	if !Contains(r, to) {
		t.Errorf("expected substitution to be observable")
	}
	if Contains(Replace(tree, sx.Sym("x"), sx.Sym("w")), sx.Sym("x")) {
		t.Errorf("expected all occurrences of x to be replaced")
	}
}
