package sx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sxtools"
)

func TestHeadOfCanonical(t *testing.T) {
	if HeadOf("call") != Call {
		t.Errorf("expected HeadOf(call) to be the pre-defined Call head")
	}
	h := HeadOf("+=")
	if !h.IsOther() || h.Name() != "+=" {
		t.Errorf("expected opaque head for +=, got %v (other=%v)", h, h.IsOther())
	}
	if HeadOf("+=") != h {
		t.Errorf("expected opaque heads to compare by name")
	}
}

func TestHeadIsOverload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	call := E(Call, Sym("f"), Sym("x"))
	if !HeadIs(call, Call) {
		t.Errorf("expected (call f x) to have head call")
	}
	if HeadIs(call, Block, Tuple) {
		t.Errorf("did not expect (call f x) to have head block or tuple")
	}
	if !HeadIs(Sym("x"), Block, SymbolKind) {
		t.Errorf("expected symbol x to match SymbolKind")
	}
	if HeadIs(Int(1), SymbolKind, Call) {
		t.Errorf("did not expect 1 to match SymbolKind or Call")
	}
	if !HeadIs(call, ExprKind) {
		t.Errorf("expected ExprKind to match any compound")
	}
	if HeadIs(nil, Call, SymbolKind) {
		t.Errorf("nil node must not match any shape")
	}
}

func TestLineMarker(t *testing.T) {
	lm := NewLineMarker(sxtools.At("f.sx", 7))
	if !IsLineMarker(lm) {
		t.Fatalf("expected %v to be a line-marker", lm)
	}
	pos, ok := LinePosition(lm)
	if !ok || pos.Line != 7 || pos.File != "f.sx" {
		t.Errorf("expected position f.sx:7, got %v", pos)
	}
	if IsLineMarker(E(Block)) {
		t.Errorf("block is not a line-marker")
	}
}

func TestNamify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	foo := E(Curly, Sym("Foo"), Sym("T"))
	if n := Namify(foo); !Equal(n, Sym("Foo")) {
		t.Errorf("expected Foo, got %v", n)
	}
	sub := E(Subtype, E(Curly, Sym("Base"), Sym("T")), Sym("Vector"))
	if n := Namify(sub); !Equal(n, Sym("Base")) {
		t.Errorf("expected Base, got %v", n)
	}
	if n := Namify(Sym("x")); !Equal(n, Sym("x")) {
		t.Errorf("expected x, got %v", n)
	}
}

func TestNamifyEmptyPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sxtools.sx")
	defer teardown()
	//
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMalformedTree) {
			t.Errorf("expected panic with ErrMalformedTree, got %v", r)
		}
	}()
	Namify(E(Curly, E(Tuple)))
	t.Errorf("expected Namify to panic")
}

func TestEqual(t *testing.T) {
	a := E(Call, Sym("+"), Sym("x"), Int(1))
	b := E(Call, Sym("+"), Sym("x"), Int(1))
	if !Equal(a, b) {
		t.Errorf("expected %v == %v", a, b)
	}
	if Equal(a, E(Call, Sym("+"), Sym("x"), Float(1))) {
		t.Errorf("Int 1 and Float 1 must not be equal")
	}
	if Equal(E(Call), E(Tuple)) {
		t.Errorf("heads differ, expected inequality")
	}
	if !Equal(E(Tuple), &Expr{Head: Tuple, Args: []Node{}}) {
		t.Errorf("empty and nil argument lists should be equal")
	}
	f := func() {}
	if !Equal(FuncRef{Name: "f", Fn: f}, FuncRef{Name: "f", Fn: f}) {
		t.Errorf("expected identical function references to be equal")
	}
	if Equal(FuncRef{Name: "f", Fn: f}, Sym("f")) {
		t.Errorf("function reference is not a symbol")
	}
}

func TestGensym(t *testing.T) {
	g1, g2 := Gensym("tmp"), Gensym("tmp")
	if g1 == g2 {
		t.Errorf("expected distinct gensyms, got %s twice", g1)
	}
	if !strings.Contains(string(g1), GensymMarker) {
		t.Errorf("expected gensym %s to contain marker", g1)
	}
}

func TestPrint(t *testing.T) {
	e := E(Block, NewLineMarker(sxtools.At("f.sx", 1)), E(Assign, Sym("y"), Float(2)), Str("a"))
	expected := `(block (line-marker 1 "f.sx") (= y 2.0) "a")`
	if e.String() != expected {
		t.Errorf("expected %s, got %s", expected, e.String())
	}
	ind := IndentedString(E(Block, E(Call, Sym("f")), Int(1)))
	if ind != "(block\n  (call f)\n  1)" {
		t.Errorf("unexpected indented output:\n%s", ind)
	}
}

func TestPrintEscapes(t *testing.T) {
	cases := []struct {
		n        Node
		expected string
	}{
		{Float(1e21), "1e+21"},
		{Float(1e-7), "1e-07"},
		{Float(-0.5), "-0.5"},
		{Float(math.Inf(1)), "Inf"},
		{Float(math.Inf(-1)), "-Inf"},
		{Float(math.NaN()), "NaN"},
		{Sym("x"), "x"},
		{Sym("##tmp#3"), "##tmp#3"},
		{Sym("nothing"), `#"nothing"`},
		{Sym("true"), `#"true"`},
		{Sym("Inf"), `#"Inf"`},
		{Sym("12"), `#"12"`},
		{Sym("1e5"), `#"1e5"`},
		{Sym("a b"), `#"a b"`},
		{Sym("f(x)"), `#"f(x)"`},
		{Sym(""), `#""`},
		{Sym("tab\there"), `#"tab\there"`},
		{E(HeadOf("false"), Int(1)), `(#"false" 1)`},
	}
	for _, c := range cases {
		if s := c.n.String(); s != c.expected {
			t.Errorf("expected %s, got %s", c.expected, s)
		}
	}
	ind := IndentedString(E(HeadOf("my head"), E(Call, Sym("nothing"))))
	if ind != "(#\"my head\"\n  (call #\"nothing\"))" {
		t.Errorf("unexpected indented output:\n%s", ind)
	}
}

func TestLinePositionOfMalformedMarker(t *testing.T) {
	if _, ok := LinePosition(E(Line)); ok {
		t.Errorf("expected marker without line and file to carry no position")
	}
	if _, ok := LinePosition(E(Line, Sym("x"), Sym("y"))); ok {
		t.Errorf("expected marker with non-literal arguments to carry no position")
	}
	pos, ok := LinePosition(E(Line, Int(7)))
	if !ok || pos.Line != 7 || pos.File != "" {
		t.Errorf("expected position line 7, got %v (%v)", pos, ok)
	}
}
