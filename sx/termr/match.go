package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
)

type binding struct {
	node  sx.Node
	seq   []sx.Node
	isSeq bool
}

// Bindings maps pattern variables to the sub-trees they matched.
type Bindings map[string]binding

// Node returns the node bound to variable name, or nil.
func (b Bindings) Node(name string) sx.Node {
	return b[name].node
}

// Seq returns the sequence of nodes bound to splat variable name. If name is bound
// to a single node, a sequence of length 1 is returned.
func (b Bindings) Seq(name string) []sx.Node {
	bnd, ok := b[name]
	if !ok {
		return nil
	}
	if !bnd.isSeq {
		return []sx.Node{bnd.node}
	}
	return bnd.seq
}

// Has is true if variable name is bound.
func (b Bindings) Has(name string) bool {
	_, ok := b[name]
	return ok
}

func (b Bindings) clone() Bindings {
	c := make(Bindings, len(b)+1)
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Match matches a node against a pattern. If the match succeeds, it returns the
// bindings of all pattern variables.
func Match(n sx.Node, p *Pattern) (Bindings, bool) {
	return match(n, p, Bindings{})
}

// Matches is a predicate, true if n matches p.
func (p *Pattern) Matches(n sx.Node) bool {
	_, ok := Match(n, p)
	return ok
}

func match(n sx.Node, p *Pattern, b Bindings) (Bindings, bool) {
	if n == nil {
		return nil, false
	}
	switch p.typ {
	case anythingPat:
		return b, true
	case literalPat:
		return b, sx.Equal(n, p.lit)
	case varPat:
		if len(p.shapes) > 0 && !sx.HeadIs(n, p.shapes...) {
			return nil, false
		}
		return bind(b, p.name, binding{node: n})
	case exprPat:
		e, ok := sx.AsExpr(n, p.head)
		if !ok {
			return nil, false
		}
		return matchSeq(e.Args, p.args, b)
	}
	return nil, false // splat outside of a sequence
}

// matchSeq matches a sequence of children against a sequence of patterns,
// backtracking over the possible lengths of splat variables.
func matchSeq(nodes []sx.Node, pats []*Pattern, b Bindings) (Bindings, bool) {
	if len(pats) == 0 {
		return b, len(nodes) == 0
	}
	p := pats[0]
	if p.typ == splatPat {
		for k := 0; k <= len(nodes); k++ {
			seq := make([]sx.Node, k)
			copy(seq, nodes[:k])
			nb, ok := bind(b.clone(), p.name, binding{seq: seq, isSeq: true})
			if !ok {
				continue
			}
			if nb, ok = matchSeq(nodes[k:], pats[1:], nb); ok {
				return nb, true
			}
		}
		return nil, false
	}
	if len(nodes) == 0 {
		return nil, false
	}
	nb, ok := match(nodes[0], p, b.clone())
	if !ok {
		return nil, false
	}
	return matchSeq(nodes[1:], pats[1:], nb)
}

// bind binds a variable, unless it already is bound to something different.
func bind(b Bindings, name string, bnd binding) (Bindings, bool) {
	if name == "" {
		return b, true
	}
	if old, ok := b[name]; ok {
		if !sameBinding(old, bnd) {
			return nil, false
		}
		return b, true
	}
	b[name] = bnd
	return b, true
}

func sameBinding(a, b binding) bool {
	if a.isSeq != b.isSeq {
		return false
	}
	if !a.isSeq {
		return sx.Equal(a.node, b.node)
	}
	if len(a.seq) != len(b.seq) {
		return false
	}
	for i := range a.seq {
		if !sx.Equal(a.seq[i], b.seq[i]) {
			return false
		}
	}
	return true
}
