package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/fp"
)

// Rewriter is a function
//
//     bindings ↦ node
//
// i.e., a term rewriting function. It is called with the bindings of a successful
// pattern match and returns the replacement node. A rewriter may return nil to
// reject the redex after all, in which case the next rule will be tried.
type Rewriter func(b Bindings) sx.Node

// RewriteRule is a type representing a rule for term rewriting.
// It contains a pattern and a rewriting-function. The pattern will be applied
// to nodes of a tree, and if it matches the rewriter will be called on the redex.
type RewriteRule struct {
	Name    string
	Pattern *Pattern
	Rewrite Rewriter
}

// Rule is a shortcut to create a rewrite rule from a pattern in s-expression
// notation.
func Rule(name string, pattern string, rw Rewriter) RewriteRule {
	return RewriteRule{Name: name, Pattern: MustCompile(pattern), Rewrite: rw}
}

// Apply applies the rule to a single node.
func (r RewriteRule) Apply(n sx.Node) (sx.Node, bool) {
	b, ok := Match(n, r.Pattern)
	if !ok {
		return n, false
	}
	result := r.Rewrite(b)
	if result == nil {
		return n, false
	}
	tracer().Debugf("rule %s: %v  =>  %v", r.Name, n, result)
	return result, true
}

// RuleSet is an ordered list of rewrite rules. Rules are tried in sequence and the
// first matching rule wins.
type RuleSet []RewriteRule

// Apply applies the first matching rule to a single node. If no rule matches, n
// is returned unchanged.
func (rs RuleSet) Apply(n sx.Node) (sx.Node, bool) {
	for _, r := range rs {
		if result, ok := r.Apply(n); ok {
			return result, true
		}
	}
	return n, false
}

// Mapper returns the single-node rewrite of rs as a mapper for tree walks.
func (rs RuleSet) Mapper() fp.Mapper {
	return func(n sx.Node) sx.Node {
		result, _ := rs.Apply(n)
		return result
	}
}

// Prewalk rewrites every node of tree top-down. Results of rewrites are rewritten
// further, so rules must not re-create their own redex.
func (rs RuleSet) Prewalk(tree sx.Node) sx.Node {
	return fp.Prewalk(rs.Mapper(), tree)
}

// Postwalk rewrites every node of tree bottom-up.
func (rs RuleSet) Postwalk(tree sx.Node) sx.Node {
	return fp.Postwalk(rs.Mapper(), tree)
}
