package alias

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

// Aliaser replaces generated identifiers in trees. An aliaser may be used for any
// number of runs, concurrently; every run gets an alias table of its own.
type Aliaser struct {
	words      WordList
	strategy   Strategy
	avoidTaken bool
}

// Option configures an Aliaser.
type Option func(*Aliaser)

// WithStrategy sets the word selection strategy. Default is Random(nil).
func WithStrategy(s Strategy) Option {
	return func(a *Aliaser) {
		if s != nil {
			a.strategy = s
		}
	}
}

// AvoidNames controls whether words used as symbols in a tree are excluded from
// aliasing. Default is true.
func AvoidNames(b bool) Option {
	return func(a *Aliaser) {
		a.avoidTaken = b
	}
}

// New creates an aliaser drawing words from a word list.
func New(words WordList, opts ...Option) *Aliaser {
	a := &Aliaser{words: words, avoidTaken: true}
	for _, opt := range opts {
		opt(a)
	}
	if a.strategy == nil {
		a.strategy = Random(nil)
	}
	return a
}

// Alias replaces all generated identifiers in tree.
func (a *Aliaser) Alias(tree sx.Node) (sx.Node, error) {
	result, _, err := a.Run(tree)
	return result, err
}

// Run replaces all generated identifiers in tree and returns the alias table of
// the run along with the result. If the word list is exhausted, tree is returned
// unchanged together with an error.
func (a *Aliaser) Run(tree sx.Node) (sx.Node, *Table, error) {
	var taken func(string) bool
	if a.avoidTaken {
		names := symbolsOf(tree)
		taken = func(w string) bool { return names[w] }
	}
	table := NewTable(a.words, taken)
	result, err := fp.PrewalkE(func(n sx.Node) (sx.Node, error) {
		if !IsGensym(n) {
			return n, nil
		}
		return table.Alias(n.(sx.Sym), a.strategy)
	}, tree)
	if err != nil {
		return tree, table, err
	}
	tracer().Debugf("aliased %d generated identifiers", table.Len())
	return result, table, nil
}

func symbolsOf(tree sx.Node) map[string]bool {
	names := make(map[string]bool)
	seq := fp.Traverse(tree, fp.TopDownDir).Where(fp.HasShape(sx.SymbolKind))
	for _, n := range seq.List() {
		names[string(n.(sx.Sym))] = true
	}
	return names
}

// AliasGensyms replaces generated identifiers in tree by animal names, selected
// at random.
func AliasGensyms(tree sx.Node) (sx.Node, error) {
	return New(Animals()).Alias(tree)
}

// --- Macro expansion -------------------------------------------------------

// Expander is a macro expander, which expands the macro calls within expr.
// scope names the context of the expansion, e.g. a module.
type Expander interface {
	Expand(scope string, expr sx.Node) (sx.Node, error)
}

// ExpanderFunc is an adapter to use ordinary functions as expanders.
type ExpanderFunc func(scope string, expr sx.Node) (sx.Node, error)

// Expand calls f(scope, expr).
func (f ExpanderFunc) Expand(scope string, expr sx.Node) (sx.Node, error) {
	return f(scope, expr)
}

// Expand expands expr using an expander and aliases the generated identifiers
// of the expansion.
func (a *Aliaser) Expand(e Expander, scope string, expr sx.Node) (sx.Node, error) {
	expanded, err := e.Expand(scope, expr)
	if err != nil {
		return nil, err
	}
	return a.Alias(expanded)
}
