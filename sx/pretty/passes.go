package pretty

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/alias"
	"github.com/npillmayer/sxtools/sx/defn"
	"github.com/npillmayer/sxtools/sx/flow"
)

// Pass is a transformation of a tree.
type Pass func(sx.Node) (sx.Node, error)

func pure(f func(sx.Node) sx.Node) Pass {
	return func(n sx.Node) (sx.Node, error) {
		return f(n), nil
	}
}

var passes = map[string]Pass{
	"flatten":    pure(flow.Flatten),
	"unblock":    pure(flow.Unblock),
	"striplines": pure(flow.StripLines),
	"unresolve":  pure(unresolve),
	"resyntax":   pure(Resyntax),
	"alias":      alias.AliasGensyms,
	"gensym-ids": pure(alias.GensymIDs),
	"longdef":    pure(defn.Longdef),
	"shortdef":   pure(defn.Shortdef),
	"prettify":   prettify,
}

func unresolve(n sx.Node) sx.Node {
	return Unresolve(n, nil)
}

func prettify(n sx.Node) (sx.Node, error) {
	return Prettify(n)
}

// Lookup finds a pass by name.
func Lookup(name string) (Pass, bool) {
	p, ok := passes[name]
	return p, ok
}

// Names returns the names of all passes, sorted.
func Names() []string {
	names := make([]string, 0, len(passes))
	for name := range passes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
