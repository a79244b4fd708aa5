package fp

import (
	"github.com/npillmayer/sxtools/sx"
)

// Contains is true if any node of tree is equal to target, including the root.
// The search stops at the first match.
func Contains(tree, target sx.Node) bool {
	seq := Traverse(tree, TopDownDir).Where(EqualTo(target))
	found := !seq.Done()
	tracer().Debugf("search for %v: found = %v", target, found)
	return found
}

// Replace returns a tree identical to tree, except that every node equal to from is
// replaced by to. Replacements are not searched again, thus to may itself contain
// from.
func Replace(tree, from, to sx.Node) sx.Node {
	if sx.Equal(tree, from) {
		return to
	}
	return Walk(tree, func(child sx.Node) sx.Node {
		return Replace(child, from, to)
	}, Identity)
}
