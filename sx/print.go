package sx

import "strings"

// IndentedString returns a multi-line representation of a tree, with every child
// of a compound expression on a line of its own. Leaves and compound expressions
// without compound children stay on one line.
func IndentedString(n Node) string {
	var b strings.Builder
	indented(&b, n, 0)
	return b.String()
}

func indented(b *strings.Builder, n Node, level int) {
	b.WriteString(strings.Repeat("  ", level))
	e, ok := n.(*Expr)
	if !ok || e == nil || !hasCompoundChild(e) {
		if n == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(n.String())
		}
		return
	}
	b.WriteByte('(')
	b.WriteString(e.Head.text())
	for _, a := range e.Args {
		b.WriteByte('\n')
		indented(b, a, level+1)
	}
	b.WriteByte(')')
}

func hasCompoundChild(e *Expr) bool {
	for _, a := range e.Args {
		if IsCompound(a) {
			return true
		}
	}
	return false
}
