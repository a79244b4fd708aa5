package sx

import "reflect"

// Equal compares two nodes by value. Compound expressions are equal if their heads
// are equal and their children are pairwise equal. Function references are equal
// if they carry the same name and refer to the same code.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Expr:
		y, ok := b.(*Expr)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x == nil || y == nil || x.Head != y.Head || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case FuncRef:
		y, ok := b.(FuncRef)
		return ok && x.Name == y.Name && sameFunc(x.Fn, y.Fn)
	case Sym, Int, Float, Str, Bool, Nothing:
		return a == b // comparable leaf types
	}
	return false
}

func sameFunc(f, g interface{}) bool {
	if f == nil || g == nil {
		return f == nil && g == nil
	}
	vf, vg := reflect.ValueOf(f), reflect.ValueOf(g)
	if vf.Kind() != reflect.Func || vg.Kind() != reflect.Func {
		return false
	}
	return vf.Pointer() == vg.Pointer()
}
