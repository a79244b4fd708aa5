package pretty

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/fp"
)

// NameResolver finds the name of a function.
type NameResolver func(fn interface{}) (string, bool)

// FuncName is a NameResolver using the symbol table of the Go runtime. For a Go
// function it returns the bare function name, without package path and receiver.
func FuncName(fn interface{}) (string, bool) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "", false
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", false
	}
	name := strings.TrimSuffix(f.Name(), "-fm") // method values
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, name != ""
}

// Unresolve replaces function references in a tree by symbols. A function reference
// carrying a name is replaced by this name, otherwise the resolver is asked.
// References which cannot be resolved are left in place. If resolve is nil,
// FuncName is used.
func Unresolve(tree sx.Node, resolve NameResolver) sx.Node {
	if resolve == nil {
		resolve = FuncName
	}
	return fp.Postwalk(func(n sx.Node) sx.Node {
		ref, ok := n.(sx.FuncRef)
		if !ok {
			return n
		}
		if ref.Name != "" {
			return sx.Sym(ref.Name)
		}
		if name, ok := resolve(ref.Fn); ok {
			return sx.Sym(name)
		}
		tracer().Infof("cannot resolve name of function reference")
		return n
	}, tree)
}
