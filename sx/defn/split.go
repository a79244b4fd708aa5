package defn

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/sxtools/sx"
	"github.com/npillmayer/sxtools/sx/flow"
)

// Def holds the parts of a function definition.
type Def struct {
	Name        sx.Node   // nil for anonymous functions, f for f{T}
	Params      []sx.Node // type parameters of a parameterized name f{T}
	Args        []sx.Node // positional arguments
	Kwargs      []sx.Node // keyword arguments
	Body        sx.Node   // always a block
	RType       sx.Node   // declared return type, or nil
	WhereParams []sx.Node // type parameters of a where clause
}

// IsAnonymous is true for functions without a name.
func (d *Def) IsAnonymous() bool {
	return d.Name == nil
}

// Splitdef decomposes a function definition. def may be in long or in short form.
// For
//
//    (= (:: (call f (parameters (kw k 1)) x y) Int) (call + x y k))
//
// the result is
//
//    Name:   f
//    Args:   [x y]
//    Kwargs: [(kw k 1)]
//    RType:  Int
//    Body:   (block (call + x y k))
//
// A parameterized name (curly f T) is split into Name f and Params [T].
// If def is not a function definition, Splitdef returns a *DefinitionError.
func Splitdef(def sx.Node) (*Def, error) {
	fn, ok := sx.AsExpr(longdef1(def), sx.Function)
	if !ok || fn.Len() != 2 {
		return nil, notADef(def)
	}
	d := &Def{Body: flow.Block(fn.Arg(1))}
	sig := fn.Arg(0)
	for {
		w, ok := sx.AsExpr(sig, sx.Where)
		if !ok {
			break
		}
		if w.Len() == 0 {
			return nil, notADef(def)
		}
		params := make([]sx.Node, 0, w.Len()-1+len(d.WhereParams))
		params = append(params, w.Args[1:]...)
		d.WhereParams = append(params, d.WhereParams...)
		sig = w.Arg(0)
	}
	if decl, ok := sx.AsExpr(sig, sx.Decl); ok && decl.Len() == 2 {
		d.RType = decl.Arg(1)
		sig = decl.Arg(0)
	}
	var params []sx.Node
	if call, ok := sx.AsExpr(sig, sx.Call); ok && call.Len() > 0 {
		d.Name = call.Arg(0)
		if curly, ok := sx.AsExpr(d.Name, sx.Curly); ok && curly.Len() > 0 {
			d.Name = curly.Arg(0)
			d.Params = append([]sx.Node{}, curly.Args[1:]...)
		}
		params = call.Args[1:]
	} else if tuple, ok := sx.AsExpr(sig, sx.Tuple); ok {
		params = tuple.Args
	} else {
		return nil, notADef(def)
	}
	d.Args, d.Kwargs = SplitKwargs(params)
	return d, nil
}

func notADef(n sx.Node) error {
	tracer().Debugf("not a function definition: %v", n)
	return &DefinitionError{Node: n}
}

// SplitKwargs splits a parameter list into positional and keyword parameters.
// If the first parameter is a (parameters ...) node, its children are the keyword
// parameters. Otherwise all parameters are positional.
func SplitKwargs(params []sx.Node) (args, kwargs []sx.Node) {
	kwargs = []sx.Node{}
	if len(params) > 0 {
		if p, ok := sx.AsExpr(params[0], sx.Parameters); ok {
			kwargs = append(kwargs, p.Args...)
			params = params[1:]
		}
	}
	args = make([]sx.Node, len(params))
	copy(args, params)
	return args, kwargs
}

// Combinedef builds a long form function definition from its parts. It is the
// inverse of Splitdef.
func Combinedef(d *Def) sx.Node {
	params := make([]sx.Node, 0, len(d.Args)+1)
	if len(d.Kwargs) > 0 {
		params = append(params, sx.E(sx.Parameters, d.Kwargs...))
	}
	params = append(params, d.Args...)
	var sig sx.Node
	if d.Name != nil {
		name := d.Name
		if len(d.Params) > 0 {
			name = sx.E(sx.Curly, append([]sx.Node{name}, d.Params...)...)
		}
		sig = sx.E(sx.Call, append([]sx.Node{name}, params...)...)
	} else {
		sig = sx.E(sx.Tuple, params...)
	}
	if d.RType != nil {
		sig = sx.E(sx.Decl, sig, d.RType)
	}
	if len(d.WhereParams) > 0 {
		sig = sx.E(sx.Where, append([]sx.Node{sig}, d.WhereParams...)...)
	}
	body := d.Body
	if body == nil {
		body = sx.E(sx.Block)
	}
	return sx.E(sx.Function, sig, flow.Block(body))
}
