package sxcodec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/npillmayer/sxtools/sx"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrFuncRef is returned when encoding a tree containing function references.
var ErrFuncRef = errors.New("cannot encode function reference")

// ErrCorrupt is returned when decoding data which does not represent a tree.
var ErrCorrupt = errors.New("corrupt tree encoding")

// wireNode is the serialized form of a node.
type wireNode struct {
	K int        `msgpack:"k"`
	H string     `msgpack:"h,omitempty"` // head of compound nodes
	S string     `msgpack:"s,omitempty"` // symbols, strings, function names
	I int64      `msgpack:"i,omitempty"`
	F float64    `msgpack:"f,omitempty"`
	B bool       `msgpack:"b,omitempty"`
	A []wireNode `msgpack:"a,omitempty"`
}

func toWire(n sx.Node, withFuncs bool) (wireNode, error) {
	if n == nil {
		return wireNode{}, fmt.Errorf("%w: nil node", sx.ErrMalformedTree)
	}
	w := wireNode{K: int(n.Kind())}
	switch x := n.(type) {
	case sx.Sym:
		w.S = string(x)
	case sx.Int:
		w.I = int64(x)
	case sx.Float:
		w.F = float64(x)
	case sx.Str:
		w.S = string(x)
	case sx.Bool:
		w.B = bool(x)
	case sx.Nothing:
	case sx.FuncRef:
		if !withFuncs {
			return w, fmt.Errorf("%w %v", ErrFuncRef, x)
		}
		w.S = x.Name
	case *sx.Expr:
		w.H = x.Head.Name()
		w.A = make([]wireNode, len(x.Args))
		for i, a := range x.Args {
			c, err := toWire(a, withFuncs)
			if err != nil {
				return w, err
			}
			w.A[i] = c
		}
	default:
		return w, fmt.Errorf("%w: unknown node type %T", sx.ErrMalformedTree, n)
	}
	return w, nil
}

func fromWire(w wireNode) (sx.Node, error) {
	k, err := safecast.Conv[uint8](w.K)
	if err != nil {
		return nil, fmt.Errorf("%w: node kind %d: %v", ErrCorrupt, w.K, err)
	}
	switch sx.Kind(k) {
	case sx.SymbolKind:
		return sx.Sym(w.S), nil
	case sx.IntKind:
		return sx.Int(w.I), nil
	case sx.FloatKind:
		return sx.Float(w.F), nil
	case sx.StringKind:
		return sx.Str(w.S), nil
	case sx.BoolKind:
		return sx.Bool(w.B), nil
	case sx.NothingKind:
		return sx.Nothing{}, nil
	case sx.ExprKind:
		if w.H == "" {
			return nil, fmt.Errorf("%w: compound without head", ErrCorrupt)
		}
		e := &sx.Expr{Head: sx.HeadOf(w.H)}
		if len(w.A) > 0 {
			e.Args = make([]sx.Node, len(w.A))
		}
		for i, a := range w.A {
			c, err := fromWire(a)
			if err != nil {
				return nil, err
			}
			e.Args[i] = c
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: node kind %d", ErrCorrupt, k)
}

// Encode writes a tree to w.
func Encode(w io.Writer, n sx.Node) error {
	wn, err := toWire(n, false)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(&wn)
}

// EncodeAll writes a sequence of trees to w.
func EncodeAll(w io.Writer, nodes []sx.Node) error {
	enc := msgpack.NewEncoder(w)
	for _, n := range nodes {
		wn, err := toWire(n, false)
		if err != nil {
			return err
		}
		if err = enc.Encode(&wn); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a single tree from r.
func Decode(r io.Reader) (sx.Node, error) {
	var wn wireNode
	if err := msgpack.NewDecoder(r).Decode(&wn); err != nil {
		return nil, err
	}
	return fromWire(wn)
}

// DecodeAll reads trees from r until the end of input.
func DecodeAll(r io.Reader) ([]sx.Node, error) {
	dec := msgpack.NewDecoder(r)
	var nodes []sx.Node
	for {
		var wn wireNode
		if err := dec.Decode(&wn); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nodes, err
		}
		n, err := fromWire(wn)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, n)
	}
	tracer().Debugf("decoded %d trees", len(nodes))
	return nodes, nil
}

// Marshal returns the encoding of a tree.
func Marshal(n sx.Node) ([]byte, error) {
	wn, err := toWire(n, false)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(&wn)
}

// Unmarshal decodes a tree.
func Unmarshal(data []byte) (sx.Node, error) {
	var wn wireNode
	if err := msgpack.Unmarshal(data, &wn); err != nil {
		return nil, err
	}
	return fromWire(wn)
}
