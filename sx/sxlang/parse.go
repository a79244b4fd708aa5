package sxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/sxtools/sx"
	"github.com/timtadh/lexmachine"
)

// SyntaxError is an error while reading s-expressions.
type SyntaxError struct {
	Line, Column int
	Msg          string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse reads exactly one s-expression from input.
func Parse(input string) (sx.Node, error) {
	nodes, err := ParseAll(input)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("expected a single s-expression, found %d", len(nodes))
	}
	return nodes[0], nil
}

// ParseAll reads a sequence of s-expressions from input.
func ParseAll(input string) ([]sx.Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks}
	var nodes []sx.Node
	for r.peek() != EOF {
		n, err := r.expr()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	tracer().Debugf("read %d s-expression(s)", len(nodes))
	return nodes, nil
}

// MustParse is like Parse, but panics on errors. It is intended for tests and for
// initialization of package level variables.
func MustParse(input string) sx.Node {
	n, err := Parse(input)
	if err != nil {
		panic(fmt.Errorf("cannot parse %q: %w", input, err))
	}
	return n
}

// --- Reader ----------------------------------------------------------------

type reader struct {
	toks []*lexmachine.Token
	pos  int
}

func (r *reader) peek() int {
	if r.pos >= len(r.toks) {
		return EOF
	}
	return r.toks[r.pos].Type
}

func (r *reader) next() *lexmachine.Token {
	tok := r.toks[r.pos]
	r.pos++
	return tok
}

func (r *reader) errorf(format string, args ...interface{}) error {
	e := &SyntaxError{Msg: fmt.Sprintf(format, args...)}
	if r.pos < len(r.toks) {
		e.Line, e.Column = r.toks[r.pos].StartLine, r.toks[r.pos].StartColumn
	} else if len(r.toks) > 0 {
		last := r.toks[len(r.toks)-1]
		e.Line, e.Column = last.EndLine, last.EndColumn
	}
	return e
}

// expr reads one s-expression:
//
//    Expr  ::=  Atom  |  '(' symbol Expr* ')'
//
func (r *reader) expr() (sx.Node, error) {
	switch r.peek() {
	case EOF:
		return nil, r.errorf("unexpected end of input")
	case RParen:
		return nil, r.errorf("unexpected ')'")
	case LParen:
		r.next()
		if t := r.peek(); t != Symbol && t != EscapedSymbol {
			return nil, r.errorf("expected head symbol, found %s", TokenName(t))
		}
		tok := r.next()
		name := string(tok.Lexeme)
		if tok.Type == EscapedSymbol {
			var err error
			if name, err = unescape(tok); err != nil {
				return nil, err
			}
		}
		head := sx.HeadOf(name)
		var args []sx.Node
		for r.peek() != RParen {
			if r.peek() == EOF {
				return nil, r.errorf("missing ')' for expression %s", head)
			}
			arg, err := r.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		r.next() // ')'
		return &sx.Expr{Head: head, Args: args}, nil
	}
	return r.atom(r.next())
}

func (r *reader) atom(tok *lexmachine.Token) (sx.Node, error) {
	lexeme := string(tok.Lexeme)
	switch tok.Type {
	case IntLit:
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Line: tok.StartLine, Column: tok.StartColumn, Msg: err.Error()}
		}
		return sx.Int(i), nil
	case FloatLit:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, &SyntaxError{Line: tok.StartLine, Column: tok.StartColumn, Msg: err.Error()}
		}
		return sx.Float(f), nil
	case StringLit:
		s, err := strconv.Unquote(lexeme)
		if err != nil {
			return nil, &SyntaxError{Line: tok.StartLine, Column: tok.StartColumn,
				Msg: "malformed string literal " + lexeme}
		}
		return sx.Str(s), nil
	case EscapedSymbol:
		name, err := unescape(tok)
		if err != nil {
			return nil, err
		}
		return sx.Sym(name), nil
	}
	switch lexeme {
	case "true":
		return sx.Bool(true), nil
	case "false":
		return sx.Bool(false), nil
	case "nothing":
		return sx.Nothing{}, nil
	case "Inf", "+Inf":
		return sx.Float(math.Inf(1)), nil
	case "-Inf":
		return sx.Float(math.Inf(-1)), nil
	case "NaN":
		return sx.Float(math.NaN()), nil
	}
	return sx.Sym(lexeme), nil
}

// unescape returns the text of an escaped symbol #"...".
func unescape(tok *lexmachine.Token) (string, error) {
	name, err := strconv.Unquote(string(tok.Lexeme[1:]))
	if err != nil {
		return "", &SyntaxError{Line: tok.StartLine, Column: tok.StartColumn,
			Msg: "malformed escaped symbol " + string(tok.Lexeme)}
	}
	return name, nil
}
