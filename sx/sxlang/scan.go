package sxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the s-expression language.
const (
	EOF = iota - 1
	LParen
	RParen
	IntLit
	FloatLit
	StringLit
	Symbol
	EscapedSymbol
)

var tokenNames = map[int]string{
	EOF:           "end of input",
	LParen:        "'('",
	RParen:        "')'",
	IntLit:        "integer",
	FloatLit:      "float",
	StringLit:     "string",
	Symbol:        "symbol",
	EscapedSymbol: "escaped symbol",
}

// TokenName returns a readable name for a token type.
func TokenName(t int) string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	return fmt.Sprintf("<token %d>", t)
}

var lexer *lexmachine.Lexer
var lexerErr error

var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for s-expressions. The DFA is compiled once.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("compiling s-expression lexer")
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\(`), makeToken(LParen))
		lexer.Add([]byte(`\)`), makeToken(RParen))
		lexer.Add([]byte(`\"([^"\\]|\\.)*\"`), makeToken(StringLit))
		lexer.Add([]byte(`[\+\-]?[0-9]+`), makeToken(IntLit))
		lexer.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+([eE][\+\-]?[0-9]+)?|[eE][\+\-]?[0-9]+)`), makeToken(FloatLit))
		lexer.Add([]byte(`#\"([^"\\]|\\.)*\"`), makeToken(EscapedSymbol))
		lexer.Add([]byte(`[^ \t\n\r\(\)\";]+`), makeToken(Symbol))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// Tokenize splits an input string into tokens. The result does not contain an EOF
// token.
func Tokenize(input string) ([]*lexmachine.Token, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []*lexmachine.Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				return toks, &SyntaxError{
					Line:   ui.FailLine,
					Column: ui.FailColumn,
					Msg:    "unexpected input",
				}
			}
			return toks, err
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	return toks, nil
}
