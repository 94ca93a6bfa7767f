// Package expr implements the arithmetic expression language over
// named variables: tokenizer, recursive-descent parser and evaluator,
// per spec.md §4.1. The grammar is:
//
//	expr = add
//	add  = mul  (('+'|'-') mul)*
//	mul  = pow  (('*'|'/') pow)*
//	pow  = prim ('^' pow)?
//	prim = NUMBER | IDENT | '(' expr ')'
//
// All parse/lex/runtime errors are caught at this package's exported
// boundary and folded into the Unresolved sentinel; no internal parser
// error ever escapes to a caller.
package expr

import (
	"errors"
	"math"
)

// errUnresolved is the internal sentinel error used to short-circuit
// evaluation; it never escapes Evaluate.
var errUnresolved = errors.New("expr: unresolved")

// Vars maps variable names to their current value. A variable that is
// absent, or present with IsSet false, evaluates as unresolved
// (spec.md §4.1(a)).
type Vars map[string]Value

// Value is a variable's value as seen by the expression evaluator.
// IsSet mirrors "has a value" — a determined variable the solver has
// not yet assigned, or an explicitly null value, is !IsSet.
type Value struct {
	Num   float64
	IsSet bool
}

// Validate reports whether expression parses to EOF with no lex/parse
// errors.
func Validate(expression string) bool {
	toks, err := lex(expression)
	if err != nil {
		return false
	}
	// syntax only: every operand becomes NaN, so neither an unknown
	// variable nor a zero divisor can abort the parse.
	for i := range toks {
		if toks[i].kind == tokNumber || toks[i].kind == tokIdent {
			toks[i] = token{kind: tokNumber, num: math.NaN()}
		}
	}
	p := &parser{toks: toks}
	_, err = p.parseExpr()
	if err != nil {
		return false
	}
	return p.atEnd()
}

// Evaluate evaluates expression against vars. It returns (value, true)
// on success and (0, false) — the Unresolved outcome — if the
// expression cannot produce a finite numeric value: missing/unset
// variables, division by exactly zero, or any lex/parse error.
func Evaluate(expression string, vars Vars) (value float64, ok bool) {
	toks, err := lex(expression)
	if err != nil {
		return 0, false
	}
	p := &parser{toks: toks, vars: vars}
	v, err := p.parseExpr()
	if err != nil {
		return 0, false
	}
	if !p.atEnd() {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// EvaluateNumber is a convenience wrapper for the common case where the
// constraint target is already a bare numeric literal: it short-circuits
// without invoking the lexer/parser at all (spec.md §4.1).
func EvaluateNumber(n float64) (value float64, ok bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ExtractVariableNames returns the identifiers referenced by
// expression, in lexical (left-to-right) order, duplicates preserved.
// An expression that fails to lex yields nil; one that lexes but does
// not parse still yields its identifiers.
func ExtractVariableNames(expression string) []string {
	toks, err := lex(expression)
	if err != nil {
		return nil
	}
	var names []string
	for _, t := range toks {
		if t.kind == tokIdent {
			names = append(names, t.text)
		}
	}
	return names
}
