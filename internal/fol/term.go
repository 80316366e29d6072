// Package fol implements the syntactic term model for first-order
// clauses used by premise selection: variables, function/predicate
// applications, literals, clauses, substitutions, and Robinson
// unification.
package fol

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Term is any first-order term: a Variable or a Function application.
// Atoms are ordinary Terms whose head happens to be a predicate
// symbol; the distinction is contextual, not structural (see
// Literal).
type Term interface {
	// String renders the term in standard first-order syntax.
	String() string

	// Equal reports strict structural equality, not unifiability.
	Equal(other Term) bool

	// IsVar reports whether the term is a Variable.
	IsVar() bool
}

var varCounter int64

// Variable is a logic variable, value-compared by identifier.
type Variable struct {
	id   int64
	name string
}

// Fresh allocates a new Variable with a globally unique identifier.
// name is used only for display and may be empty.
func Fresh(name string) *Variable {
	id := atomic.AddInt64(&varCounter, 1)
	return &Variable{id: id, name: name}
}

// ID returns the variable's unique identifier.
func (v *Variable) ID() int64 { return v.id }

func (v *Variable) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("_G%d", v.id)
}

// Equal reports whether other is the same variable.
func (v *Variable) Equal(other Term) bool {
	ov, ok := other.(*Variable)
	return ok && ov.id == v.id
}

// IsVar always returns true for a Variable.
func (v *Variable) IsVar() bool { return true }

// Function is a function (or predicate) application f(t1,...,tn).
// A constant is a Function with no arguments. An Atom is simply a
// Function used in predicate position; see the Atom alias below.
type Function struct {
	Symbol string
	Args   []Term
}

// NewFunction builds a function application. Passing no args makes a
// constant.
func NewFunction(symbol string, args ...Term) *Function {
	return &Function{Symbol: symbol, Args: args}
}

// Arity returns the number of arguments.
func (f *Function) Arity() int { return len(f.Args) }

func (f *Function) String() string {
	if len(f.Args) == 0 {
		return f.Symbol
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Symbol, strings.Join(parts, ","))
}

// Equal reports strict structural equality: same symbol, same arity,
// and pairwise-equal arguments.
func (f *Function) Equal(other Term) bool {
	of, ok := other.(*Function)
	if !ok || of.Symbol != f.Symbol || len(of.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(of.Args[i]) {
			return false
		}
	}
	return true
}

// IsVar always returns false for a Function.
func (f *Function) IsVar() bool { return false }

// Atom is a Function used in predicate position. The type is shared
// with Function because the model distinguishes atoms from terms only
// by where they occur.
type Atom = Function
