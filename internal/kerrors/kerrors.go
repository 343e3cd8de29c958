// Package kerrors defines the typed error kinds surfaced by MKBSC at
// package boundaries, and the recover/convert helper used to turn an
// internal invariant panic (EmptyConstructionError) into an ordinary error
// at those same boundaries.
package kerrors

import "fmt"

// LookupError reports that a referenced state or atom could not be found.
type LookupError struct {
	What string // what was being looked up, e.g. "state" or "atom"
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup failed: no %s matching %s", e.What, e.Key)
}

// ValidationError reports a broken game invariant: duplicate alphabet
// entries, a partitioning that is not a partition, a transition endpoint
// outside the state set, or an action outside its alphabet.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// ParseError reports a malformed game file. Line is the 1-based line
// number where the parser has one; errors in transition and observation
// lines and in the Attributes JSON are reported with Line 0.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason)
}

// EmptyConstructionError reports the internal invariant violation of
// picking from an empty set while computing a consistent base or a
// knowledge group on an ill-formed game. It should never fire on
// well-formed input; internal algorithm code panics with this type rather
// than threading an error return through every recursive call, and it is
// recovered back into an ordinary error only at package boundaries via
// Recover.
type EmptyConstructionError struct {
	Context string
}

func (e *EmptyConstructionError) Error() string {
	return "empty construction: " + e.Context
}

// Panic raises an EmptyConstructionError as a panic, for use deep inside
// algorithm code where threading an error return would obscure the
// recursion (e.g. ConsistentBase's fixpoint loop).
func Panic(context string) {
	panic(&EmptyConstructionError{Context: context})
}

// Recover must be deferred at the top of any exported function that calls
// code which may Panic. On a recovered EmptyConstructionError it sets
// *errOut to that error; any other recovered value is re-panicked, since
// it is not one of ours to swallow.
func Recover(errOut *error) {
	r := recover()
	if r == nil {
		return
	}
	if ec, ok := r.(*EmptyConstructionError); ok {
		*errOut = ec
		return
	}
	panic(r)
}
