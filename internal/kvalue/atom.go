// Package kvalue implements the recursive knowledge-value type used
// throughout MKBSC: a base game state is an Atom, and each KBSC iteration
// wraps the previous iteration's values into Info nodes, one set per
// player.
package kvalue

import "strconv"

// Atom identifies a base-game state. It holds either an integer or a short
// string, matching the game file format's two literal forms.
type Atom struct {
	isInt bool
	i     int
	s     string
}

// IntAtom builds an integer-valued atom.
func IntAtom(i int) Atom {
	return Atom{isInt: true, i: i}
}

// StringAtom builds a string-valued atom.
func StringAtom(s string) Atom {
	return Atom{s: s}
}

// IsInt reports whether the atom carries an integer.
func (a Atom) IsInt() bool { return a.isInt }

// Int returns the integer value; valid only if IsInt() is true.
func (a Atom) Int() int { return a.i }

// Str returns the string value; valid only if IsInt() is false.
func (a Atom) Str() string { return a.s }

// String renders the atom the way it appears in the game file format:
// bare for integers, quoted for strings.
func (a Atom) String() string {
	if a.isInt {
		return strconv.Itoa(a.i)
	}
	return strconv.Quote(a.s)
}

// key returns the canonical interning key fragment for this atom.
func (a Atom) key() string {
	if a.isInt {
		return "i" + strconv.Itoa(a.i)
	}
	return "s" + strconv.Quote(a.s)
}

// Equal reports whether two atoms carry the same scalar.
func (a Atom) Equal(b Atom) bool {
	return a.isInt == b.isInt && a.i == b.i && a.s == b.s
}
