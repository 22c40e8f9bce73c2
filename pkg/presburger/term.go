package presburger

import (
	"fmt"
	"sort"
	"strings"
)

// Term is an immutable linear expression over integer-valued variables:
// k + Σ coeffs[x]·x. The zero value is the constant term 0, the same
// Term that ConstTerm(0) returns.
//
// Every operation on Term returns a new Term rather than mutating the
// receiver — clone, then mutate the clone — so that Terms can be shared
// freely across the inert store and the solver's undo trail without
// aliasing bugs.
type Term struct {
	k      int64
	coeffs map[Name]int64
}

// ConstTerm builds the constant term k.
func ConstTerm(k int64) Term {
	return Term{k: k}
}

// VarTerm builds the term 1·x.
func VarTerm(x Name) Term {
	return Term{coeffs: map[Name]int64{x: 1}}
}

// Const returns the constant part of t.
func (t Term) Const() int64 {
	return t.k
}

// Coeff returns the coefficient of x in t, or 0 if x does not appear.
func (t Term) Coeff(x Name) int64 {
	return t.coeffs[x]
}

// Vars returns the names appearing in t with a nonzero coefficient,
// ascending by Name.Less — the order tie-breaking relies on and that
// String uses for reproducible output.
func (t Term) Vars() []Name {
	vars := make([]Name, 0, len(t.coeffs))
	for x := range t.coeffs {
		vars = append(vars, x)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })
	return vars
}

// clone returns a defensive copy of t's coefficient map, ready to be
// mutated by the caller before being wrapped back up into a Term.
func (t Term) clone() map[Name]int64 {
	m := make(map[Name]int64, len(t.coeffs))
	for x, c := range t.coeffs {
		m[x] = c
	}
	return m
}

// Add returns t + other. Commutative, associative, identity ConstTerm(0)
//.
func (t Term) Add(other Term) Term {
	m := t.clone()
	for x, c := range other.coeffs {
		nc := m[x] + c
		if nc == 0 {
			delete(m, x)
		} else {
			m[x] = nc
		}
	}
	return Term{k: t.k + other.k, coeffs: m}
}

// ScalarMul returns k·t.
func (t Term) ScalarMul(k int64) Term {
	if k == 0 {
		return ConstTerm(0)
	}
	if k == 1 {
		return t
	}
	m := make(map[Name]int64, len(t.coeffs))
	for x, c := range t.coeffs {
		m[x] = c * k // c is nonzero (zero-free invariant) and k != 0, so product is nonzero
	}
	return Term{k: t.k * k, coeffs: m}
}

// Negate returns -t.
func (t Term) Negate() Term {
	return t.ScalarMul(-1)
}

// Sub returns t - other.
func (t Term) Sub(other Term) Term {
	return t.Add(other.Negate())
}

// Let substitutes x by the term s in t. If x does not
// appear in t, t is returned unchanged (Let' "no change" case).
func (t Term) Let(x Name, s Term) Term {
	a, rest := t.SplitVar(x)
	if a == 0 {
		return t
	}
	return s.ScalarMul(a).Add(rest)
}

// LetNum substitutes the variable x by the integer constant k.
func (t Term) LetNum(x Name, k int64) Term {
	a, rest := t.SplitVar(x)
	if a == 0 {
		return t
	}
	return ConstTerm(rest.k + a*k).Add(Term{coeffs: rest.coeffs})
}

// SplitVar returns the coefficient of x in t (0 if absent) and t with x
// removed.
func (t Term) SplitVar(x Name) (int64, Term) {
	a, ok := t.coeffs[x]
	if !ok {
		return 0, t
	}
	m := t.clone()
	delete(m, x)
	return a, Term{k: t.k, coeffs: m}
}

// IsConst returns t's constant and true iff t has no variables.
func (t Term) IsConst() (int64, bool) {
	if len(t.coeffs) == 0 {
		return t.k, true
	}
	return 0, false
}

// Factor returns (d, t/d, true) where d > 1 is the greatest common divisor
// of t's constant and all of its coefficients, or (0, Term{}, false) if
// that gcd is 1.
func (t Term) Factor() (int64, Term, bool) {
	d := absInt64(t.k)
	for _, c := range t.coeffs {
		d = gcdInt64(d, c)
		if d == 1 {
			return 0, Term{}, false
		}
	}
	if d == 0 || d == 1 {
		return 0, Term{}, false
	}
	return d, t.MapCoeff(func(c int64) int64 { return c / d }), true
}

// LeastAbsCoeff returns the variable whose coefficient has the smallest
// absolute value in t, its coefficient, and t with that variable removed.
// Ties are broken by Name.Less.
// ok is false for a Term with no variables.
func (t Term) LeastAbsCoeff() (coeff int64, name Name, rest Term, ok bool) {
	vars := t.Vars()
	if len(vars) == 0 {
		return 0, Name{}, Term{}, false
	}
	best := vars[0]
	for _, x := range vars[1:] {
		if absInt64(t.coeffs[x]) < absInt64(t.coeffs[best]) {
			best = x
		}
	}
	c, r := t.SplitVar(best)
	return c, best, r, true
}

// LeastVar returns the smallest Name present in t.
func (t Term) LeastVar() (Name, bool) {
	vars := t.Vars()
	if len(vars) == 0 {
		return Name{}, false
	}
	return vars[0], true
}

// IsOneVar returns (const, coeff, name, true) iff t has exactly one
// variable.
func (t Term) IsOneVar() (k int64, coeff int64, name Name, ok bool) {
	vars := t.Vars()
	if len(vars) != 1 {
		return 0, 0, Name{}, false
	}
	return t.k, t.coeffs[vars[0]], vars[0], true
}

// GetSimpleCoeff returns a variable whose coefficient is ±1, its
// coefficient, and t with that variable removed. The least Name among the
// ±1-coefficient variables is chosen, for determinism.
func (t Term) GetSimpleCoeff() (coeff int64, name Name, rest Term, ok bool) {
	vars := t.Vars()
	for _, x := range vars {
		if c := t.coeffs[x]; c == 1 || c == -1 {
			cc, r := t.SplitVar(x)
			return cc, x, r, true
		}
	}
	return 0, Name{}, Term{}, false
}

// MapCoeff applies f to t's constant and to every coefficient, dropping
// any variable whose mapped coefficient becomes 0 (preserving the
// zero-free invariant).
func (t Term) MapCoeff(f func(int64) int64) Term {
	m := make(map[Name]int64, len(t.coeffs))
	for x, c := range t.coeffs {
		if nc := f(c); nc != 0 {
			m[x] = nc
		}
	}
	return Term{k: f(t.k), coeffs: m}
}

// Equal reports whether t and other denote the same linear expression.
func (t Term) Equal(other Term) bool {
	if t.k != other.k || len(t.coeffs) != len(other.coeffs) {
		return false
	}
	for x, c := range t.coeffs {
		if other.coeffs[x] != c {
			return false
		}
	}
	return true
}

// String renders t deterministically, e.g. "3x1 + 2x2 - 5", ordered by
// Name ascending.
func (t Term) String() string {
	var b strings.Builder
	first := true
	for _, x := range t.Vars() {
		c := t.coeffs[x]
		writeTerm(&b, c, x.String(), &first)
	}
	if t.k != 0 || first {
		writeConst(&b, t.k, &first)
	}
	return b.String()
}

func writeTerm(b *strings.Builder, c int64, name string, first *bool) {
	sign := "+"
	abs := c
	if c < 0 {
		sign = "-"
		abs = -c
	}
	if *first {
		if c < 0 {
			b.WriteString("-")
		}
		*first = false
	} else {
		fmt.Fprintf(b, " %s ", sign)
	}
	if abs == 1 {
		b.WriteString(name)
	} else {
		fmt.Fprintf(b, "%d%s", abs, name)
	}
}

func writeConst(b *strings.Builder, k int64, first *bool) {
	if *first {
		fmt.Fprintf(b, "%d", k)
		*first = false
		return
	}
	if k < 0 {
		fmt.Fprintf(b, " - %d", -k)
	} else {
		fmt.Fprintf(b, " + %d", k)
	}
}
