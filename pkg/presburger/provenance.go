package presburger

import (
	"sort"
	"strconv"
	"strings"
)

// Literal is the opaque, totally ordered identifier a caller attaches to
// each asserted proposition.
// It carries no solver semantics; it exists purely so failures can name
// the user-supplied facts that caused them.
type Literal int64

// Provenance is an immutable set of Literals. It is metadata only: it
// never influences a solver decision, only what gets reported in an
// unsat core.
type Provenance struct {
	lits map[Literal]struct{}
}

// EmptyProvenance is the provenance of a fact with no user-asserted
// ancestry (e.g. an internally-derived tautology).
var EmptyProvenance = Provenance{}

// SingletonProvenance returns the provenance naming exactly l.
func SingletonProvenance(l Literal) Provenance {
	return Provenance{lits: map[Literal]struct{}{l: {}}}
}

// Union returns the provenance naming every literal in p or other.
// Associative, commutative, idempotent.
func (p Provenance) Union(other Provenance) Provenance {
	if len(p.lits) == 0 {
		return other
	}
	if len(other.lits) == 0 {
		return p
	}
	m := make(map[Literal]struct{}, len(p.lits)+len(other.lits))
	for l := range p.lits {
		m[l] = struct{}{}
	}
	for l := range other.lits {
		m[l] = struct{}{}
	}
	return Provenance{lits: m}
}

// Literals returns the provenance's members, sorted ascending, for
// deterministic reporting.
func (p Provenance) Literals() []Literal {
	out := make([]Literal, 0, len(p.lits))
	for l := range p.lits {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Empty reports whether p names no literals.
func (p Provenance) Empty() bool {
	return len(p.lits) == 0
}

// String renders p as "{1, 4, 7}".
func (p Provenance) String() string {
	lits := p.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = strconv.FormatInt(int64(l), 10)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
