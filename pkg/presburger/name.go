package presburger

import "fmt"

// nameKind partitions Name into two disjoint namespaces: names supplied
// by the caller (user) and names allocated internally by the Omega
// modulus trick (system).
type nameKind uint8

const (
	userNameKind nameKind = iota
	systemNameKind
)

// Name is a totally ordered, opaque variable identifier. Every Term,
// Bound and solved-equation key is a Name. User names and system names
// never collide: any system name sorts strictly larger than every user
// name that has ever existed, not merely the ones present at allocation
// time, which keeps the order simple and deterministic.
//
// Name is a small value type, safe to use as a map key and to compare
// with ==.
type Name struct {
	kind nameKind
	id   int64
}

// UserName converts a caller-supplied literal integer into the Name used
// internally by the solver. Calling UserName with the same i always
// yields an equal Name, so callers may call it repeatedly for the same
// logical variable.
func UserName(i int64) Name {
	return Name{kind: userNameKind, id: i}
}

// FromName returns the user literal underlying n, and false if n is a
// system name.
func FromName(n Name) (int64, bool) {
	if n.kind != userNameKind {
		return 0, false
	}
	return n.id, true
}

// IsSystem reports whether n was allocated internally rather than supplied
// by the caller.
func (n Name) IsSystem() bool {
	return n.kind == systemNameKind
}

// Less implements Name's total order: all user names compare by id; all
// system names compare by id; every user name is strictly less than
// every system name.
func (n Name) Less(other Name) bool {
	if n.kind != other.kind {
		return n.kind < other.kind
	}
	return n.id < other.id
}

// String renders a Name for debugging and pretty-printing.
func (n Name) String() string {
	if n.kind == systemNameKind {
		return fmt.Sprintf("_s%d", n.id)
	}
	return fmt.Sprintf("x%d", n.id)
}

// nameAllocator hands out monotonically increasing system names. It never
// retires a name.
type nameAllocator struct {
	next int64
}

func (a *nameAllocator) fresh() Name {
	n := Name{kind: systemNameKind, id: a.next}
	a.next++
	return n
}
