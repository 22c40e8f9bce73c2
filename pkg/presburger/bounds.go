package presburger

// Side distinguishes a lower bound (t < c·x) from an upper bound
// (c·x < t) on a variable.
type Side uint8

const (
	Lower Side = iota
	Upper
)

// Bound is a triple (Prov, C, T) attached to a variable and a Side:
//
//	Lower: T < C·x
//	Upper: C·x < T
//
// C is always >= 1.
type Bound struct {
	Prov Provenance
	C    int64
	T    Term
}

// boundPair holds the lower and upper bound lists for one variable, kept
// in insertion order: shadow generation needs a deterministic FIFO order,
// not sortedness, and insertion order already gives that.
type boundPair struct {
	lowers []Bound
	uppers []Bound
}

func (bp boundPair) clone() boundPair {
	return boundPair{
		lowers: append([]Bound(nil), bp.lowers...),
		uppers: append([]Bound(nil), bp.uppers...),
	}
}

// asProp reconstructs the inequality atom a Bound represents on the given
// side, attached to variable x — used when a bound is kicked out and must
// re-enter the work queue as a fresh Lt0 proposition.
func (b Bound) asProp(x Name, side Side) ProvenProp {
	switch side {
	case Lower:
		// t < c·x  <=>  t - c·x < 0
		return ProvenProp{Prov: b.Prov, Prop: Lt0(b.T.Sub(VarTerm(x).ScalarMul(b.C)))}
	default:
		// c·x < t  <=>  c·x - t < 0
		return ProvenProp{Prov: b.Prov, Prop: Lt0(VarTerm(x).ScalarMul(b.C).Sub(b.T))}
	}
}
