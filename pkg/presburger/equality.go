package presburger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type logFields = logrus.Fields

// solveEq reduces the atom t = 0. Precondition:
// pt.Prop.term has already been rewritten by the current substitution.
// Returns the inequalities kicked out by any definition installed along
// the way (to be fed back into the assertProp work queue), or a
// *ContradictionError.
func (s State) solveEq(pt ProvenProp) ([]ProvenProp, error) {
	prov := pt.Prov
	t := pt.Prop.term
	var kicked []ProvenProp

	for {
		// Case 1: constant.
		if k, ok := t.IsConst(); ok {
			if k == 0 {
				return kicked, nil
			}
			s.logger().WithFields(logFields{"const": k, "op": "solveEq/constant"}).Debug("presburger: contradiction")
			return nil, &ContradictionError{Prov: prov}
		}

		// Case 2: exactly one variable, a + b*x = 0.
		if a, b, x, ok := t.IsOneVar(); ok {
			if a%b != 0 {
				s.logger().WithFields(logFields{"var": x.String(), "a": a, "b": b, "op": "solveEq/singleVar"}).Debug("presburger: contradiction")
				return nil, &ContradictionError{Prov: prov}
			}
			s.logger().WithFields(logFields{"var": x.String(), "op": "solveEq/singleVar"}).Debug("presburger: installing definition")
			kicked = append(kicked, s.store.addSolved(prov, x, ConstTerm(-a/b))...)
			return kicked, nil
		}

		// Case 3: some variable has coefficient +-1.
		if c, x, rest, ok := t.GetSimpleCoeff(); ok {
			def := rest.ScalarMul(-c)
			s.logger().WithFields(logFields{"var": x.String(), "op": "solveEq/unitCoeff"}).Debug("presburger: installing definition")
			kicked = append(kicked, s.store.addSolved(prov, x, def)...)
			return kicked, nil
		}

		// Case 4: common factor d > 1.
		if _, reduced, ok := t.Factor(); ok {
			t = reduced
			continue
		}

		// Case 5: Omega modulus trick.
		c, xk, rest, ok := t.LeastAbsCoeff()
		if !ok {
			panic(fmt.Sprintf("presburger: unreachable solveEq state for term %s", t))
		}
		m := absInt64(c) + 1
		v := s.alloc.fresh()
		sgn := int64(1)
		if c < 0 {
			sgn = -1
		}

		def := VarTerm(v).ScalarMul(-sgn * m).Add(rest.MapCoeff(func(ci int64) int64 {
			return sgn * symMod(ci, m)
		}))

		s.logger().WithFields(logFields{"var": xk.String(), "fresh": v.String(), "modulus": m, "op": "solveEq/omegaTrick"}).
			Debug("presburger: applying Omega modulus trick")

		kicked = append(kicked, s.store.addSolved(prov, xk, def)...)

		newRest := rest.MapCoeff(func(ci int64) int64 {
			return floorDiv(2*ci+m, 2*m) + symMod(ci, m)
		})
		t = VarTerm(v).ScalarMul(-absInt64(c)).Add(newRest)
	}
}
