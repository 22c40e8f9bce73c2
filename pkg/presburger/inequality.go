package presburger

import "fmt"

// solveIneq reduces the atom t < 0. Precondition:
// pt.Prop.term has already been rewritten by the current substitution.
// Returns new work (real shadows, solved immediately by being re-enqueued)
// and deferred ShadowDisjunctions, or a *ContradictionError.
func (s State) solveIneq(pt ProvenProp) ([]ProvenProp, []ShadowDisjunction, error) {
	prov := pt.Prov
	t := pt.Prop.term

	for {
		if k, ok := t.IsConst(); ok {
			if k < 0 {
				return nil, nil, nil
			}
			s.logger().WithFields(logFields{"const": k, "op": "solveIneq/constant"}).Debug("presburger: contradiction")
			return nil, nil, &ContradictionError{Prov: prov}
		}
		if _, reduced, ok := t.Factor(); ok {
			t = reduced
			continue
		}
		break
	}

	x, ok := t.LeastVar()
	if !ok {
		panic(fmt.Sprintf("presburger: unreachable solveIneq state for term %s", t))
	}
	xc, rest := t.SplitVar(x)

	var newWork []ProvenProp
	var deferred []ShadowDisjunction

	if xc < 0 {
		// -A*x + s < 0  <=>  s < A*x: a lower bound.
		a := -xc
		newBound := Bound{Prov: prov, C: a, T: rest}
		for _, u := range s.store.boundsOf(x).uppers {
			real, ds := shadowsFor(x, newBound, u)
			newWork = append(newWork, real)
			deferred = append(deferred, ds)
			s.logger().WithFields(logFields{"var": x.String(), "alternatives": len(ds.Alternatives), "op": "shadowsFor"}).Debug("presburger: generating shadow")
		}
		s.logger().WithFields(logFields{"var": x.String(), "side": "lower", "op": "solveIneq"}).Debug("presburger: installing bound")
		s.store.addLowerBound(x, newBound)
	} else {
		// A*x + s < 0  <=>  A*x < -s: an upper bound.
		a := xc
		newBound := Bound{Prov: prov, C: a, T: rest.Negate()}
		for _, l := range s.store.boundsOf(x).lowers {
			real, ds := shadowsFor(x, l, newBound)
			newWork = append(newWork, real)
			deferred = append(deferred, ds)
			s.logger().WithFields(logFields{"var": x.String(), "alternatives": len(ds.Alternatives), "op": "shadowsFor"}).Debug("presburger: generating shadow")
		}
		s.logger().WithFields(logFields{"var": x.String(), "side": "upper", "op": "solveIneq"}).Debug("presburger: installing bound")
		s.store.addUpperBound(x, newBound)
	}

	return newWork, deferred, nil
}
