package presburger

// ShadowDisjunction is a deferred work item produced by the inequality
// solver when it pairs a new bound with an existing opposing bound.
// At least one Alternative must be assertable
// for the branch that produced it to be completable; Alternatives[0] is
// always the dark shadow, and Alternatives[1:] are the gray shadow cases
// b*x = beta+i for i = 1..b-1 (so len(Alternatives) == 1 when b == 1: the
// dark shadow alone, no gray cases). Exploring these is the job of an
// external DPLL-style case splitter; the core solver only
// produces and reports them.
type ShadowDisjunction struct {
	Alternatives [][]ProvenProp
}

// shadowsFor computes the real shadow (returned directly, to be solved
// immediately) and the dark/gray ShadowDisjunction (deferred) for a lower
// bound (beta < b*x) paired with an upper bound (a*x < alpha) on the same
// variable x.
func shadowsFor(x Name, lower, upper Bound) (ProvenProp, ShadowDisjunction) {
	a := upper.C
	b := lower.C
	alpha := upper.T
	beta := lower.T
	pairProv := lower.Prov.Union(upper.Prov)

	// real shadow: a*beta < b*alpha, i.e. a*beta - b*alpha < 0.
	real := ProvenProp{
		Prov: pairProv,
		Prop: Lt0(beta.ScalarMul(a).Sub(alpha.ScalarMul(b))),
	}

	// dark shadow: a*b < b*alpha - a*beta, i.e. a*b - (b*alpha - a*beta) < 0.
	dark := []ProvenProp{{
		Prov: pairProv,
		Prop: Lt0(ConstTerm(a * b).Sub(alpha.ScalarMul(b).Sub(beta.ScalarMul(a)))),
	}}

	alternatives := [][]ProvenProp{dark}
	for i := int64(1); i < b; i++ {
		alternatives = append(alternatives, []ProvenProp{{
			Prov: pairProv,
			Prop: Eq0(VarTerm(x).ScalarMul(b).Sub(beta).Sub(ConstTerm(i))),
		}})
	}

	return real, ShadowDisjunction{Alternatives: alternatives}
}
