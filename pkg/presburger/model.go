package presburger

import "sort"

// Assignment is one (user-name, integer) pair of an extracted model.
type Assignment struct {
	Literal Literal
	Value   int64
}

// Model is a total assignment over every user name that has appeared in
// an asserted proposition, sorted by Literal ascending. System names are
// never present.
type Model []Assignment

// GetModel extracts a satisfying integer assignment from a quiescent
// state. It returns ErrNoModel if any ShadowDisjunction
// returned by a prior AssertProp remains unresolved.
func GetModel(s State) (Model, error) {
	if *s.pending > 0 {
		return nil, ErrNoModel
	}

	assignment := make(map[Name]int64)

	// Largest to smallest: every bound term mentions only strictly greater
	// Names, so by the time we reach x every name in its bound terms
	// already has a value (or is free and read as 0).
	boundVars := make([]Name, 0, len(s.store.bounds))
	for x := range s.store.bounds {
		boundVars = append(boundVars, x)
	}
	sort.Slice(boundVars, func(i, j int) bool { return boundVars[j].Less(boundVars[i]) })

	for _, x := range boundVars {
		bp := s.store.boundsOf(x)
		assignment[x] = pickWithinBounds(bp, assignment)
	}

	// solved entries may be walked in any order: a solved key never
	// appears inside another inert term, so by the time we get here every
	// solved[x].T mentions only bound-assigned or wholly free (defaulted
	// to 0) names.
	for x, entry := range s.store.solved {
		assignment[x] = evalConst(entry.T, assignment)
	}

	out := make(Model, 0, len(s.store.seenUsers))
	for x := range s.store.seenUsers {
		lit, ok := FromName(x)
		if !ok {
			continue
		}
		out = append(out, Assignment{Literal: Literal(lit), Value: assignment[x]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Literal < out[j].Literal })
	return out, nil
}

// evalConst substitutes every known name in t with its assigned value and
// returns the resulting constant; any variable absent from assignment is
// treated as free and set to 0.
func evalConst(t Term, assignment map[Name]int64) int64 {
	k := t.Const()
	for _, x := range t.Vars() {
		v := assignment[x] // 0 if unassigned/free
		k += t.Coeff(x) * v
	}
	return k
}

// pickWithinBounds implements the model-extraction choice rule:
//
//	x = max over L of floor(const(l)/c) + 1,           if L nonempty
//	x = min over U of floor((const(u)-1)/c),           else if U nonempty
//	x = 0,                                             otherwise
func pickWithinBounds(bp boundPair, assignment map[Name]int64) int64 {
	if len(bp.lowers) > 0 {
		best := int64(0)
		for i, l := range bp.lowers {
			c := evalConst(l.T, assignment)
			cand := floorDiv(c, l.C) + 1
			if i == 0 || cand > best {
				best = cand
			}
		}
		return best
	}
	if len(bp.uppers) > 0 {
		best := int64(0)
		for i, u := range bp.uppers {
			c := evalConst(u.T, assignment)
			cand := floorDiv(c-1, u.C)
			if i == 0 || cand < best {
				best = cand
			}
		}
		return best
	}
	return 0
}
