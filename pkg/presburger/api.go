package presburger

// SubstBatch replaces every variable named in assignment by its integer
// value in t. Unlisted variables are
// left alone.
func (t Term) SubstBatch(assignment map[Name]int64) Term {
	for _, x := range t.Vars() {
		if k, ok := assignment[x]; ok {
			t = t.LetNum(x, k)
		}
	}
	return t
}

// Apply extracts the Model's assignment as a map keyed by Literal, for
// callers that want lookups instead of the sorted Assignment slice.
func (m Model) Apply() map[Literal]int64 {
	out := make(map[Literal]int64, len(m))
	for _, a := range m {
		out[a.Literal] = a.Value
	}
	return out
}
