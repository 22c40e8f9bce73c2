package presburger

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the inert store for debugging: one line per solved definition and one line per bound,
// ordered by Name for determinism.
func (s State) String() string {
	var b strings.Builder

	names := make([]Name, 0, len(s.store.solved))
	for x := range s.store.solved {
		names = append(names, x)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Less(names[j]) })
	for _, x := range names {
		entry := s.store.solved[x]
		fmt.Fprintf(&b, "%s := %s  [%s]\n", x, entry.T, entry.Prov)
	}

	boundNames := make([]Name, 0, len(s.store.bounds))
	for x := range s.store.bounds {
		boundNames = append(boundNames, x)
	}
	sort.Slice(boundNames, func(i, j int) bool { return boundNames[i].Less(boundNames[j]) })
	for _, x := range boundNames {
		bp := s.store.boundsOf(x)
		for _, l := range bp.lowers {
			fmt.Fprintf(&b, "%s < %d*%s  [%s]\n", l.T, l.C, x, l.Prov)
		}
		for _, u := range bp.uppers {
			fmt.Fprintf(&b, "%d*%s < %s  [%s]\n", u.C, x, u.T, u.Prov)
		}
	}

	return b.String()
}

// String renders a ShadowDisjunction as "dark | gray1 | gray2 | ...".
func (d ShadowDisjunction) String() string {
	parts := make([]string, len(d.Alternatives))
	for i, alt := range d.Alternatives {
		atoms := make([]string, len(alt))
		for j, pp := range alt {
			atoms[j] = pp.Prop.String()
		}
		parts[i] = strings.Join(atoms, " & ")
	}
	return strings.Join(parts, " | ")
}

// String renders a Model as "x1 = 2, x2 = -1".
func (m Model) String() string {
	parts := make([]string, len(m))
	for i, a := range m {
		parts[i] = fmt.Sprintf("x%d = %d", a.Literal, a.Value)
	}
	return strings.Join(parts, ", ")
}
