package presburger

import "github.com/sirupsen/logrus"

// solvedEntry is one row of the triangular substitution: x := T, derived
// from the user literals named by Prov.
type solvedEntry struct {
	Prov Provenance
	T    Term
}

// trailEntry is an undo record: before mutating a key, the store pushes
// the key's previous value onto the trail, so Restore can pop entries and
// put the old values straight back. This trails per-variable bound-list
// and solved-entry changes under the external branching driver's
// snapshot/restore.
type trailEntry struct {
	name Name

	touchedBounds bool
	prevBounds    boundPair

	touchedSolved bool
	hadSolved     bool
	prevSolved    solvedEntry

	addedSeenUser bool
}

// inertStore is the mutable inert store: a triangular substitution
// (solved) plus per-variable ordered bound lists (bounds), together kept
// free of cycles and zero-coefficient entries. It is mutated in place
// with an undo trail rather than rebuilt on every change — cheap to
// snapshot (an int) and cheap to restore (pop the trail).
type inertStore struct {
	bounds map[Name]boundPair
	solved map[Name]solvedEntry
	trail  []trailEntry
	log    *logrus.Logger

	// seenUsers records every user Name that has appeared in an asserted
	// proposition, so GetModel can report a total assignment even for variables that never accumulated a bound or a solved
	// entry.
	seenUsers map[Name]struct{}
}

func newInertStore() *inertStore {
	return &inertStore{
		bounds:    make(map[Name]boundPair),
		solved:    make(map[Name]solvedEntry),
		seenUsers: make(map[Name]struct{}),
		log:       discardLogger,
	}
}

func (s *inertStore) logger() *logrus.Logger {
	if s.log == nil {
		return discardLogger
	}
	return s.log
}

// recordUserVars marks every user Name in vars as seen. Each new addition
// is pushed onto the trail so a later restore can undo it along with
// everything else a short-circuited AssertProp did.
func (s *inertStore) recordUserVars(vars []Name) {
	for _, v := range vars {
		if v.IsSystem() {
			continue
		}
		if _, ok := s.seenUsers[v]; ok {
			continue
		}
		s.seenUsers[v] = struct{}{}
		s.trail = append(s.trail, trailEntry{name: v, addedSeenUser: true})
	}
}

// snapshot returns a mark that Restore can later roll back to.
func (s *inertStore) snapshot() int {
	return len(s.trail)
}

// restore undoes every change recorded since mark.
func (s *inertStore) restore(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		e := s.trail[i]
		if e.touchedBounds {
			if len(e.prevBounds.lowers) == 0 && len(e.prevBounds.uppers) == 0 {
				delete(s.bounds, e.name)
			} else {
				s.bounds[e.name] = e.prevBounds
			}
		}
		if e.touchedSolved {
			if e.hadSolved {
				s.solved[e.name] = e.prevSolved
			} else {
				delete(s.solved, e.name)
			}
		}
		if e.addedSeenUser {
			delete(s.seenUsers, e.name)
		}
	}
	s.trail = s.trail[:mark]
}

// clone returns a deep, independent copy of s, used by State.Clone for the
// external branching driver. Unlike restore, this is not
// trail-based: it is the primitive a branch point needs because the two
// branches must evolve independently going forward, not merely roll back
// to a shared past.
func (s *inertStore) clone() *inertStore {
	c := newInertStore()
	c.log = s.log
	for x, bp := range s.bounds {
		c.bounds[x] = bp.clone()
	}
	for x, e := range s.solved {
		c.solved[x] = e
	}
	for x := range s.seenUsers {
		c.seenUsers[x] = struct{}{}
	}
	return c
}

func (s *inertStore) boundsOf(x Name) boundPair {
	return s.bounds[x]
}

// pushBoundsChange records the current bound list for x before the caller
// mutates it.
func (s *inertStore) pushBoundsChange(x Name) {
	s.trail = append(s.trail, trailEntry{name: x, touchedBounds: true, prevBounds: s.bounds[x].clone()})
}

// pushSolvedChange records the current solved entry (if any) for x before
// the caller mutates it.
func (s *inertStore) pushSolvedChange(x Name) {
	prev, had := s.solved[x]
	s.trail = append(s.trail, trailEntry{name: x, touchedSolved: true, hadSolved: had, prevSolved: prev})
}

func (s *inertStore) addLowerBound(x Name, b Bound) {
	s.pushBoundsChange(x)
	bp := s.bounds[x]
	bp.lowers = append(append([]Bound(nil), bp.lowers...), b)
	s.bounds[x] = bp
}

func (s *inertStore) addUpperBound(x Name, b Bound) {
	s.pushBoundsChange(x)
	bp := s.bounds[x]
	bp.uppers = append(append([]Bound(nil), bp.uppers...), b)
	s.bounds[x] = bp
}

// applySubst rewrites t by every (x -> s) in the solved substitution,
// accumulating the provenance of each solved entry used. solved is kept
// idempotent, so a single left-to-right pass would normally suffice;
// applySubst iterates to a fixpoint anyway, bounded by len(solved)+1
// passes.
func (s *inertStore) applySubst(pt ProvenProp) (Prop, Provenance) {
	t := pt.Prop.term
	prov := pt.Prov
	for iter := 0; iter <= len(s.solved); iter++ {
		changed := false
		for _, x := range t.Vars() {
			entry, ok := s.solved[x]
			if !ok {
				continue
			}
			t = t.Let(x, entry.T)
			prov = prov.Union(entry.Prov)
			changed = true
		}
		if !changed {
			break
		}
	}
	if pt.Prop.kind == eq0Kind {
		return Eq0(t), prov
	}
	return Lt0(t), prov
}

func (s *inertStore) applyTermSubst(t Term) (Term, Provenance) {
	p, prov := s.applySubst(ProvenProp{Prop: Eq0(t)})
	return p.term, prov
}

// kickOutVar removes every bound on x (both sides) and returns them as
// fresh inequality propositions to be re-solved.
func (s *inertStore) kickOutVar(x Name) []ProvenProp {
	bp, ok := s.bounds[x]
	if !ok {
		return nil
	}
	s.pushBoundsChange(x)
	var out []ProvenProp
	for _, b := range bp.lowers {
		out = append(out, b.asProp(x, Lower))
	}
	for _, b := range bp.uppers {
		out = append(out, b.asProp(x, Upper))
	}
	delete(s.bounds, x)
	s.logger().WithFields(logFields{"var": x.String(), "count": len(out), "op": "kickOutVar"}).Debug("presburger: kicking out bounds")
	return out
}

// kickOutMentioning removes, from every OTHER variable's bound list, any
// bound whose term mentions x, returning them as fresh inequalities. This
// keeps the triangular ordering intact when a definition for x is
// installed out of order: a bound surviving in place could now mention a
// variable (x) that is no longer strictly greater than the bound's own
// variable once x's term is substituted in elsewhere.
func (s *inertStore) kickOutMentioning(x Name) []ProvenProp {
	var out []ProvenProp
	for y, bp := range s.bounds {
		keep := boundPair{}
		touched := false
		for _, b := range bp.lowers {
			if b.T.Coeff(x) != 0 {
				out = append(out, b.asProp(y, Lower))
				touched = true
			} else {
				keep.lowers = append(keep.lowers, b)
			}
		}
		for _, b := range bp.uppers {
			if b.T.Coeff(x) != 0 {
				out = append(out, b.asProp(y, Upper))
				touched = true
			} else {
				keep.uppers = append(keep.uppers, b)
			}
		}
		if touched {
			s.pushBoundsChange(y)
			s.bounds[y] = keep
		}
	}
	s.logger().WithFields(logFields{"var": x.String(), "count": len(out), "op": "kickOutMentioning"}).Debug("presburger: kicking out bounds")
	return out
}

// addSolved installs x := t (precondition: t already substitution-applied),
// performing the full install sequence: kick out x's own bounds, kick out
// any other bound mentioning x, rewrite every existing solved[y] by
// substituting x, then insert (x, (prov, t)). Returns every kicked-out
// inequality, each paired with the union of prov and the bound's original
// provenance.
func (s *inertStore) addSolved(prov Provenance, x Name, t Term) []ProvenProp {
	var kicked []ProvenProp

	for _, pp := range s.kickOutVar(x) {
		kicked = append(kicked, ProvenProp{Prov: pp.Prov.Union(prov), Prop: pp.Prop})
	}
	for _, pp := range s.kickOutMentioning(x) {
		kicked = append(kicked, ProvenProp{Prov: pp.Prov.Union(prov), Prop: pp.Prop})
	}

	for y, entry := range s.solved {
		if entry.T.Coeff(x) == 0 {
			continue
		}
		s.pushSolvedChange(y)
		s.solved[y] = solvedEntry{Prov: entry.Prov.Union(prov), T: entry.T.Let(x, t)}
	}

	s.pushSolvedChange(x)
	s.solved[x] = solvedEntry{Prov: prov, T: t}

	return kicked
}
