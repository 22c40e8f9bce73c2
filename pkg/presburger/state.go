package presburger

import "github.com/sirupsen/logrus"

// State is the solver's monad: the
// inert store, a monotone fresh-name counter, and (transiently, within a
// single AssertProp call) a FIFO work queue. Deferred shadow disjunctions
// are never retained across calls — each AssertProp call returns its own
// disjunctions and State itself carries none between calls.
//
// State is a small value type wrapping three pointers (store, alloc,
// pending) and a logger. Two
// States produced by assigning one to another (or by passing by value)
// share the same underlying store and will observe each other's
// mutations; use Clone to get an independently evolvable copy before
// speculative branching.
type State struct {
	store   *inertStore
	alloc   *nameAllocator
	log     *logrus.Logger
	pending *int
}

// EmptyPropSet returns the initial solver state.
func EmptyPropSet() State {
	pending := 0
	return State{
		store:   newInertStore(),
		alloc:   &nameAllocator{},
		pending: &pending,
	}
}

// Clone returns an independent copy of s: the inert store is deep-copied
// and the fresh-name counter's current value is carried over (so cloned
// branches never collide on system names), but the two States no longer
// share mutations. This is the primitive the external branching driver
// uses to explore each ShadowDisjunction alternative.
func (s State) Clone() State {
	allocCopy := *s.alloc
	pendingCopy := *s.pending
	return State{store: s.store.clone(), alloc: &allocCopy, log: s.log, pending: &pendingCopy}
}

// ResolveDisjunction tells s that the caller has committed to, and
// successfully asserted, one alternative of a previously returned
// ShadowDisjunction. GetModel refuses to run while any disjunction
// remains unresolved.
func (s State) ResolveDisjunction() {
	if *s.pending > 0 {
		*s.pending--
	}
}

// UnresolveDisjunction is the inverse of ResolveDisjunction: it re-marks one
// disjunction as outstanding. It exists for branching drivers that commit to
// an alternative, discover (deeper in the search) that it does not lead to a
// full solution, and back it out via Restore — Restore rewinds the inert
// store's trail but has no way to know which ResolveDisjunction calls were
// made after the snapshot it is rewinding to, so the driver must undo them
// itself.
func (s State) UnresolveDisjunction() {
	*s.pending++
}

// Snapshot marks a point the caller can later Restore to, for undo that is
// cheaper than Clone when no branching is needed. Snapshot/Restore operate on the SAME underlying store as s;
// they do not give the caller two independent futures the way Clone does.
func (s State) Snapshot() int {
	return s.store.snapshot()
}

// Restore undoes every change made to s's store since mark.
func (s State) Restore(mark int) {
	s.store.restore(mark)
}

// AssertProp adds prop (with its provenance) to s and drains the
// resulting work queue. On
// contradiction, s's underlying store is rolled back to its pre-call
// state and a *ContradictionError is returned. Otherwise it returns the list of
// deferred shadow disjunctions produced while draining the queue; at
// least one sub-goal list from each must be asserted by the caller (via a
// cloned State) for the branch to be considered discharged.
func (s State) AssertProp(prov Provenance, prop Prop) ([]ShadowDisjunction, error) {
	mark := s.Snapshot()
	s.store.recordUserVars(prop.term.Vars())

	queue := []ProvenProp{{Prov: prov, Prop: prop}}
	var deferred []ShadowDisjunction

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		rewritten, rewrittenProv := s.store.applySubst(item)
		item = ProvenProp{Prov: rewrittenProv, Prop: rewritten}

		if item.Prop.IsEquality() {
			kicked, err := s.solveEq(item)
			if err != nil {
				s.Restore(mark)
				return nil, err
			}
			queue = append(queue, kicked...)
			continue
		}

		newWork, ds, err := s.solveIneq(item)
		if err != nil {
			s.Restore(mark)
			return nil, err
		}
		queue = append(queue, newWork...)
		deferred = append(deferred, ds...)
	}

	*s.pending += len(deferred)
	return deferred, nil
}
