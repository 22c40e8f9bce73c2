// Package presburger implements an online, proof-producing decision
// procedure for quantifier-free linear integer arithmetic (Presburger
// arithmetic over the integers).
//
// Propositions are asserted incrementally against a State:
//
//	s := presburger.EmptyPropSet()
//	ds, err := s.AssertProp(presburger.SingletonProvenance(1), presburger.EqualProp(x, presburger.ConstTerm(2)))
//
// AssertProp either returns a *ContradictionError naming the user
// literals at fault, or a (possibly empty) list of ShadowDisjunctions: at
// least one sub-goal list from each must be asserted, against a State
// cloned for that branch, for the overall conjunction to be discharged.
// Once no disjunctions remain outstanding, GetModel extracts a concrete
// integer assignment.
//
// The algorithm is Omega-test-style integer elimination augmented with
// the Berezin-Ganesh-Dill online variant: the real shadow is a necessary
// condition and is solved immediately; the dark/gray shadow disjunction is
// a sufficient condition and is returned to the caller as branching work,
// since choosing and exploring it is the job of an external DPLL-style
// case splitter, not this package.
//
// The solver is single-threaded and synchronous: no operation here
// blocks, and State is not safe for concurrent mutation from multiple
// goroutines. Concurrent solvers over disjoint States (obtained via
// Clone) are trivially independent.
package presburger
