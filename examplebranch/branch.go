// Package examplebranch is a demonstration DPLL-style case splitter for the
// ShadowDisjunctions that presburger.State.AssertProp defers to its caller.
// The core solver deliberately does not explore these itself (the dark/gray
// shadow is branching work, not solving work); this package is one
// reasonable way to drive that exploration, not part of the solver's
// contract.
//
// The search strategy is depth-first with backtracking via
// presburger.State's Snapshot/Restore trail: each outstanding disjunction
// becomes a frame recording a rewind mark and the alternatives left to
// try.
package examplebranch

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/go-presburger/presburger/pkg/presburger"
)

// Driver explores deferred disjunctions against a single, shared
// presburger.State, trying alternatives depth-first and backtracking with
// Snapshot/Restore rather than cloning the whole store per branch.
type Driver struct {
	Log *logrus.Logger
}

// NewDriver returns a Driver that logs to logger, or discards its logging
// if logger is nil.
func NewDriver(logger *logrus.Logger) *Driver {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(discardWriter{})
	}
	return &Driver{Log: logger}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Discharge attempts to find, for every disjunction in ds, one alternative
// that can be asserted against s without contradiction — recursively, since
// asserting an alternative may itself defer further disjunctions. On
// success it returns s with every disjunction resolved (ResolveDisjunction
// called exactly once per original entry in ds, directly or transitively).
// On failure it returns a *multierror.Error folding every contradiction
// encountered along the way, in the style this package's teacher module
// used for aggregating per-branch search state.
func (d *Driver) Discharge(s presburger.State, ds []presburger.ShadowDisjunction) (presburger.State, error) {
	if len(ds) == 0 {
		return s, nil
	}
	head, rest := ds[0], ds[1:]

	var errs error
	for i, alt := range head.Alternatives {
		mark := s.Snapshot()

		newDs, err := d.assertAll(s, alt)
		if err != nil {
			d.Log.WithFields(logrus.Fields{"alternative": i, "alternatives": len(head.Alternatives)}).
				Debug("examplebranch: alternative rejected")
			errs = multierror.Append(errs, err)
			s.Restore(mark)
			continue
		}

		s.ResolveDisjunction()
		combined := make([]presburger.ShadowDisjunction, 0, len(newDs)+len(rest))
		combined = append(combined, newDs...)
		combined = append(combined, rest...)

		final, err := d.Discharge(s, combined)
		if err == nil {
			return final, nil
		}

		errs = multierror.Append(errs, err)
		s.Restore(mark)
		s.UnresolveDisjunction()
		// Restore does not touch the pending counter, so take back the
		// disjunctions this alternative's assertions added to it.
		for range newDs {
			s.ResolveDisjunction()
		}
	}

	return presburger.State{}, fmt.Errorf("examplebranch: exhausted %d alternative(s): %w", len(head.Alternatives), errs)
}

// assertAll asserts every sub-goal of one disjunction alternative in order,
// returning the first contradiction encountered or the union of every
// further disjunction any of them deferred.
func (d *Driver) assertAll(s presburger.State, goals []presburger.ProvenProp) ([]presburger.ShadowDisjunction, error) {
	var out []presburger.ShadowDisjunction
	for _, pp := range goals {
		ds, err := s.AssertProp(pp.Prov, pp.Prop)
		if err != nil {
			return nil, err
		}
		out = append(out, ds...)
	}
	return out, nil
}
