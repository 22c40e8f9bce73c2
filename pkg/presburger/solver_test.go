package presburger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// scenario 1: trivial sat.
func TestAssertPropTrivialSat(t *testing.T) {
	s := EmptyPropSet()
	ds, err := s.AssertProp(SingletonProvenance(1), LessProp(ConstTerm(3), ConstTerm(5)))
	require.NoError(t, err)
	require.Empty(t, ds)

	model, err := GetModel(s)
	require.NoError(t, err)
	require.Empty(t, model)
}

// scenario 2: trivial unsat.
func TestAssertPropTrivialUnsat(t *testing.T) {
	s := EmptyPropSet()
	_, err := s.AssertProp(SingletonProvenance(1), LessProp(ConstTerm(5), ConstTerm(3)))
	require.Error(t, err)

	prov, ok := AsContradiction(err)
	require.True(t, ok)
	require.Equal(t, []Literal{1}, prov.Literals())
}

// scenario 3: linear equality.
func TestAssertPropLinearEquality(t *testing.T) {
	s := EmptyPropSet()
	x := UserName(1)
	ds, err := s.AssertProp(SingletonProvenance(1), EqualProp(VarTerm(x).ScalarMul(2), ConstTerm(4)))
	require.NoError(t, err)
	require.Empty(t, ds)

	model, err := GetModel(s)
	require.NoError(t, err)
	want := Model{{Literal: 1, Value: 2}}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

// scenario 4: fractional-unsat equality.
func TestAssertPropFractionalUnsatEquality(t *testing.T) {
	s := EmptyPropSet()
	x := UserName(1)
	_, err := s.AssertProp(SingletonProvenance(1), EqualProp(VarTerm(x).ScalarMul(2), ConstTerm(5)))
	require.Error(t, err)

	_, ok := AsContradiction(err)
	require.True(t, ok)
}

// scenario 5: two-variable integer range.
func TestAssertPropTwoVariableRange(t *testing.T) {
	s := EmptyPropSet()
	x, y := UserName(1), UserName(2)

	ds, err := s.AssertProp(SingletonProvenance(1), EqualProp(VarTerm(x).Add(VarTerm(y)), ConstTerm(10)))
	require.NoError(t, err)
	require.Empty(t, ds)

	ds, err = s.AssertProp(SingletonProvenance(2), EqualProp(VarTerm(x).Sub(VarTerm(y)), ConstTerm(0)))
	require.NoError(t, err)
	require.Empty(t, ds)

	model, err := GetModel(s)
	require.NoError(t, err)
	want := Model{{Literal: 1, Value: 5}, {Literal: 2, Value: 5}}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

// scenario 6: Omega modulus trick.
func TestAssertPropOmegaModulusTrick(t *testing.T) {
	s := EmptyPropSet()
	x, y := UserName(1), UserName(2)

	lhs := VarTerm(x).ScalarMul(3).Add(VarTerm(y).ScalarMul(5))
	ds, err := s.AssertProp(SingletonProvenance(1), EqualProp(lhs, ConstTerm(1)))
	require.NoError(t, err)
	require.Empty(t, ds)

	model, err := GetModel(s)
	require.NoError(t, err)
	vals := model.Apply()
	require.Contains(t, vals, Literal(1))
	require.Contains(t, vals, Literal(2))
	require.Equal(t, int64(1), 3*vals[1]+5*vals[2])
}

// scenario 7: bound combination producing a gray shadow.
func TestAssertPropGrayShadow(t *testing.T) {
	s := EmptyPropSet()
	x := UserName(1)

	ds, err := s.AssertProp(SingletonProvenance(1), LessProp(ConstTerm(1), VarTerm(x)))
	require.NoError(t, err)
	require.Empty(t, ds)

	ds, err = s.AssertProp(SingletonProvenance(2), LessProp(VarTerm(x), ConstTerm(4)))
	require.NoError(t, err)
	require.Len(t, ds, 1)

	disj := ds[0]
	require.GreaterOrEqual(t, len(disj.Alternatives), 1)

	// The caller must be able to pick some alternative and have it succeed
	// against a freshly cloned state, landing x in {2, 3}.
	satisfied := false
	for _, alt := range disj.Alternatives {
		branch := s.Clone()
		ok := true
		for _, pp := range alt {
			if _, err := branch.AssertProp(pp.Prov, pp.Prop); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		branch.ResolveDisjunction()
		model, err := GetModel(branch)
		if err != nil {
			continue
		}
		vals := model.Apply()
		if v, ok := vals[1]; ok && (v == 2 || v == 3) {
			satisfied = true
		}
	}
	require.True(t, satisfied, "expected at least one alternative to yield x in {2, 3}")
}

// scenario 8: contradiction via transitivity.
func TestAssertPropTransitivityContradiction(t *testing.T) {
	s := EmptyPropSet()
	x, y, z := UserName(1), UserName(2), UserName(3)

	ds, err := s.AssertProp(SingletonProvenance(1), LessProp(VarTerm(x), VarTerm(y)))
	require.NoError(t, err)
	require.Empty(t, ds)

	ds, err = s.AssertProp(SingletonProvenance(2), LessProp(VarTerm(y), VarTerm(z)))
	require.NoError(t, err)
	require.Empty(t, ds)

	_, err = s.AssertProp(SingletonProvenance(3), LessProp(VarTerm(z), VarTerm(x)))
	require.Error(t, err)

	prov, ok := AsContradiction(err)
	require.True(t, ok)
	require.Equal(t, []Literal{1, 2, 3}, prov.Literals())
}

// Contradiction must leave no trace: a failed AssertProp rolls the store
// back to its pre-call state.
func TestAssertPropRollsBackOnContradiction(t *testing.T) {
	s := EmptyPropSet()
	x := UserName(1)

	_, err := s.AssertProp(SingletonProvenance(1), EqualProp(VarTerm(x), ConstTerm(1)))
	require.NoError(t, err)

	before := s.String()

	_, err = s.AssertProp(SingletonProvenance(2), EqualProp(VarTerm(x), ConstTerm(2)))
	require.Error(t, err)

	require.Equal(t, before, s.String())

	model, err := GetModel(s)
	require.NoError(t, err)
	require.Equal(t, Model{{Literal: 1, Value: 1}}, model)
}

func TestGetModelRefusesWhilePending(t *testing.T) {
	s := EmptyPropSet()
	x := UserName(1)

	ds, err := s.AssertProp(SingletonProvenance(1), LessProp(ConstTerm(1), VarTerm(x)))
	require.NoError(t, err)
	require.Empty(t, ds)

	ds, err = s.AssertProp(SingletonProvenance(2), LessProp(VarTerm(x), ConstTerm(4)))
	require.NoError(t, err)
	require.NotEmpty(t, ds)

	_, err = GetModel(s)
	require.ErrorIs(t, err, ErrNoModel)
}
