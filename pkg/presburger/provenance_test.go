package presburger

import "testing"

func TestProvenanceUnionIsAssociativeCommutativeIdempotent(t *testing.T) {
	a := SingletonProvenance(1)
	b := SingletonProvenance(2)
	c := SingletonProvenance(3)

	if a.Union(b).String() != b.Union(a).String() {
		t.Fatalf("Union not commutative")
	}
	left := a.Union(b).Union(c)
	right := a.Union(b.Union(c))
	if left.String() != right.String() {
		t.Fatalf("Union not associative: %s != %s", left, right)
	}
	if a.Union(a).String() != a.String() {
		t.Fatalf("Union not idempotent")
	}
}

func TestProvenanceEmptyIsIdentity(t *testing.T) {
	a := SingletonProvenance(5)
	if a.Union(EmptyProvenance).String() != a.String() {
		t.Fatalf("EmptyProvenance is not a Union identity")
	}
	if !EmptyProvenance.Empty() {
		t.Fatalf("EmptyProvenance.Empty() should be true")
	}
	if a.Empty() {
		t.Fatalf("SingletonProvenance(5).Empty() should be false")
	}
}

func TestProvenanceLiteralsSorted(t *testing.T) {
	p := SingletonProvenance(5).Union(SingletonProvenance(1)).Union(SingletonProvenance(3))
	want := []Literal{1, 3, 5}
	got := p.Literals()
	if len(got) != len(want) {
		t.Fatalf("Literals() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Literals() = %v, want %v", got, want)
		}
	}
}
