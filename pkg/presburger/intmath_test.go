package presburger

import "testing"

func TestFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{0, 5, 0},
		{6, 3, 2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorModAlwaysNonNegativeForPositiveModulus(t *testing.T) {
	for a := int64(-10); a <= 10; a++ {
		for _, m := range []int64{1, 2, 3, 7} {
			r := floorMod(a, m)
			if r < 0 || r >= m {
				t.Fatalf("floorMod(%d, %d) = %d, out of range [0, %d)", a, m, r, m)
			}
			if (a-r)%m != 0 {
				t.Fatalf("floorMod(%d, %d) = %d does not divide evenly", a, m, r)
			}
		}
	}
}

func TestSymModInSymmetricRange(t *testing.T) {
	for a := int64(-15); a <= 15; a++ {
		for _, m := range []int64{1, 2, 3, 4, 7} {
			r := symMod(a, m)
			if r > m/2 || r < -(m/2) {
				// symMod must land in [-m/2, m/2)
				t.Fatalf("symMod(%d, %d) = %d outside [-%d/2, %d/2)", a, m, r, m, m)
			}
			if (a-r)%m != 0 {
				t.Fatalf("symMod(%d, %d) = %d does not differ from a by a multiple of m", a, m, r)
			}
		}
	}
}

func TestGcdInt64(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{12, 18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{-12, 18, 6},
		{7, 13, 1},
	}
	for _, c := range cases {
		if got := gcdInt64(c.a, c.b); got != c.want {
			t.Errorf("gcdInt64(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAbsInt64(t *testing.T) {
	if absInt64(-5) != 5 || absInt64(5) != 5 || absInt64(0) != 0 {
		t.Fatalf("absInt64 behaved unexpectedly")
	}
}
