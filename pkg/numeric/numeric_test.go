package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpson_ExactForCubics(t *testing.T) {
	// Simpson is exact for polynomials up to degree 3, even with the minimal
	// two subintervals.
	f := func(x float64) float64 { return x*x*x - 2*x*x + 3*x - 1 }
	// antiderivative: x^4/4 - 2x^3/3 + 3x^2/2 - x
	F := func(x float64) float64 { return x*x*x*x/4 - 2*x*x*x/3 + 3*x*x/2 - x }

	for _, n := range []int{2, 4, 200} {
		got := Simpson(f, 0, 2, n)
		require.InDelta(t, F(2)-F(0), got, 1e-12, "n=%d", n)
	}
}

func TestSimpson_WeightsMatchComposite(t *testing.T) {
	// Spell out the 1-4-2-4-1 weighting for n=4 and compare.
	f := math.Exp
	a, b := 0.0, 1.0
	h := (b - a) / 4
	want := h / 3 * (f(a) + 4*f(a+h) + 2*f(a+2*h) + 4*f(a+3*h) + f(b))
	assert.InDelta(t, want, Simpson(f, a, b, 4), 1e-15)
}

func TestSimpson_ReversedBoundsNegate(t *testing.T) {
	f := func(x float64) float64 { return 1 / x }
	fwd := Simpson(f, 1, math.E, 200)
	rev := Simpson(f, math.E, 1, 200)
	assert.InDelta(t, 1.0, fwd, 1e-9) // ln(e)
	assert.InDelta(t, -fwd, rev, 1e-15)
}

func TestBisect_FindsRoot(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	got := Bisect(f, 0, 2, 2, 80)
	require.InDelta(t, math.Sqrt2, got, 1e-12)
}

func TestBisect_OutOfBracketReturnsEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x }

	// Target above f(hi): every midpoint compares low, lo walks to hi.
	got := Bisect(f, 0, 1, 5, 60)
	assert.InDelta(t, 1.0, got, 1e-12)

	// Target below f(lo): hi walks to lo.
	got = Bisect(f, 0, 1, -5, 60)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestBisect_FixedIterationCount(t *testing.T) {
	// The resolution after k halvings is (hi-lo)/2^k regardless of target.
	f := func(x float64) float64 { return x }
	got := Bisect(f, 0, 1, 0.3, 10)
	assert.InDelta(t, 0.3, got, 1.0/(1<<10))
}

func TestBrackets(t *testing.T) {
	f := func(x float64) float64 { return 2 * x }
	assert.True(t, Brackets(f, 0, 1, 1))
	assert.True(t, Brackets(f, 0, 1, 0))
	assert.True(t, Brackets(f, 0, 1, 2))
	assert.False(t, Brackets(f, 0, 1, 2.0001))
	assert.False(t, Brackets(f, 0, 1, -0.0001))
}
