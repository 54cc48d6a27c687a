// Package numeric holds the two numerical routines the property tables share:
// a composite Simpson integrator and a fixed-iteration bisection root finder.
package numeric

// Simpson integrates f over [a, b] with the composite Simpson rule using n
// subintervals (n must be even and positive). Endpoints weigh 1, odd interior
// nodes weigh 4, even interior nodes weigh 2, all scaled by step/3. The step
// sign follows b-a, so integrating backwards yields the negated integral.
func Simpson(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}

// Bisect finds x in [lo, hi] with f(x) ~= target for monotonically increasing
// f. It halves the bracket exactly iters times and returns the final midpoint,
// so cost and result are reproducible. A target outside [f(lo), f(hi)]
// silently converges toward the nearer bracket endpoint; callers that need to
// know should check Brackets first.
func Bisect(f func(float64) float64, lo, hi, target float64, iters int) float64 {
	for i := 0; i < iters; i++ {
		mid := (lo + hi) / 2
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Brackets reports whether target lies within [f(lo), f(hi)] for increasing f,
// i.e. whether a Bisect over the same bracket can actually reach it.
func Brackets(f func(float64) float64, lo, hi, target float64) bool {
	return f(lo) <= target && target <= f(hi)
}
