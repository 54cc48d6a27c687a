// Package cycle evaluates the two coupled power cycles of the AD-HTC plant:
// the biogas-fired gas turbine (Brayton) cycle and the process-heat steam
// (Rankine) cycle. Each evaluator consumes a flat Params record and returns
// an ordered sequence of state points plus the derived work and heat terms.
//
// Evaluations are pure: no shared state, no I/O, no retained references.
// Identical Params produce bit-identical results, and concurrent calls need
// no coordination. Every internal solver runs a fixed number of iterations,
// so an evaluation is cheap enough to rerun on every user action.
//
// Params.Validate is the one fail-fast boundary: domain violations return an
// error wrapping ErrInvalidParameter instead of being clamped, and no partial
// result is ever produced.
package cycle
