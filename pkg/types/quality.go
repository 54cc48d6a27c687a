package types

import (
	"fmt"
	"strconv"
)

// Quality is the vapor mass fraction of a two-phase steam state, or a
// single-phase marker for superheated/subcooled states where a fraction has
// no meaning. The zero value is the single-phase marker.
type Quality struct {
	x        float64
	twoPhase bool
}

// TwoPhase returns a Quality carrying the vapor fraction x.
func TwoPhase(x float64) Quality { return Quality{x: x, twoPhase: true} }

// SinglePhase returns the not-applicable marker.
func SinglePhase() Quality { return Quality{} }

// IsTwoPhase reports whether a vapor fraction is carried.
func (q Quality) IsTwoPhase() bool { return q.twoPhase }

// Value returns the vapor fraction and whether it applies.
func (q Quality) Value() (float64, bool) { return q.x, q.twoPhase }

// String renders the fraction with three decimals, or "-" for single-phase,
// matching the state-table column format.
func (q Quality) String() string {
	if !q.twoPhase {
		return "-"
	}
	return fmt.Sprintf("%.3f", q.x)
}

// MarshalJSON encodes the fraction as a number, or null for single-phase.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.twoPhase {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(q.x, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts a number or null, inverting MarshalJSON.
func (q *Quality) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*q = SinglePhase()
		return nil
	}
	x, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*q = TwoPhase(x)
	return nil
}
