// Package gas provides ideal-gas property functions for air and lean
// combustion-gas mixtures using a quartic cp(T) polynomial. Enthalpy and
// entropy are Simpson-integrated from the polynomial, so all properties stay
// mutually consistent. Every function is pure and total over positive
// temperatures and pressures; nothing here errors.
package gas

import (
	"math"

	"github.com/energhx/adhtc/pkg/numeric"
)

// R is the specific gas constant for air, kJ/(kg·K).
const R = 0.287

const (
	refTemp     = 298.15  // entropy reference, K
	refPressure = 101.325 // entropy reference, kPa

	// Enthalpy integration starts here instead of 0 K so the first Simpson
	// step never has zero width.
	floorTemp = 1.0

	intervals = 200
)

// Cp returns the specific heat at constant pressure in kJ/(kg·K) at T kelvin.
// The polynomial is fitted over roughly 250-2000 K; outside that band it is
// evaluated as-is and the caller owns the accuracy loss.
func Cp(T float64) float64 {
	t := T / 1000
	return 1.0483 - 0.3717*t + 0.9483*t*t - 0.6271*t*t*t + 0.1507*t*t*t*t
}

// Enthalpy returns the specific enthalpy in kJ/kg relative to 0 K.
func Enthalpy(T float64) float64 {
	if T <= floorTemp {
		return 0
	}
	return numeric.Simpson(Cp, floorTemp, T, intervals)
}

// Entropy returns the specific entropy in kJ/(kg·K) relative to 298.15 K and
// 101.325 kPa. Temperatures below the reference integrate with a negative
// step and come out negative.
func Entropy(T, P float64) float64 {
	thermal := numeric.Simpson(func(t float64) float64 { return Cp(t) / t }, refTemp, T, intervals)
	return thermal - R*math.Log(P/refPressure)
}

// IsentropicTemperature returns T2 such that Entropy(T2, P2) equals
// Entropy(T1, P1), bisected over [0.4·T1, 3.5·T1] for 80 iterations. A root
// outside that bracket yields an approximate answer, not an error; realistic
// compression/expansion ratios stay well inside it.
func IsentropicTemperature(T1, P1, P2 float64) float64 {
	target := Entropy(T1, P1)
	s := func(T float64) float64 { return Entropy(T, P2) }
	return numeric.Bisect(s, 0.4*T1, 3.5*T1, target, 80)
}

// Gamma returns the ratio of specific heats cp/cv at T.
func Gamma(T float64) float64 {
	c := Cp(T)
	return c / (c - R)
}

// MeanCp returns the enthalpy-averaged specific heat over [T1, T2],
// (h(T2)-h(T1))/(T2-T1).
func MeanCp(T1, T2 float64) float64 {
	if T1 == T2 {
		return Cp(T1)
	}
	return (Enthalpy(T2) - Enthalpy(T1)) / (T2 - T1)
}

// MeanGamma returns the specific-heat ratio built from MeanCp over [T1, T2].
func MeanGamma(T1, T2 float64) float64 {
	c := MeanCp(T1, T2)
	return c / (c - R)
}
