// Package steam approximates water/steam properties with closed-form
// correlations and bisection searches. No steam-table library is involved:
// saturation temperature follows the IF97 region-4 backward equation, the
// remaining saturation and superheat properties are short engineering
// correlations anchored to it. Accuracy is engineering-grade. All functions
// are pure and none of them error; callers keep pressures and temperatures in
// the physical domain themselves.
package steam

import (
	"math"

	"github.com/energhx/adhtc/pkg/numeric"
)

// IF97 region-4 backward-equation coefficients n1..n10.
var satCoeff = [10]float64{
	1167.0521452767,
	-724213.16703206,
	-17.073846940092,
	12020.82470247,
	-3232555.0322333,
	14.91510861353,
	-4823.2657361591,
	405113.40542057,
	-0.23855557567849,
	650.17534844798,
}

// SatTemperature returns the saturation temperature in kelvin at pressure P
// in kPa. Closed form, no iteration.
func SatTemperature(P float64) float64 {
	p := P / 1000 // MPa
	beta := math.Pow(p, 0.25)
	e := beta*beta + satCoeff[2]*beta + satCoeff[5]
	f := satCoeff[0]*beta*beta + satCoeff[3]*beta + satCoeff[6]
	g := satCoeff[1]*beta*beta + satCoeff[4]*beta + satCoeff[7]
	d := 2 * g / (-f - math.Sqrt(f*f-4*e*g))
	n9, n10 := satCoeff[8], satCoeff[9]
	return (n10 + d - math.Sqrt((n10+d)*(n10+d)-4*(n9+n10*d))) / 2
}

// SatPressure inverts SatTemperature by bisection over [0.5, 25000] kPa for
// 60 iterations. T outside the correlation's range converges silently to a
// bracket endpoint.
func SatPressure(T float64) float64 {
	return numeric.Bisect(SatTemperature, 0.5, 25000, T, 60)
}

// Hf returns the saturated liquid enthalpy in kJ/kg at pressure P in kPa.
func Hf(P float64) float64 {
	tc := SatTemperature(P) - 273.15
	return 4.18*tc + 0.00088*tc*tc
}

// Hg returns the saturated vapor enthalpy in kJ/kg at pressure P in kPa.
func Hg(P float64) float64 {
	tc := SatTemperature(P) - 273.15
	return 2501.3 + 1.86*tc
}

// Hfg returns the latent heat of vaporization in kJ/kg.
func Hfg(P float64) float64 { return Hg(P) - Hf(P) }

// Sf returns the saturated liquid entropy in kJ/(kg·K).
func Sf(P float64) float64 {
	return 4.18 * math.Log(SatTemperature(P)/273.15)
}

// Sg returns the saturated vapor entropy in kJ/(kg·K).
func Sg(P float64) float64 {
	return Sf(P) + Hfg(P)/SatTemperature(P)
}

// Vf returns the saturated liquid specific volume in m³/kg. Liquid water is
// treated as incompressible.
func Vf() float64 { return 0.001 }

// cpSuper is the temperature-dependent vapor specific heat used by the
// superheat corrections, kJ/(kg·K).
func cpSuper(T float64) float64 { return 1.87 + 0.00036*(T-373.15) }

// SuperheatedEnthalpy returns the enthalpy in kJ/kg of superheated steam at
// pressure P (kPa) and temperature T (K): the saturated-vapor value plus a
// linear specific-heat correction above T_sat.
func SuperheatedEnthalpy(P, T float64) float64 {
	return Hg(P) + cpSuper(T)*(T-SatTemperature(P))
}

// SuperheatedEntropy returns the entropy in kJ/(kg·K) of superheated steam,
// integrating the specific-heat correction logarithmically above T_sat.
func SuperheatedEntropy(P, T float64) float64 {
	return Sg(P) + cpSuper(T)*math.Log(T/SatTemperature(P))
}

// TemperatureFromEntropy returns the superheated-region temperature whose
// entropy at P matches s, bisected over [T_sat(P)+0.1, 1200] K for 80
// iterations.
func TemperatureFromEntropy(P, s float64) float64 {
	lo := SatTemperature(P) + 0.1
	f := func(T float64) float64 { return SuperheatedEntropy(P, T) }
	return numeric.Bisect(f, lo, 1200, s, 80)
}

// QualityFromEntropy returns the vapor quality for entropy s at pressure P:
// linear between sf and sg, exactly 0 at or below sf and exactly 1 at or
// above sg. Subcooled and superheated inputs are therefore indistinguishable
// from the dome edges here.
func QualityFromEntropy(P, s float64) float64 {
	sf, sg := Sf(P), Sg(P)
	if s <= sf {
		return 0
	}
	if s >= sg {
		return 1
	}
	return (s - sf) / (sg - sf)
}

// EnthalpyFromQuality returns hf + x·hfg at pressure P.
func EnthalpyFromQuality(P, x float64) float64 {
	return Hf(P) + x*Hfg(P)
}
