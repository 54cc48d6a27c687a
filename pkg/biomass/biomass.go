// Package biomass splits the incoming feedstock between anaerobic digestion
// and hydrothermal carbonization, and accounts for the energy the resulting
// biogas can supply to the gas turbine.
package biomass

import "github.com/energhx/adhtc/pkg/cycle"

const (
	// biogasDensity converts digester gas volume to mass, kg/m³.
	biogasDensity = 1.15

	// leanCp is the heat capacity of the lean (HTC-bound) stream, kJ/(kg·K).
	leanCp = 1.5

	// ambientTemp is the datum for the HTC reactor heating duty, K.
	ambientTemp = 298
)

// Balance is the mass and energy split of one feedstock stream.
type Balance struct {
	TotalFeed   float64 `json:"total_kg_s"`  // feedstock entering the split
	RichFlow    float64 `json:"rich_kg_s"`   // moisture-rich stream to digestion
	LeanFlow    float64 `json:"lean_kg_s"`   // lean stream to the HTC reactor
	BiogasVol   float64 `json:"biogas_m3_s"` // volumetric biogas production
	BiogasMass  float64 `json:"biogas_kg_s"` // biogas mass flow
	ThermalDuty float64 `json:"htc_duty_kw"` // heat to raise the lean stream
}

// Supply compares biogas energy production against a fuel demand.
type Supply struct {
	BiogasEnergy  float64 `json:"biogas_kw"`      // available, m_biogas * LHV
	FuelDemand    float64 `json:"demand_kw"`      // required, m_fuel * LHV
	RenewableFrac float64 `json:"renewable_pct"`  // share of demand met, capped at 100
	Surplus       float64 `json:"surplus_kg_s"`   // biogas beyond demand, floor 0
}

// Evaluate splits the feed by moisture fraction and sizes the digester output
// and the HTC heating duty. It consumes only the biomass fields of Params.
func Evaluate(p cycle.Params) Balance {
	rich := p.BiomassFeed * p.MoistureSplit
	lean := p.BiomassFeed * (1 - p.MoistureSplit)
	vol := rich * p.DigestionYield
	return Balance{
		TotalFeed:   p.BiomassFeed,
		RichFlow:    rich,
		LeanFlow:    lean,
		BiogasVol:   vol,
		BiogasMass:  vol * biogasDensity,
		ThermalDuty: lean * leanCp * (p.ReactorTemp - ambientTemp),
	}
}

// Supply sizes the biogas output against the gas turbine's fuel demand.
// fuelFlow is the turbine's fuel mass flow in kg/s and lhv the fuel heating
// value in kJ/kg.
func (b Balance) Supply(fuelFlow, lhv float64) Supply {
	s := Supply{
		BiogasEnergy: b.BiogasMass * lhv,
		FuelDemand:   fuelFlow * lhv,
	}
	if s.FuelDemand > 0 {
		s.RenewableFrac = s.BiogasEnergy / s.FuelDemand * 100
		if s.RenewableFrac > 100 {
			s.RenewableFrac = 100
		}
	}
	if b.BiogasMass > fuelFlow {
		s.Surplus = b.BiogasMass - fuelFlow
	}
	return s
}
