package cycle

import (
	"fmt"

	"github.com/energhx/adhtc/pkg/types"
)

// Params is the flat input record for one analysis run. All temperatures are
// kelvin and all pressures kilopascals; callers convert beforehand (the CLI,
// for example, takes boiler pressure in MPa and converts once). Every field
// is consumed; none is optional.
type Params struct {
	// Gas (Brayton) cycle
	AmbientTemp      float64 `json:"ambient_temp"`       // K
	AmbientPressure  float64 `json:"ambient_pressure"`   // kPa
	PressureRatio    float64 `json:"pressure_ratio"`     // compressor P2/P1
	TurbineInletTemp float64 `json:"turbine_inlet_temp"` // K
	CompressorEff    float64 `json:"compressor_eff"`     // isentropic, (0,1]
	TurbineEff       float64 `json:"turbine_eff"`        // isentropic, (0,1]
	FuelLHV          float64 `json:"fuel_lhv"`           // kJ/kg
	AirMassFlow      float64 `json:"air_mass_flow"`      // kg/s

	// Steam (Rankine) cycle
	BoilerPressure    float64 `json:"boiler_pressure"`    // kPa
	SteamTemp         float64 `json:"steam_temp"`         // K
	CondenserPressure float64 `json:"condenser_pressure"` // kPa
	SteamTurbineEff   float64 `json:"steam_turbine_eff"`  // (0,1]
	PumpEff           float64 `json:"pump_eff"`           // (0,1]

	// Biomass split
	BiomassFeed    float64 `json:"biomass_feed"`    // kg/s
	MoistureSplit  float64 `json:"moisture_split"`  // [0,1], fraction to digestion
	DigestionYield float64 `json:"digestion_yield"` // m³ biogas per kg rich stream
	ReactorTemp    float64 `json:"reactor_temp"`    // K
}

// Validate checks every field against its physical domain and returns an
// error wrapping ErrInvalidParameter for the first violation. Nothing is
// clamped.
func (p Params) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{p.AmbientTemp > 0, "ambient temperature must be > 0 K"},
		{p.AmbientPressure > 0, "ambient pressure must be > 0 kPa"},
		{p.PressureRatio > 1, "pressure ratio must be > 1"},
		{p.TurbineInletTemp > p.AmbientTemp, "turbine inlet temperature must exceed ambient"},
		{p.CompressorEff > 0 && p.CompressorEff <= 1, "compressor efficiency must be in (0,1]"},
		{p.TurbineEff > 0 && p.TurbineEff <= 1, "turbine efficiency must be in (0,1]"},
		{p.FuelLHV > 0, "fuel heating value must be > 0 kJ/kg"},
		{p.AirMassFlow > 0, "air mass flow must be > 0 kg/s"},
		{p.BoilerPressure > 0, "boiler pressure must be > 0 kPa"},
		{p.SteamTemp > 0, "steam temperature must be > 0 K"},
		{p.CondenserPressure > 0, "condenser pressure must be > 0 kPa"},
		{p.CondenserPressure < p.BoilerPressure, "condenser pressure must be below boiler pressure"},
		{p.SteamTurbineEff > 0 && p.SteamTurbineEff <= 1, "steam turbine efficiency must be in (0,1]"},
		{p.PumpEff > 0 && p.PumpEff <= 1, "pump efficiency must be in (0,1]"},
		{p.BiomassFeed > 0, "biomass feed must be > 0 kg/s"},
		{p.MoistureSplit >= 0 && p.MoistureSplit <= 1, "moisture split must be in [0,1]"},
		{p.DigestionYield > 0, "digestion yield must be > 0 m³/kg"},
		{p.ReactorTemp > 0, "reactor temperature must be > 0 K"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidParameter, c.msg)
		}
	}
	return nil
}

// State is one thermodynamic point along a cycle. States are created once per
// evaluation and never mutated; the slice order is the traversal order of the
// cycle and consumers must preserve it.
type State struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Temperature float64       `json:"t_k"`
	Pressure    float64       `json:"p_kpa"`
	Enthalpy    float64       `json:"h_kj_kg"`
	Entropy     float64       `json:"s_kj_kgk"`
	Quality     types.Quality `json:"x"`
}

// GasResult aggregates one Brayton evaluation. Work and heat terms are
// derived from the state enthalpies, never measured independently, so they
// are always internally consistent with States.
type GasResult struct {
	States []State `json:"states"` // traversal order 1..5

	CompressorWork float64 `json:"w_c_kj_kg"`
	TurbineWork    float64 `json:"w_t_kj_kg"`
	HeatInput      float64 `json:"q_in_kj_kg"`
	NetWork        float64 `json:"w_net_kj_kg"`
	FuelFlow       float64 `json:"m_fuel_kg_s"`

	Efficiency    float64 `json:"eta_pct"`
	BackWorkRatio float64 `json:"bwr_pct"`
	FuelAirRatio  float64 `json:"fuel_air_ratio"`
	ExhaustTemp   float64 `json:"t_exhaust_k"`
	MeanCp        float64 `json:"cp_avg_kj_kgk"`
	MeanGamma     float64 `json:"gamma_avg"`
}

// SteamResult aggregates one Rankine evaluation.
type SteamResult struct {
	States []State `json:"states"` // traversal order a..d

	TurbineWork   float64 `json:"w_st_kj_kg"`
	PumpWork      float64 `json:"w_fp_kj_kg"`
	BoilerHeat    float64 `json:"q_boiler_kj_kg"`
	CondenserHeat float64 `json:"q_cond_kj_kg"`
	NetWork       float64 `json:"w_net_kj_kg"`
	Efficiency    float64 `json:"eta_pct"`
}
