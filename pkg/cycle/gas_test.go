package cycle

import (
	"testing"

	"github.com/energhx/adhtc/pkg/gas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceParams() Params {
	return Params{
		AmbientTemp:      298,
		AmbientPressure:  101.325,
		PressureRatio:    10,
		TurbineInletTemp: 1400,
		CompressorEff:    0.86,
		TurbineEff:       0.89,
		FuelLHV:          20000,
		AirMassFlow:      50,

		BoilerPressure:    4000,
		SteamTemp:         673,
		CondenserPressure: 10,
		SteamTurbineEff:   0.85,
		PumpEff:           0.80,

		BiomassFeed:    5,
		MoistureSplit:  0.6,
		DigestionYield: 0.4,
		ReactorTemp:    523,
	}
}

func TestEvaluateGasStateWalk(t *testing.T) {
	p := referenceParams()
	res, err := EvaluateGas(p)
	require.NoError(t, err)
	require.Len(t, res.States, 5)

	ids := []string{"1", "2", "3", "4", "5"}
	labels := []string{
		"Air Inlet",
		"Compressor Exit",
		"Combustor Inlet",
		"Combustor Exit (TIT)",
		"Turbine Exhaust",
	}
	for i, st := range res.States {
		assert.Equal(t, ids[i], st.ID)
		assert.Equal(t, labels[i], st.Label)
		assert.False(t, st.Quality.IsTwoPhase())
		t.Logf("state %s %-22s T=%8.2f K  P=%9.3f kPa  h=%9.3f  s=%7.4f",
			st.ID, st.Label, st.Temperature, st.Pressure, st.Enthalpy, st.Entropy)
	}

	s1, s2, s3, s4, s5 := res.States[0], res.States[1], res.States[2], res.States[3], res.States[4]

	// Combustor inlet is a duplicate of the compressor exit.
	assert.Equal(t, s2.Temperature, s3.Temperature)
	assert.Equal(t, s2.Pressure, s3.Pressure)
	assert.Equal(t, s2.Enthalpy, s3.Enthalpy)
	assert.Equal(t, s2.Entropy, s3.Entropy)

	// Pressure bookkeeping.
	assert.InDelta(t, p.AmbientPressure*p.PressureRatio, s2.Pressure, 1e-12)
	assert.InDelta(t, s2.Pressure*0.96, s4.Pressure, 1e-12)
	assert.InDelta(t, p.AmbientPressure*1.02, s5.Pressure, 1e-12)

	// Compressor losses push the real exit above the isentropic one.
	t2s := gas.IsentropicTemperature(s1.Temperature, s1.Pressure, s2.Pressure)
	assert.Greater(t, s2.Temperature, t2s)
	assert.Less(t, s2.Temperature, t2s/p.CompressorEff)
	assert.Greater(t, s2.Temperature, s1.Temperature)

	// Turbine exhaust lands strictly between ambient and firing temperature.
	assert.Equal(t, p.TurbineInletTemp, s4.Temperature)
	assert.Greater(t, s5.Temperature, s1.Temperature)
	assert.Less(t, s5.Temperature, s4.Temperature)
}

func TestEvaluateGasAggregates(t *testing.T) {
	p := referenceParams()
	res, err := EvaluateGas(p)
	require.NoError(t, err)

	s2, s4 := res.States[1], res.States[3]

	assert.InDelta(t, s4.Enthalpy-s2.Enthalpy, res.HeatInput, 1e-9)
	assert.InDelta(t, res.TurbineWork-res.CompressorWork, res.NetWork, 1e-9)
	assert.Greater(t, res.NetWork, 0.0)
	assert.Greater(t, res.Efficiency, 0.0)
	assert.Less(t, res.Efficiency, 100.0)
	assert.Greater(t, res.BackWorkRatio, 0.0)
	assert.Less(t, res.BackWorkRatio, 100.0)

	// Fuel flow follows from the energy balance across the combustor.
	assert.InDelta(t, res.HeatInput*p.AirMassFlow/p.FuelLHV, res.FuelFlow, 1e-9)
	assert.InDelta(t, res.FuelFlow/p.AirMassFlow, res.FuelAirRatio, 1e-12)

	assert.Equal(t, res.States[4].Temperature, res.ExhaustTemp)
	assert.Greater(t, res.MeanCp, gas.Cp(p.AmbientTemp))
	assert.Less(t, res.MeanCp, gas.Cp(p.TurbineInletTemp))
	assert.Greater(t, res.MeanGamma, 1.0)
	assert.Less(t, res.MeanGamma, 1.4)

	t.Logf("w_c=%.3f w_t=%.3f q_in=%.3f w_net=%.3f eta=%.2f%% bwr=%.2f%% m_fuel=%.4f",
		res.CompressorWork, res.TurbineWork, res.HeatInput, res.NetWork,
		res.Efficiency, res.BackWorkRatio, res.FuelFlow)
}

func TestEvaluateGasDeterministic(t *testing.T) {
	p := referenceParams()
	a, err := EvaluateGas(p)
	require.NoError(t, err)
	b, err := EvaluateGas(p)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEvaluateGasRejectsBadParams(t *testing.T) {
	mods := map[string]func(*Params){
		"zero ambient temperature":  func(p *Params) { p.AmbientTemp = 0 },
		"negative ambient pressure": func(p *Params) { p.AmbientPressure = -1 },
		"unity pressure ratio":      func(p *Params) { p.PressureRatio = 1 },
		"tit below ambient":         func(p *Params) { p.TurbineInletTemp = 200 },
		"compressor eff above one":  func(p *Params) { p.CompressorEff = 1.2 },
		"zero turbine eff":          func(p *Params) { p.TurbineEff = 0 },
		"zero lhv":                  func(p *Params) { p.FuelLHV = 0 },
		"negative air flow":         func(p *Params) { p.AirMassFlow = -5 },
	}
	for name, mod := range mods {
		t.Run(name, func(t *testing.T) {
			p := referenceParams()
			mod(&p)
			_, err := EvaluateGas(p)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestEvaluateGasEfficiencyRisesWithPressureRatio(t *testing.T) {
	prev := -1.0
	for _, rp := range []float64{4, 8, 12} {
		p := referenceParams()
		p.PressureRatio = rp
		res, err := EvaluateGas(p)
		require.NoError(t, err)
		assert.Greater(t, res.Efficiency, prev, "rp=%v", rp)
		t.Logf("rp=%4.1f eta=%.3f%%", rp, res.Efficiency)
		prev = res.Efficiency
	}
}
