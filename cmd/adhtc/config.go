package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/ini.v1"
)

// applyConfig fills opts fields from an INI file. Flags given explicitly on
// the command line win over the file; the file wins over built-in defaults.
func applyConfig(cmd *cobra.Command, path string, o *opts) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	bindings := []struct {
		flag    string
		section string
		key     string
		dst     *float64
	}{
		{"ambient-temp", "gas", "ambient_temp", &o.ambientTemp},
		{"ambient-pressure", "gas", "ambient_pressure", &o.ambientPress},
		{"pressure-ratio", "gas", "pressure_ratio", &o.pressureRatio},
		{"tit", "gas", "turbine_inlet_temp", &o.tit},
		{"eta-compressor", "gas", "compressor_eff", &o.etaCompressor},
		{"eta-turbine", "gas", "turbine_eff", &o.etaTurbine},
		{"lhv", "gas", "fuel_lhv", &o.lhv},
		{"air-flow", "gas", "air_mass_flow", &o.airFlow},

		{"boiler-pressure", "steam", "boiler_pressure_mpa", &o.boilerPressMPa},
		{"steam-temp", "steam", "steam_temp", &o.steamTemp},
		{"condenser-pressure", "steam", "condenser_pressure", &o.condenserPress},
		{"eta-steam-turbine", "steam", "turbine_eff", &o.etaSteamTurb},
		{"eta-pump", "steam", "pump_eff", &o.etaPump},

		{"biomass-feed", "biomass", "feed", &o.biomassFeed},
		{"moisture-split", "biomass", "moisture_split", &o.moistSplit},
		{"ad-yield", "biomass", "digestion_yield", &o.adYield},
		{"reactor-temp", "biomass", "reactor_temp", &o.reactorTemp},
	}

	for _, b := range bindings {
		if cmd.Flags().Changed(b.flag) {
			continue
		}
		sec := cfg.Section(b.section)
		if !sec.HasKey(b.key) {
			continue
		}
		*b.dst = sec.Key(b.key).MustFloat64(*b.dst)
	}
	return nil
}
