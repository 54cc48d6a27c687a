package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/energhx/adhtc/internal/server"
	"github.com/energhx/adhtc/pkg/cycle"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printGasTable(w io.Writer, g cycle.GasResult) {
	tw := newTable(w)
	fmt.Fprintln(w, "Gas turbine (Brayton) cycle:")
	fmt.Fprintln(tw, "#\tSTATE\tT (K)\tP (kPa)\th (kJ/kg)\ts (kJ/kg·K)")
	fmt.Fprintln(tw, "-\t-----\t-----\t-------\t---------\t-----------")
	for _, st := range g.States {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.3f\t%.3f\t%.4f\n",
			st.ID, st.Label, st.Temperature, st.Pressure, st.Enthalpy, st.Entropy)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printSteamTable(w io.Writer, s cycle.SteamResult) {
	tw := newTable(w)
	fmt.Fprintln(w, "Steam (Rankine) cycle:")
	fmt.Fprintln(tw, "#\tSTATE\tT (K)\tP (kPa)\th (kJ/kg)\ts (kJ/kg·K)\tx")
	fmt.Fprintln(tw, "-\t-----\t-----\t-------\t---------\t-----------\t-")
	for _, st := range s.States {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.3f\t%.3f\t%.4f\t%s\n",
			st.ID, st.Label, st.Temperature, st.Pressure, st.Enthalpy, st.Entropy, st.Quality)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, a server.Analysis) {
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "- gas net work:        %.3f kJ/kg\n", a.Gas.NetWork)
	fmt.Fprintf(w, "- gas efficiency:      %.2f %%\n", a.Gas.Efficiency)
	fmt.Fprintf(w, "- back-work ratio:     %.2f %%\n", a.Gas.BackWorkRatio)
	fmt.Fprintf(w, "- fuel flow:           %.4f kg/s\n", a.Gas.FuelFlow)
	fmt.Fprintf(w, "- steam net work:      %.3f kJ/kg\n", a.Steam.NetWork)
	fmt.Fprintf(w, "- steam efficiency:    %.2f %%\n", a.Steam.Efficiency)
	fmt.Fprintf(w, "- biogas production:   %.4f kg/s\n", a.Balance.BiogasMass)
	fmt.Fprintf(w, "- HTC heating duty:    %.1f kW\n", a.Balance.ThermalDuty)
	fmt.Fprintf(w, "- renewable fraction:  %.1f %%\n", a.Supply.RenewableFrac)
	fmt.Fprintln(w)
}

// writeCSV flattens both cycles' state tables into one file with a leading
// cycle column.
func writeCSV(path string, a server.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"cycle", "id", "label", "t_k", "p_kpa", "h_kj_kg", "s_kj_kgk", "x"}); err != nil {
		return err
	}
	write := func(cycleName string, states []cycle.State) {
		for _, st := range states {
			_ = cw.Write([]string{
				cycleName, st.ID, st.Label,
				strconv.FormatFloat(st.Temperature, 'f', 4, 64),
				strconv.FormatFloat(st.Pressure, 'f', 4, 64),
				strconv.FormatFloat(st.Enthalpy, 'f', 4, 64),
				strconv.FormatFloat(st.Entropy, 'f', 5, 64),
				st.Quality.String(),
			})
		}
	}
	write("gas", a.Gas.States)
	write("steam", a.Steam.States)
	cw.Flush()
	return cw.Error()
}

func writeJSON(path string, a server.Analysis) error {
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeHTML(path string, p cycle.Params, a server.Analysis) error {
	type view struct {
		Analysis server.Analysis
		Params   cycle.Params
		HS       template.HTML
		TH       template.HTML
	}

	var buf bytes.Buffer
	data := view{
		Analysis: a,
		Params:   p,
		HS:       hsChart(a.Steam),
		TH:       thChart(a.Gas),
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>AD-HTC Plant Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;font-size:14px;margin-bottom:16px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:nth-child(2),td:nth-child(2){text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
svg{border:1px solid #eee;margin:8px 16px 16px 0}
.small{color:#555}
</style>

<h1>AD-HTC Combined Plant Report</h1>

<p class="small">
Pressure ratio: {{printf "%.1f" .Params.PressureRatio}} &nbsp;|&nbsp;
TIT: {{printf "%.0f" .Params.TurbineInletTemp}} K &nbsp;|&nbsp;
Boiler: {{printf "%.0f" .Params.BoilerPressure}} kPa / {{printf "%.0f" .Params.SteamTemp}} K
</p>

<h2>Gas turbine (Brayton) cycle</h2>
<table>
<thead><tr><th>#</th><th>State</th><th>T (K)</th><th>P (kPa)</th><th>h (kJ/kg)</th><th>s (kJ/kg·K)</th></tr></thead>
<tbody>
{{range .Analysis.Gas.States}}
<tr><td>{{.ID}}</td><td>{{.Label}}</td>
<td>{{printf "%.2f" .Temperature}}</td><td>{{printf "%.3f" .Pressure}}</td>
<td>{{printf "%.3f" .Enthalpy}}</td><td>{{printf "%.4f" .Entropy}}</td></tr>
{{end}}
</tbody>
</table>

<h2>Steam (Rankine) cycle</h2>
<table>
<thead><tr><th>#</th><th>State</th><th>T (K)</th><th>P (kPa)</th><th>h (kJ/kg)</th><th>s (kJ/kg·K)</th><th>x</th></tr></thead>
<tbody>
{{range .Analysis.Steam.States}}
<tr><td>{{.ID}}</td><td>{{.Label}}</td>
<td>{{printf "%.2f" .Temperature}}</td><td>{{printf "%.3f" .Pressure}}</td>
<td>{{printf "%.3f" .Enthalpy}}</td><td>{{printf "%.4f" .Entropy}}</td>
<td>{{.Quality}}</td></tr>
{{end}}
</tbody>
</table>

<h2>Summary</h2>
<ul>
<li>Gas net work: {{printf "%.3f" .Analysis.Gas.NetWork}} kJ/kg, efficiency {{printf "%.2f" .Analysis.Gas.Efficiency}} %</li>
<li>Back-work ratio: {{printf "%.2f" .Analysis.Gas.BackWorkRatio}} %, fuel flow {{printf "%.4f" .Analysis.Gas.FuelFlow}} kg/s</li>
<li>Steam net work: {{printf "%.3f" .Analysis.Steam.NetWork}} kJ/kg, efficiency {{printf "%.2f" .Analysis.Steam.Efficiency}} %</li>
<li>Biogas production: {{printf "%.4f" .Analysis.Balance.BiogasMass}} kg/s, HTC duty {{printf "%.1f" .Analysis.Balance.ThermalDuty}} kW</li>
<li>Renewable fraction of fuel demand: {{printf "%.1f" .Analysis.Supply.RenewableFrac}} %</li>
</ul>

<h2>Charts</h2>
{{.HS}}
{{.TH}}
</html>`))
