package main

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/energhx/adhtc/pkg/cycle"
	"github.com/energhx/adhtc/pkg/steam"
)

const (
	chartW   = 640.0
	chartH   = 420.0
	chartPad = 40.0
)

// chartBox maps data coordinates onto the SVG viewport, flipping y so larger
// values draw higher.
type chartBox struct {
	xlo, xhi, ylo, yhi float64
}

func (c chartBox) x(v float64) float64 {
	return chartPad + (v-c.xlo)/(c.xhi-c.xlo)*(chartW-2*chartPad)
}

func (c chartBox) y(v float64) float64 {
	return chartH - chartPad - (v-c.ylo)/(c.yhi-c.ylo)*(chartH-2*chartPad)
}

func (c *chartBox) grow(x, y float64) {
	if x < c.xlo {
		c.xlo = x
	}
	if x > c.xhi {
		c.xhi = x
	}
	if y < c.ylo {
		c.ylo = y
	}
	if y > c.yhi {
		c.yhi = y
	}
}

func newBox(x, y float64) chartBox {
	return chartBox{xlo: x, xhi: x, ylo: y, yhi: y}
}

func polyline(sb *strings.Builder, box chartBox, xs, ys []float64, stroke string) {
	sb.WriteString(`<polyline fill="none" stroke="` + stroke + `" stroke-width="1.5" points="`)
	for i := range xs {
		fmt.Fprintf(sb, "%.1f,%.1f ", box.x(xs[i]), box.y(ys[i]))
	}
	sb.WriteString(`"/>`)
	sb.WriteByte('\n')
}

func marker(sb *strings.Builder, box chartBox, x, y float64, label string) {
	px, py := box.x(x), box.y(y)
	fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="3" fill="#c33"/>`, px, py)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="11">%s</text>`, px+6, py-4, label)
	sb.WriteByte('\n')
}

func frame(sb *strings.Builder, title, xlabel, ylabel string) {
	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		chartW, chartH, chartW, chartH)
	sb.WriteByte('\n')
	fmt.Fprintf(sb, `<text x="%.0f" y="18" font-size="14" text-anchor="middle">%s</text>`, chartW/2, title)
	fmt.Fprintf(sb, `<text x="%.0f" y="%.0f" font-size="11" text-anchor="middle">%s</text>`, chartW/2, chartH-8, xlabel)
	fmt.Fprintf(sb, `<text x="14" y="%.0f" font-size="11" text-anchor="middle" transform="rotate(-90 14 %.0f)">%s</text>`,
		chartH/2, chartH/2, ylabel)
	fmt.Fprintf(sb, `<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="none" stroke="#999"/>`,
		chartPad, chartPad, chartW-2*chartPad, chartH-2*chartPad)
	sb.WriteByte('\n')
}

// hsChart draws the Rankine cycle on the h-s plane with the saturation dome
// as backdrop.
func hsChart(res cycle.SteamResult) template.HTML {
	dome := steam.Dome(60)

	box := newBox(dome[0].Sf, dome[0].Hf)
	var sfx, sfy, sgx, sgy []float64
	for _, d := range dome {
		sfx, sfy = append(sfx, d.Sf), append(sfy, d.Hf)
		sgx, sgy = append(sgx, d.Sg), append(sgy, d.Hg)
		box.grow(d.Sf, d.Hf)
		box.grow(d.Sg, d.Hg)
	}
	for _, st := range res.States {
		box.grow(st.Entropy, st.Enthalpy)
	}

	// Closed cycle path in process order: pump exit, boiler exit, turbine
	// exit, condenser exit, back to pump exit.
	order := []int{3, 0, 1, 2, 3}
	var cx, cy []float64
	for _, i := range order {
		cx = append(cx, res.States[i].Entropy)
		cy = append(cy, res.States[i].Enthalpy)
	}

	var sb strings.Builder
	frame(&sb, "Rankine cycle, h-s plane", "s (kJ/kg·K)", "h (kJ/kg)")
	polyline(&sb, box, sfx, sfy, "#69c")
	polyline(&sb, box, sgx, sgy, "#69c")
	polyline(&sb, box, cx, cy, "#c33")
	for _, st := range res.States {
		marker(&sb, box, st.Entropy, st.Enthalpy, st.ID)
	}
	sb.WriteString("</svg>")
	return template.HTML(sb.String())
}

// thChart traces the Brayton cycle's temperature against enthalpy through its
// five stations.
func thChart(res cycle.GasResult) template.HTML {
	box := newBox(res.States[0].Enthalpy, res.States[0].Temperature)
	var xs, ys []float64
	for _, st := range res.States {
		xs = append(xs, st.Enthalpy)
		ys = append(ys, st.Temperature)
		box.grow(st.Enthalpy, st.Temperature)
	}

	var sb strings.Builder
	frame(&sb, "Brayton cycle, T-h path", "h (kJ/kg)", "T (K)")
	polyline(&sb, box, xs, ys, "#c33")
	for _, st := range res.States {
		marker(&sb, box, st.Enthalpy, st.Temperature, st.ID)
	}
	sb.WriteString("</svg>")
	return template.HTML(sb.String())
}
