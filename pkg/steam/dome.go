package steam

// DomePoint is one saturation-dome sample for h-s chart overlays.
type DomePoint struct {
	Pressure    float64 `json:"p_kpa"`
	Temperature float64 `json:"t_k"`
	Hf          float64 `json:"hf_kj_kg"`
	Hg          float64 `json:"hg_kj_kg"`
	Sf          float64 `json:"sf_kj_kgk"`
	Sg          float64 `json:"sg_kj_kgk"`
}

// Dome returns n+1 saturation samples with pressure swept linearly from 5 to
// 18000 kPa, in increasing-pressure order. Plotting support only; the cycle
// evaluators never read it.
func Dome(n int) []DomePoint {
	const lo, hi = 5.0, 18000.0
	pts := make([]DomePoint, 0, n+1)
	for i := 0; i <= n; i++ {
		p := lo + (hi-lo)*float64(i)/float64(n)
		pts = append(pts, DomePoint{
			Pressure:    p,
			Temperature: SatTemperature(p),
			Hf:          Hf(p),
			Hg:          Hg(p),
			Sf:          Sf(p),
			Sg:          Sg(p),
		})
	}
	return pts
}
