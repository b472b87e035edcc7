package models

const (
	// Multiplier converts X into the base amount
	Multiplier = 22.0

	// NetRate is the share of the base kept as the final (líquido) amount
	NetRate = 0.70
)

// Calculation holds the values derived from one input. It is recomputed from
// scratch on every request and never stored beyond the current display.
type Calculation struct {
	Input float64
	Base  float64
	Final float64
}

// Calculate derives base and final amounts from x. Values keep full
// precision; rounding to cents happens only when they are displayed.
func Calculate(x float64) Calculation {
	base := x * Multiplier
	return Calculation{
		Input: x,
		Base:  base,
		Final: base * NetRate,
	}
}
