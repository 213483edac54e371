package props

// Backend resolves thermodynamic properties of a working fluid from two
// independent state variables. All quantities are SI: pressure in Pa,
// temperature in K, specific enthalpy in J/kg, specific entropy in J/(kg·K),
// quality dimensionless in [0, 1].
//
// Implementations must be pure functions of their inputs: no shared mutable
// state, safe for concurrent use.
type Backend interface {
	// Fluid returns the constants of the working fluid.
	Fluid() FluidData

	// EnthalpyPT returns specific enthalpy at (pressure, temperature).
	EnthalpyPT(p, T float64) (float64, error)

	// EntropyPT returns specific entropy at (pressure, temperature).
	EntropyPT(p, T float64) (float64, error)

	// EnthalpyPS returns specific enthalpy at (pressure, entropy).
	// Two-phase states resolve by quality interpolation.
	EnthalpyPS(p, s float64) (float64, error)

	// TemperaturePS returns temperature at (pressure, entropy).
	// Two-phase states return the saturation temperature.
	TemperaturePS(p, s float64) (float64, error)

	// TemperaturePH returns temperature at (pressure, enthalpy).
	// Two-phase states return the saturation temperature.
	TemperaturePH(p, h float64) (float64, error)

	// EntropyPH returns specific entropy at (pressure, enthalpy).
	// Two-phase states resolve by quality interpolation.
	EntropyPH(p, h float64) (float64, error)

	// EnthalpyPQ returns specific enthalpy at (pressure, quality).
	EnthalpyPQ(p, q float64) (float64, error)

	// EntropyPQ returns specific entropy at (pressure, quality).
	EntropyPQ(p, q float64) (float64, error)

	// SaturationPressure returns the vapor pressure at T.
	SaturationPressure(T float64) (float64, error)

	// SaturationTemperature returns the boiling temperature at p.
	SaturationTemperature(p float64) (float64, error)
}
