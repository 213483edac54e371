package props

import "math"

// UniversalGasConstant is R in J/(mol·K).
const UniversalGasConstant = 8.314462618

// FluidData holds the constants that parameterize the property model for one
// working fluid: critical point, triple point, acentric factor, the ideal-gas
// heat-capacity polynomial, and the saturation-pressure ancillary equation.
//
// All values are SI (Pa, K, kg/mol). The caloric reference state is the ideal
// gas at RefTemp and RefPressure, where h = 0 and s = 0.
type FluidData struct {
	Name string

	// MolarMass in kg/mol.
	MolarMass float64

	// Critical point.
	CriticalTemp     float64 // K
	CriticalPressure float64 // Pa

	// Triple point. States below TripleTemp are rejected.
	TripleTemp     float64 // K
	TriplePressure float64 // Pa

	// Model validity limits.
	MaxTemp     float64 // K
	MaxPressure float64 // Pa

	// AcentricFactor is Pitzer's omega.
	AcentricFactor float64

	// Cp0 are the ideal-gas heat-capacity polynomial coefficients in
	// kJ/(kg·K) with theta = T/1000 K:
	//
	//	cp0 = Cp0[0] + Cp0[1]*theta + Cp0[2]*theta^2 + Cp0[3]*theta^3
	Cp0 [4]float64

	// SatA and SatExp parameterize the saturation-pressure ancillary
	// equation with tau = 1 - T/Tc:
	//
	//	ln(Psat/Pc) = (Tc/T) * sum_i SatA[i]*tau^SatExp[i]
	SatA   [4]float64
	SatExp [4]float64

	// Caloric reference state.
	RefTemp     float64 // K
	RefPressure float64 // Pa
}

// CO2 returns the fluid data for carbon dioxide.
//
// Critical and triple-point constants follow Span & Wagner (1996), as does the
// saturation ancillary equation. The ideal-gas cp polynomial is the cubic fit
// from Borgnakke & Sonntag, valid roughly 250-1200 K.
func CO2() FluidData {
	return FluidData{
		Name:             "CO2",
		MolarMass:        44.0098e-3,
		CriticalTemp:     304.1282,
		CriticalPressure: 7.3773e6,
		TripleTemp:       216.592,
		TriplePressure:   0.51795e6,
		MaxTemp:          1100.0,
		MaxPressure:      50.0e6,
		AcentricFactor:   0.22394,
		Cp0:              [4]float64{0.45, 1.67, -1.27, 0.39},
		SatA:             [4]float64{-7.0602087, 1.9391218, -1.6463597, -3.2995634},
		SatExp:           [4]float64{1.0, 1.5, 2.0, 4.0},
		RefTemp:          298.15,
		RefPressure:      101325.0,
	}
}

// SpecificGasConstant returns R/M in J/(kg·K).
func (f FluidData) SpecificGasConstant() float64 {
	return UniversalGasConstant / f.MolarMass
}

// cp0 returns the ideal-gas specific heat at T, in J/(kg·K).
func (f FluidData) cp0(T float64) float64 {
	theta := T / 1000.0
	return 1000.0 * (f.Cp0[0] + theta*(f.Cp0[1]+theta*(f.Cp0[2]+theta*f.Cp0[3])))
}

// idealEnthalpy returns the ideal-gas enthalpy at T relative to the reference
// state, in J/kg: the integral of cp0 from RefTemp to T.
func (f FluidData) idealEnthalpy(T float64) float64 {
	return f.cp0Integral(T) - f.cp0Integral(f.RefTemp)
}

func (f FluidData) cp0Integral(T float64) float64 {
	theta := T / 1000.0
	// Integral of cp0 dT with dT = 1000 dtheta, result in J/kg.
	return 1000.0 * 1000.0 * (f.Cp0[0]*theta +
		f.Cp0[1]*theta*theta/2.0 +
		f.Cp0[2]*theta*theta*theta/3.0 +
		f.Cp0[3]*theta*theta*theta*theta/4.0)
}

// idealEntropy returns the ideal-gas entropy at (T, P) relative to the
// reference state, in J/(kg·K).
func (f FluidData) idealEntropy(T, P float64) float64 {
	return f.cp0OverTIntegral(T) - f.cp0OverTIntegral(f.RefTemp) -
		f.SpecificGasConstant()*math.Log(P/f.RefPressure)
}

func (f FluidData) cp0OverTIntegral(T float64) float64 {
	theta := T / 1000.0
	return 1000.0 * (f.Cp0[0]*math.Log(theta) +
		f.Cp0[1]*theta +
		f.Cp0[2]*theta*theta/2.0 +
		f.Cp0[3]*theta*theta*theta/3.0)
}

// inRange reports whether (P, T) lies inside the model's validity envelope.
func (f FluidData) inRange(P, T float64) bool {
	return T >= f.TripleTemp && T <= f.MaxTemp && P > 0 && P <= f.MaxPressure
}
