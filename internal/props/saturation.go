package props

import "math"

// saturationPressure evaluates the ancillary vapor-pressure equation.
// Valid between the triple point and the critical point.
func (f FluidData) saturationPressure(T float64) float64 {
	tau := 1 - T/f.CriticalTemp
	sum := 0.0
	for i := range f.SatA {
		sum += f.SatA[i] * math.Pow(tau, f.SatExp[i])
	}
	return f.CriticalPressure * math.Exp(f.CriticalTemp/T*sum)
}

// saturationTemperature inverts the ancillary equation by bisection.
// The ancillary is strictly increasing in T, so the bracket
// [TripleTemp, CriticalTemp] always contains exactly one root.
func (f FluidData) saturationTemperature(P float64) (float64, bool) {
	if P < f.TriplePressure || P > f.CriticalPressure {
		return 0, false
	}
	lo, hi := f.TripleTemp, f.CriticalTemp
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if f.saturationPressure(mid) < P {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-9*mid {
			break
		}
	}
	return 0.5 * (lo + hi), true
}
