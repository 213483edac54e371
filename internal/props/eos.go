package props

import (
	"fmt"
	"math"
)

// branch selects which volume root of the reduced equation of state a query
// should converge to. Below the critical temperature the equation has both a
// liquid-like and a vapor-like root at the same (T, P).
type branch int

const (
	branchAuto branch = iota
	branchLiquid
	branchVapor
)

// liquidGuessVr is the Newton starting point for the liquid root. Reduced
// liquid volumes of common fluids fall around 0.1-0.2 over the whole
// subcritical range.
const liquidGuessVr = 0.12

// LeeKesler is a property backend built on the Lee-Kesler corresponding-states
// correlation plus the fluid's ideal-gas caloric model. It is stateless apart
// from the fluid constants and safe for concurrent use.
type LeeKesler struct {
	fluid FluidData
}

// NewLeeKesler creates a backend for the given fluid.
func NewLeeKesler(f FluidData) *LeeKesler {
	return &LeeKesler{fluid: f}
}

// NewCO2 creates a Lee-Kesler backend for carbon dioxide.
func NewCO2() *LeeKesler {
	return NewLeeKesler(CO2())
}

// Fluid returns the fluid constants.
func (b *LeeKesler) Fluid() FluidData {
	return b.fluid
}

// EnthalpyPT returns specific enthalpy at (p, T).
func (b *LeeKesler) EnthalpyPT(p, T float64) (float64, error) {
	h, _, err := b.stateAt(p, T, branchAuto, "PT")
	return h, err
}

// EntropyPT returns specific entropy at (p, T).
func (b *LeeKesler) EntropyPT(p, T float64) (float64, error) {
	_, s, err := b.stateAt(p, T, branchAuto, "PT")
	return s, err
}

// EnthalpyPS returns specific enthalpy at (p, s). Inside the two-phase dome
// the result interpolates between saturated liquid and vapor by quality.
func (b *LeeKesler) EnthalpyPS(p, s float64) (float64, error) {
	if sat, ok, err := b.saturatedStates(p); err != nil {
		return 0, err
	} else if ok && s >= sat.sf && s <= sat.sg {
		q := (s - sat.sf) / (sat.sg - sat.sf)
		return sat.hf + q*(sat.hg-sat.hf), nil
	}
	T, err := b.TemperaturePS(p, s)
	if err != nil {
		return 0, err
	}
	h, _, err := b.stateAt(p, T, branchAuto, "PS")
	return h, err
}

// TemperaturePS returns temperature at (p, s).
func (b *LeeKesler) TemperaturePS(p, s float64) (float64, error) {
	query := map[string]float64{"P": p, "S": s}
	sat, ok, err := b.saturatedStates(p)
	if err != nil {
		return 0, err
	}
	if ok {
		switch {
		case s >= sat.sf && s <= sat.sg:
			return sat.T, nil
		case s < sat.sf:
			return b.invertTemperature(p, s, branchLiquid, b.fluid.TripleTemp, sat.T, entropyOf, "PS", query)
		default:
			return b.invertTemperature(p, s, branchVapor, sat.T, b.fluid.MaxTemp, entropyOf, "PS", query)
		}
	}
	return b.invertTemperature(p, s, branchAuto, b.fluid.TripleTemp, b.fluid.MaxTemp, entropyOf, "PS", query)
}

// TemperaturePH returns temperature at (p, h).
func (b *LeeKesler) TemperaturePH(p, h float64) (float64, error) {
	query := map[string]float64{"P": p, "H": h}
	sat, ok, err := b.saturatedStates(p)
	if err != nil {
		return 0, err
	}
	if ok {
		switch {
		case h >= sat.hf && h <= sat.hg:
			return sat.T, nil
		case h < sat.hf:
			return b.invertTemperature(p, h, branchLiquid, b.fluid.TripleTemp, sat.T, enthalpyOf, "PH", query)
		default:
			return b.invertTemperature(p, h, branchVapor, sat.T, b.fluid.MaxTemp, enthalpyOf, "PH", query)
		}
	}
	return b.invertTemperature(p, h, branchAuto, b.fluid.TripleTemp, b.fluid.MaxTemp, enthalpyOf, "PH", query)
}

// EntropyPH returns specific entropy at (p, h). Inside the two-phase dome the
// result interpolates between saturated liquid and vapor by quality.
func (b *LeeKesler) EntropyPH(p, h float64) (float64, error) {
	if sat, ok, err := b.saturatedStates(p); err != nil {
		return 0, err
	} else if ok && h >= sat.hf && h <= sat.hg {
		q := (h - sat.hf) / (sat.hg - sat.hf)
		return sat.sf + q*(sat.sg-sat.sf), nil
	}
	T, err := b.TemperaturePH(p, h)
	if err != nil {
		return 0, err
	}
	_, s, err := b.stateAt(p, T, branchAuto, "PH")
	return s, err
}

// EnthalpyPQ returns specific enthalpy at (p, quality).
func (b *LeeKesler) EnthalpyPQ(p, q float64) (float64, error) {
	sat, err := b.requireSaturated(p, q)
	if err != nil {
		return 0, err
	}
	return sat.hf + q*(sat.hg-sat.hf), nil
}

// EntropyPQ returns specific entropy at (p, quality).
func (b *LeeKesler) EntropyPQ(p, q float64) (float64, error) {
	sat, err := b.requireSaturated(p, q)
	if err != nil {
		return 0, err
	}
	return sat.sf + q*(sat.sg-sat.sf), nil
}

// SaturationPressure returns the vapor pressure at T.
func (b *LeeKesler) SaturationPressure(T float64) (float64, error) {
	if T < b.fluid.TripleTemp || T > b.fluid.CriticalTemp {
		return 0, newRangeError(b.fluid.Name, "Psat",
			fmt.Sprintf("temperature outside saturation range [%.3f, %.4f] K", b.fluid.TripleTemp, b.fluid.CriticalTemp),
			map[string]float64{"T": T})
	}
	return b.fluid.saturationPressure(T), nil
}

// SaturationTemperature returns the boiling temperature at p.
func (b *LeeKesler) SaturationTemperature(p float64) (float64, error) {
	T, ok := b.fluid.saturationTemperature(p)
	if !ok {
		return 0, newRangeError(b.fluid.Name, "Tsat",
			fmt.Sprintf("pressure outside saturation range [%.0f, %.0f] Pa", b.fluid.TriplePressure, b.fluid.CriticalPressure),
			map[string]float64{"P": p})
	}
	return T, nil
}

// stateAt resolves (h, s) at a single-phase state (p, T).
func (b *LeeKesler) stateAt(p, T float64, br branch, query string) (float64, float64, error) {
	values := map[string]float64{"P": p, "T": T}
	if !b.fluid.inRange(p, T) {
		return 0, 0, newRangeError(b.fluid.Name, query,
			"state outside valid pressure/temperature envelope", values)
	}

	Tr := T / b.fluid.CriticalTemp
	Pr := p / b.fluid.CriticalPressure

	guess := b.volumeGuess(p, T, br)
	simple, ok := lkSimple.departuresAt(Tr, Pr, guess)
	if !ok {
		return 0, 0, newConvergenceError(b.fluid.Name, query,
			"volume iteration did not converge (simple fluid)", values)
	}
	reference, ok := lkReference.departuresAt(Tr, Pr, guess)
	if !ok {
		return 0, 0, newConvergenceError(b.fluid.Name, query,
			"volume iteration did not converge (reference fluid)", values)
	}

	omega := b.fluid.AcentricFactor
	Hdep := blend(omega, simple.H, reference.H)
	Sdep := blend(omega, simple.S, reference.S)

	Rs := b.fluid.SpecificGasConstant()
	h := b.fluid.idealEnthalpy(T) + Rs*b.fluid.CriticalTemp*Hdep
	s := b.fluid.idealEntropy(T, p) + Rs*Sdep
	if math.IsNaN(h) || math.IsNaN(s) {
		return 0, 0, newConvergenceError(b.fluid.Name, query,
			"departure functions evaluated to NaN", values)
	}
	return h, s, nil
}

// volumeGuess picks the Newton starting point that selects the wanted root.
func (b *LeeKesler) volumeGuess(p, T float64, br branch) float64 {
	Tr := T / b.fluid.CriticalTemp
	Pr := p / b.fluid.CriticalPressure
	ideal := Tr / Pr

	switch br {
	case branchLiquid:
		return liquidGuessVr
	case branchVapor:
		return ideal
	}
	// Auto: below the critical temperature the branch follows from where the
	// pressure sits relative to the vapor pressure.
	if T < b.fluid.CriticalTemp && p >= b.fluid.saturationPressure(T) {
		return liquidGuessVr
	}
	return ideal
}

// satState holds the saturated liquid/vapor endpoints at one pressure.
type satState struct {
	T              float64
	hf, hg, sf, sg float64
}

// saturatedStates resolves both saturation endpoints at p. ok is false when p
// is outside the saturation pressure range (no dome at this pressure).
func (b *LeeKesler) saturatedStates(p float64) (satState, bool, error) {
	T, found := b.fluid.saturationTemperature(p)
	if !found {
		return satState{}, false, nil
	}
	hf, sf, err := b.stateAt(p, T, branchLiquid, "PQ")
	if err != nil {
		return satState{}, false, err
	}
	hg, sg, err := b.stateAt(p, T, branchVapor, "PQ")
	if err != nil {
		return satState{}, false, err
	}
	return satState{T: T, hf: hf, hg: hg, sf: sf, sg: sg}, true, nil
}

func (b *LeeKesler) requireSaturated(p, q float64) (satState, error) {
	if q < 0 || q > 1 {
		return satState{}, &LookupError{
			Code:    ErrCodeInconsistentPair,
			Message: "quality must be in [0, 1]",
			Query:   "PQ",
			Fluid:   b.fluid.Name,
			Values:  map[string]float64{"P": p, "Q": q},
		}
	}
	sat, ok, err := b.saturatedStates(p)
	if err != nil {
		return satState{}, err
	}
	if !ok {
		return satState{}, newRangeError(b.fluid.Name, "PQ",
			"no saturation state at this pressure", map[string]float64{"P": p, "Q": q})
	}
	return sat, nil
}

// property selectors for invertTemperature.
type propertyOf int

const (
	enthalpyOf propertyOf = iota
	entropyOf
)

// invertTemperature solves f(T) = target for T on [lo, hi] by bisection,
// where f is enthalpy or entropy at fixed pressure on a fixed branch. Both
// are strictly increasing in T, so bisection is safe.
func (b *LeeKesler) invertTemperature(p, target float64, br branch, lo, hi float64, prop propertyOf, query string, values map[string]float64) (float64, error) {
	eval := func(T float64) (float64, error) {
		h, s, err := b.stateAt(p, T, br, query)
		if err != nil {
			return 0, err
		}
		if prop == enthalpyOf {
			return h, nil
		}
		return s, nil
	}

	fLo, err := eval(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := eval(hi)
	if err != nil {
		return 0, err
	}
	if target < fLo || target > fHi {
		return 0, newRangeError(b.fluid.Name, query,
			"target property outside reachable range at this pressure", values)
	}

	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		fMid, err := eval(mid)
		if err != nil {
			return 0, err
		}
		if fMid < target {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-9*mid {
			return 0.5 * (lo + hi), nil
		}
	}
	return 0, newConvergenceError(b.fluid.Name, query,
		"temperature inversion did not converge", values)
}
