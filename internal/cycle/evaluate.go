package cycle

import (
	"github.com/nravel/orcsim/internal/props"
)

// Evaluator computes the steady-state performance of a Rankine cycle against
// a property backend. Evaluations are independent, stateless and deterministic
// given a deterministic backend.
type Evaluator struct {
	backend props.Backend
}

// New creates an Evaluator on the given property backend.
func New(backend props.Backend) *Evaluator {
	return &Evaluator{backend: backend}
}

// Evaluate resolves the four cycle state points, solves the mass flow so net
// electrical power meets the target, and derives powers, heat duties and
// thermal efficiency.
//
// The evaluation either fully succeeds or fully fails: validation errors
// surface before any property lookup, backend failures carry the offending
// state point, and non-positive specific net work reports the cycle as
// infeasible.
func (e *Evaluator) Evaluate(cond Conditions) (*Result, error) {
	if err := e.validate(cond); err != nil {
		return nil, err
	}

	b := e.backend
	etaGen := cond.generatorEfficiency()

	// State 1: condenser outlet / pump inlet.
	h1, err := b.EnthalpyPT(cond.CondPressure, cond.CondTemp)
	if err != nil {
		return nil, newLookupError(PointPumpInlet, err)
	}
	s1, err := b.EntropyPT(cond.CondPressure, cond.CondTemp)
	if err != nil {
		return nil, newLookupError(PointPumpInlet, err)
	}

	// Pump 1 -> 2: isentropic rise to evaporator pressure, divided by the
	// isentropic efficiency.
	h2s, err := b.EnthalpyPS(cond.EvapPressure, s1)
	if err != nil {
		return nil, newLookupError(PointPumpOutlet, err)
	}
	wPump := (h2s - h1) / cond.PumpEfficiency
	h2 := h1 + wPump
	T2, err := b.TemperaturePH(cond.EvapPressure, h2)
	if err != nil {
		return nil, newLookupError(PointPumpOutlet, err)
	}
	s2, err := b.EntropyPH(cond.EvapPressure, h2)
	if err != nil {
		return nil, newLookupError(PointPumpOutlet, err)
	}

	// State 3: evaporator outlet / turbine inlet.
	h3, err := b.EnthalpyPT(cond.EvapPressure, cond.EvapTemp)
	if err != nil {
		return nil, newLookupError(PointTurbineInlet, err)
	}
	s3, err := b.EntropyPT(cond.EvapPressure, cond.EvapTemp)
	if err != nil {
		return nil, newLookupError(PointTurbineInlet, err)
	}

	// Turbine 3 -> 4: isentropic drop to condenser pressure, scaled by the
	// isentropic efficiency.
	h4s, err := b.EnthalpyPS(cond.CondPressure, s3)
	if err != nil {
		return nil, newLookupError(PointTurbineOutlet, err)
	}
	wTurbine := cond.TurbineEfficiency * (h3 - h4s)
	h4 := h3 - wTurbine
	T4, err := b.TemperaturePH(cond.CondPressure, h4)
	if err != nil {
		return nil, newLookupError(PointTurbineOutlet, err)
	}
	s4, err := b.EntropyPH(cond.CondPressure, h4)
	if err != nil {
		return nil, newLookupError(PointTurbineOutlet, err)
	}

	wNet := wTurbine - wPump
	if wNet <= 0 {
		return nil, newInfeasibleError(wNet)
	}

	massFlow := cond.TargetNetPower / (wNet * etaGen)

	turbinePower := massFlow * wTurbine
	pumpPower := massFlow * wPump
	netPower := turbinePower - pumpPower
	heatInput := massFlow * (h3 - h2)
	heatRejection := massFlow * (h4 - h1)
	electrical := netPower * etaGen

	regime := RegimeSubcritical
	if cond.EvapTemp >= b.Fluid().CriticalTemp {
		regime = RegimeSupercritical
	}

	return &Result{
		States: [4]StatePoint{
			{Label: PointPumpInlet, Pressure: cond.CondPressure, Temperature: cond.CondTemp, Enthalpy: h1, Entropy: s1},
			{Label: PointPumpOutlet, Pressure: cond.EvapPressure, Temperature: T2, Enthalpy: h2, Entropy: s2},
			{Label: PointTurbineInlet, Pressure: cond.EvapPressure, Temperature: cond.EvapTemp, Enthalpy: h3, Entropy: s3},
			{Label: PointTurbineOutlet, Pressure: cond.CondPressure, Temperature: T4, Enthalpy: h4, Entropy: s4},
		},
		SpecificTurbineWork: wTurbine,
		SpecificPumpWork:    wPump,
		SpecificNetWork:     wNet,
		MassFlow:            massFlow,
		TurbinePower:        turbinePower,
		PumpPower:           pumpPower,
		NetPower:            netPower,
		HeatInput:           heatInput,
		HeatRejection:       heatRejection,
		ElectricalPower:     electrical,
		ThermalEfficiency:   electrical / heatInput,
		Regime:              regime,
	}, nil
}

// validate checks the conditions before any property lookup.
func (e *Evaluator) validate(cond Conditions) error {
	if cond.CondPressure <= 0 {
		return newConditionsError("condenser pressure must be positive, got %g Pa", cond.CondPressure)
	}
	if cond.EvapPressure <= cond.CondPressure {
		return newConditionsError("evaporator pressure (%g Pa) must exceed condenser pressure (%g Pa)",
			cond.EvapPressure, cond.CondPressure)
	}

	f := e.backend.Fluid()
	if cond.EvapTemp < f.TripleTemp || cond.EvapTemp > f.MaxTemp {
		return newConditionsError("evaporator temperature %g K outside valid range [%g, %g] K for %s",
			cond.EvapTemp, f.TripleTemp, f.MaxTemp, f.Name)
	}
	if cond.CondTemp < f.TripleTemp || cond.CondTemp > f.MaxTemp {
		return newConditionsError("condenser temperature %g K outside valid range [%g, %g] K for %s",
			cond.CondTemp, f.TripleTemp, f.MaxTemp, f.Name)
	}

	if cond.PumpEfficiency <= 0 || cond.PumpEfficiency > 1 {
		return newConditionsError("pump efficiency must be in (0, 1], got %g", cond.PumpEfficiency)
	}
	if cond.TurbineEfficiency <= 0 || cond.TurbineEfficiency > 1 {
		return newConditionsError("turbine efficiency must be in (0, 1], got %g", cond.TurbineEfficiency)
	}
	if g := cond.GeneratorEfficiency; g < 0 || g > 1 {
		return newConditionsError("generator efficiency must be in (0, 1], got %g", g)
	}

	if cond.TargetNetPower <= 0 {
		return newConditionsError("target net power must be positive, got %g W", cond.TargetNetPower)
	}
	return nil
}
