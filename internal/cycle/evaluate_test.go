package cycle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravel/orcsim/internal/props"
	"github.com/nravel/orcsim/internal/testutil"
)

// feasibleConditions returns stub-backend conditions with comfortably
// positive specific net work: a hot turbine inlet over a 3:1 pressure ratio.
func feasibleConditions() Conditions {
	return Conditions{
		EvapPressure:      3e6,
		EvapTemp:          700,
		CondPressure:      1e6,
		CondTemp:          310,
		PumpEfficiency:    0.9,
		TurbineEfficiency: 0.9,
		TargetNetPower:    100e3,
	}
}

// stubWorks computes the specific turbine and pump work the stub backend
// implies for the given conditions, in closed form.
func stubWorks(cond Conditions) (wTurbine, wPump float64) {
	k := testutil.StubR / testutil.StubCp
	ratio := cond.EvapPressure / cond.CondPressure

	wTurbineIsentropic := testutil.StubCp * cond.EvapTemp * (1 - math.Pow(ratio, -k))
	wPumpIsentropic := testutil.StubCp * cond.CondTemp * (math.Pow(ratio, k) - 1)

	return cond.TurbineEfficiency * wTurbineIsentropic, wPumpIsentropic / cond.PumpEfficiency
}

func TestEvaluate_HandComputedWorks(t *testing.T) {
	eval := New(testutil.StubBackend{})
	cond := feasibleConditions()

	result, err := eval.Evaluate(cond)
	require.NoError(t, err)

	wantTurbine, wantPump := stubWorks(cond)
	assert.InEpsilon(t, wantTurbine, result.SpecificTurbineWork, 1e-9)
	assert.InEpsilon(t, wantPump, result.SpecificPumpWork, 1e-9)
	assert.InEpsilon(t, wantTurbine-wantPump, result.SpecificNetWork, 1e-9)
}

func TestEvaluate_NetPowerIdentity(t *testing.T) {
	eval := New(testutil.StubBackend{})

	result, err := eval.Evaluate(feasibleConditions())
	require.NoError(t, err)

	assert.InEpsilon(t, result.TurbinePower-result.PumpPower, result.NetPower, 1e-9)
}

func TestEvaluate_MassFlowRoundTrip(t *testing.T) {
	eval := New(testutil.StubBackend{})
	cond := feasibleConditions()

	result, err := eval.Evaluate(cond)
	require.NoError(t, err)

	assert.Greater(t, result.MassFlow, 0.0)
	assert.False(t, math.IsInf(result.MassFlow, 0))
	assert.InEpsilon(t, cond.TargetNetPower, result.MassFlow*result.SpecificNetWork, 1e-9)
	assert.InEpsilon(t, cond.TargetNetPower, result.ElectricalPower, 1e-9)
}

func TestEvaluate_GeneratorEfficiency(t *testing.T) {
	eval := New(testutil.StubBackend{})
	cond := feasibleConditions()
	cond.GeneratorEfficiency = 0.96

	result, err := eval.Evaluate(cond)
	require.NoError(t, err)

	// Mass flow is sized so electrical output (after generator losses) meets
	// the target; the shaft net power is correspondingly larger.
	assert.InEpsilon(t, cond.TargetNetPower, result.MassFlow*result.SpecificNetWork*0.96, 1e-9)
	assert.InEpsilon(t, cond.TargetNetPower, result.ElectricalPower, 1e-9)
	assert.InEpsilon(t, cond.TargetNetPower/0.96, result.NetPower, 1e-9)
}

func TestEvaluate_HeatBalance(t *testing.T) {
	eval := New(testutil.StubBackend{})

	result, err := eval.Evaluate(feasibleConditions())
	require.NoError(t, err)

	assert.Greater(t, result.HeatInput, 0.0)
	assert.Greater(t, result.HeatRejection, 0.0)
	// First law around the loop: Qin - Qout = net shaft power.
	assert.InEpsilon(t, result.NetPower, result.HeatInput-result.HeatRejection, 1e-9)

	assert.Greater(t, result.ThermalEfficiency, 0.0)
	assert.Less(t, result.ThermalEfficiency, 1.0)
	assert.InEpsilon(t, result.ElectricalPower/result.HeatInput, result.ThermalEfficiency, 1e-12)
}

func TestEvaluate_MonotonicInTurbineEfficiency(t *testing.T) {
	eval := New(testutil.StubBackend{})

	prevNetWork := -math.MaxFloat64
	prevMassFlow := math.MaxFloat64
	for _, eta := range []float64{0.7, 0.8, 0.9, 1.0} {
		cond := feasibleConditions()
		cond.TurbineEfficiency = eta

		result, err := eval.Evaluate(cond)
		require.NoError(t, err, "eta_turbine=%v", eta)

		assert.GreaterOrEqual(t, result.SpecificNetWork, prevNetWork,
			"specific net work must not fall as turbine efficiency rises (eta=%v)", eta)
		assert.LessOrEqual(t, result.MassFlow, prevMassFlow,
			"required mass flow must not rise as turbine efficiency rises (eta=%v)", eta)
		prevNetWork = result.SpecificNetWork
		prevMassFlow = result.MassFlow
	}
}

func TestEvaluate_MonotonicInPumpEfficiency(t *testing.T) {
	eval := New(testutil.StubBackend{})

	prevNetWork := -math.MaxFloat64
	for _, eta := range []float64{0.7, 0.8, 0.9, 1.0} {
		cond := feasibleConditions()
		cond.PumpEfficiency = eta

		result, err := eval.Evaluate(cond)
		require.NoError(t, err, "eta_pump=%v", eta)

		assert.GreaterOrEqual(t, result.SpecificNetWork, prevNetWork,
			"specific net work must not fall as pump efficiency rises (eta=%v)", eta)
		prevNetWork = result.SpecificNetWork
	}
}

func TestEvaluate_RegimeFlag(t *testing.T) {
	eval := New(testutil.StubBackend{})

	// Low pressure ratio and ideal machines keep the cycle feasible at
	// turbine inlet temperatures straddling the critical point.
	base := Conditions{
		EvapPressure:      1.2e6,
		CondPressure:      1e6,
		CondTemp:          270,
		PumpEfficiency:    1.0,
		TurbineEfficiency: 1.0,
		TargetNetPower:    10e3,
	}

	tests := []struct {
		name     string
		evapTemp float64
		want     Regime
	}{
		{"above critical temperature", 305, RegimeSupercritical},
		{"below critical temperature", 290, RegimeSubcritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := base
			cond.EvapTemp = tt.evapTemp

			result, err := eval.Evaluate(cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Regime)
		})
	}
}

func TestEvaluate_StatePointsPopulated(t *testing.T) {
	eval := New(testutil.StubBackend{})
	cond := feasibleConditions()

	result, err := eval.Evaluate(cond)
	require.NoError(t, err)

	require.Len(t, result.States[:], 4)
	assert.Equal(t, PointPumpInlet, result.States[0].Label)
	assert.Equal(t, PointPumpOutlet, result.States[1].Label)
	assert.Equal(t, PointTurbineInlet, result.States[2].Label)
	assert.Equal(t, PointTurbineOutlet, result.States[3].Label)

	assert.Equal(t, cond.CondPressure, result.States[0].Pressure)
	assert.Equal(t, cond.EvapPressure, result.States[1].Pressure)
	assert.Equal(t, cond.EvapPressure, result.States[2].Pressure)
	assert.Equal(t, cond.CondPressure, result.States[3].Pressure)

	// The pump heats the fluid slightly; the turbine cools it.
	assert.Greater(t, result.States[1].Temperature, result.States[0].Temperature)
	assert.Less(t, result.States[3].Temperature, result.States[2].Temperature)
}

func TestEvaluate_InvalidConditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Conditions)
	}{
		{"condenser pressure above evaporator", func(c *Conditions) { c.CondPressure = c.EvapPressure + 1 }},
		{"condenser pressure equal to evaporator", func(c *Conditions) { c.CondPressure = c.EvapPressure }},
		{"non-positive condenser pressure", func(c *Conditions) { c.CondPressure = 0 }},
		{"negative condenser pressure", func(c *Conditions) { c.CondPressure = -1e5 }},
		{"pump efficiency zero", func(c *Conditions) { c.PumpEfficiency = 0 }},
		{"pump efficiency above one", func(c *Conditions) { c.PumpEfficiency = 1.2 }},
		{"turbine efficiency zero", func(c *Conditions) { c.TurbineEfficiency = 0 }},
		{"turbine efficiency above one", func(c *Conditions) { c.TurbineEfficiency = 1.01 }},
		{"generator efficiency above one", func(c *Conditions) { c.GeneratorEfficiency = 1.04 }},
		{"non-positive target power", func(c *Conditions) { c.TargetNetPower = 0 }},
		{"evaporator temperature below fluid range", func(c *Conditions) { c.EvapTemp = 50 }},
		{"condenser temperature above fluid range", func(c *Conditions) { c.CondTemp = 5000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := feasibleConditions()
			tt.mutate(&cond)

			// A failing backend proves validation happens before any lookup:
			// reaching the backend would produce a different error kind.
			eval := New(testutil.FailingBackend{Err: assert.AnError})
			_, err := eval.Evaluate(cond)
			require.Error(t, err)
			assert.True(t, IsInvalidConditions(err), "got %v", err)
			assert.False(t, IsLookupFailure(err))
		})
	}
}

func TestEvaluate_InfeasibleCycle(t *testing.T) {
	eval := New(testutil.StubBackend{})

	// Modest turbine inlet temperature over a 3:1 pressure ratio with lossy
	// machines: pump work exceeds turbine work.
	cond := Conditions{
		EvapPressure:      3e6,
		EvapTemp:          450,
		CondPressure:      1e6,
		CondTemp:          320,
		PumpEfficiency:    0.75,
		TurbineEfficiency: 0.85,
		TargetNetPower:    100e3,
	}

	_, err := eval.Evaluate(cond)
	require.Error(t, err)
	assert.True(t, IsInfeasible(err), "got %v", err)
}

func TestEvaluate_PropertyLookupError(t *testing.T) {
	lookupErr := &props.LookupError{
		Code:    props.ErrCodeOutOfRange,
		Message: "state outside valid pressure/temperature envelope",
		Query:   "PT",
		Fluid:   "stub",
	}
	eval := New(testutil.FailingBackend{Err: lookupErr})

	_, err := eval.Evaluate(feasibleConditions())
	require.Error(t, err)
	assert.True(t, IsLookupFailure(err), "got %v", err)

	// The failing point is identified and the backend error stays reachable
	// through the wrap chain.
	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, PointPumpInlet, ce.Point)
	assert.True(t, props.IsOutOfRange(err))
}
