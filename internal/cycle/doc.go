// Package cycle evaluates the steady-state performance of an Organic Rankine
// Cycle sized to a target net electrical output.
//
// One evaluation is a straight-line computation: the four cycle state points
// (pump inlet/outlet, turbine inlet/outlet) are resolved against a property
// backend, with isentropic-efficiency losses applied in the pump and turbine;
// the mass flow is then solved so net power meets the target, and heat input,
// heat rejection and thermal efficiency follow by energy balance. The
// evaporator condition is flagged supercritical or subcritical against the
// fluid's critical temperature.
//
// There is no state machine and no retry: each call is deterministic given
// its inputs and either fully succeeds or fully fails with a *CycleError.
package cycle
