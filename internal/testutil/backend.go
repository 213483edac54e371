package testutil

import (
	"math"

	"github.com/nravel/orcsim/internal/props"
)

// Stub backend constants. Chosen round so expected values in tests can be
// computed by hand with the same closed-form expressions.
const (
	StubCp       = 1000.0 // specific heat, J/(kg·K)
	StubR        = 200.0  // specific gas constant, J/(kg·K)
	StubRefTemp  = 300.0  // caloric reference temperature, K
	StubRefPres  = 1e5    // caloric reference pressure, Pa
	StubSatSlope = 1e4    // toy saturation curve: Psat = StubSatSlope * T
)

// StubBackend is a hand-computable property backend for tests: a perfect gas
// with constant specific heat.
//
//	h(T)    = StubCp * (T - StubRefTemp)
//	s(T, P) = StubCp * ln(T/StubRefTemp) - StubR * ln(P/StubRefPres)
//
// Unlike the real backend it has no two-phase region; quality queries fail.
// The saturation curve is a linear toy used only to exercise design-point
// plumbing. Deterministic and safe for concurrent use.
type StubBackend struct{}

// Fluid returns stub fluid constants. The critical temperature matches CO2 so
// regime-flag tests read naturally.
func (StubBackend) Fluid() props.FluidData {
	return props.FluidData{
		Name:             "stub",
		MolarMass:        props.UniversalGasConstant / StubR,
		CriticalTemp:     304.1282,
		CriticalPressure: 7.3773e6,
		TripleTemp:       100,
		MaxTemp:          2000,
		MaxPressure:      100e6,
		RefTemp:          StubRefTemp,
		RefPressure:      StubRefPres,
	}
}

// Enthalpy returns the stub enthalpy at T. Exported so tests can compute
// expected values with the same expression.
func (StubBackend) Enthalpy(T float64) float64 {
	return StubCp * (T - StubRefTemp)
}

// Entropy returns the stub entropy at (p, T).
func (StubBackend) Entropy(p, T float64) float64 {
	return StubCp*math.Log(T/StubRefTemp) - StubR*math.Log(p/StubRefPres)
}

func (b StubBackend) EnthalpyPT(p, T float64) (float64, error) {
	return b.Enthalpy(T), nil
}

func (b StubBackend) EntropyPT(p, T float64) (float64, error) {
	return b.Entropy(p, T), nil
}

func (b StubBackend) TemperaturePS(p, s float64) (float64, error) {
	return StubRefTemp * math.Exp((s+StubR*math.Log(p/StubRefPres))/StubCp), nil
}

func (b StubBackend) EnthalpyPS(p, s float64) (float64, error) {
	T, _ := b.TemperaturePS(p, s)
	return b.Enthalpy(T), nil
}

func (b StubBackend) TemperaturePH(p, h float64) (float64, error) {
	return StubRefTemp + h/StubCp, nil
}

func (b StubBackend) EntropyPH(p, h float64) (float64, error) {
	T, _ := b.TemperaturePH(p, h)
	return b.Entropy(p, T), nil
}

func (b StubBackend) EnthalpyPQ(p, q float64) (float64, error) {
	return 0, b.noTwoPhase(p, q)
}

func (b StubBackend) EntropyPQ(p, q float64) (float64, error) {
	return 0, b.noTwoPhase(p, q)
}

func (b StubBackend) SaturationPressure(T float64) (float64, error) {
	return StubSatSlope * T, nil
}

func (b StubBackend) SaturationTemperature(p float64) (float64, error) {
	return p / StubSatSlope, nil
}

func (b StubBackend) noTwoPhase(p, q float64) error {
	return &props.LookupError{
		Code:    props.ErrCodeOutOfRange,
		Message: "stub backend has no two-phase model",
		Query:   "PQ",
		Fluid:   "stub",
		Values:  map[string]float64{"P": p, "Q": q},
	}
}

// FailingBackend returns the configured error from every lookup. Used to
// exercise property-lookup error paths.
type FailingBackend struct {
	Err error
}

func (b FailingBackend) Fluid() props.FluidData {
	return StubBackend{}.Fluid()
}

func (b FailingBackend) EnthalpyPT(p, T float64) (float64, error)    { return 0, b.Err }
func (b FailingBackend) EntropyPT(p, T float64) (float64, error)     { return 0, b.Err }
func (b FailingBackend) EnthalpyPS(p, s float64) (float64, error)    { return 0, b.Err }
func (b FailingBackend) TemperaturePS(p, s float64) (float64, error) { return 0, b.Err }
func (b FailingBackend) TemperaturePH(p, h float64) (float64, error) { return 0, b.Err }
func (b FailingBackend) EntropyPH(p, h float64) (float64, error)     { return 0, b.Err }
func (b FailingBackend) EnthalpyPQ(p, q float64) (float64, error)    { return 0, b.Err }
func (b FailingBackend) EntropyPQ(p, q float64) (float64, error)     { return 0, b.Err }

func (b FailingBackend) SaturationPressure(T float64) (float64, error) {
	return 0, b.Err
}

func (b FailingBackend) SaturationTemperature(p float64) (float64, error) {
	return 0, b.Err
}

var (
	_ props.Backend = StubBackend{}
	_ props.Backend = FailingBackend{}
)
