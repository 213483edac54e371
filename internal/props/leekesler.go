package props

import "math"

// Lee-Kesler three-parameter corresponding-states correlation.
//
// Real-fluid behavior is expressed as departures from the ideal gas, computed
// from a modified Benedict-Webb-Rubin equation in reduced coordinates
// (Tr = T/Tc, Pr = P/Pc, Vr = Pc*v/(R*Tc)). Two coefficient sets are fitted:
// one for a "simple" spherical fluid and one for a reference fluid
// (n-octane, acentric factor 0.3978). Properties of the target fluid are the
// simple-fluid value plus an acentric-factor interpolation toward the
// reference fluid.
//
// Coefficients from Lee & Kesler (1975), as tabulated in Sonntag, Borgnakke
// & Van Wylen, Fundamentals of Classical Thermodynamics.

// referenceAcentricFactor is omega of the Lee-Kesler reference fluid.
const referenceAcentricFactor = 0.3978

// lkCoeffs is one Lee-Kesler coefficient set.
type lkCoeffs struct {
	b1, b2, b3, b4 float64
	c1, c2, c3, c4 float64
	d1, d2         float64
	beta, gamma    float64
}

var lkSimple = lkCoeffs{
	b1: 0.1181193, b2: 0.265728, b3: 0.154790, b4: 0.030323,
	c1: 0.0236744, c2: 0.0186984, c3: 0.0, c4: 0.042724,
	d1: 0.155488e-4, d2: 0.623689e-4,
	beta: 0.65392, gamma: 0.060167,
}

var lkReference = lkCoeffs{
	b1: 0.2026579, b2: 0.331511, b3: 0.027655, b4: 0.203488,
	c1: 0.0313885, c2: 0.0503618, c3: 0.016901, c4: 0.041577,
	d1: 0.48736e-4, d2: 0.740336e-5,
	beta: 1.226, gamma: 0.03754,
}

// temperatureFuncs are the B, C, D groups of the reduced equation of state,
// which depend on reduced temperature only.
func (c lkCoeffs) temperatureFuncs(Tr float64) (B, C, D float64) {
	B = c.b1 - c.b2/Tr - c.b3/(Tr*Tr) - c.b4/(Tr*Tr*Tr)
	C = c.c1 - c.c2/Tr + c.c3/(Tr*Tr*Tr)
	D = c.d1 + c.d2/Tr
	return B, C, D
}

// reducedPressure evaluates Pr from (Tr, Vr) for this coefficient set.
func (c lkCoeffs) reducedPressure(Tr, Vr float64) float64 {
	B, C, D := c.temperatureFuncs(Tr)
	Vr2 := Vr * Vr
	expTerm := math.Exp(-c.gamma / Vr2)
	return (Tr / Vr) * (1 +
		B/Vr +
		C/Vr2 +
		D/(Vr2*Vr2*Vr) +
		c.c4/(Tr*Tr*Tr*Vr2)*(c.beta+c.gamma/Vr2)*expTerm)
}

// departures holds the dimensionless departure functions for one coefficient
// set at a solved (Tr, Pr, Vr) state.
type departures struct {
	Z float64 // compressibility factor
	H float64 // (h - h_ideal) / (R*Tc), negative for attraction-dominated states
	S float64 // (s - s_ideal) / R at the same T and P
}

// departuresAt solves the reduced volume root starting from vrGuess and
// evaluates Z and the enthalpy/entropy departures.
func (c lkCoeffs) departuresAt(Tr, Pr, vrGuess float64) (departures, bool) {
	Vr, ok := c.solveVolume(Tr, Pr, vrGuess)
	if !ok {
		return departures{}, false
	}

	Z := Pr * Vr / Tr
	Vr2 := Vr * Vr
	Vr5 := Vr2 * Vr2 * Vr
	Tr2 := Tr * Tr
	Tr3 := Tr2 * Tr

	E := c.c4 / (2 * Tr3 * c.gamma) *
		(c.beta + 1 - (c.beta+1+c.gamma/Vr2)*math.Exp(-c.gamma/Vr2))

	H := Tr * (Z - 1 -
		(c.b2+2*c.b3/Tr+3*c.b4/Tr2)/(Tr*Vr) -
		(c.c2-3*c.c3/Tr2)/(2*Tr*Vr2) +
		c.d2/(5*Tr*Vr5) +
		3*E)

	S := math.Log(Z) -
		(c.b1+c.b3/Tr2+2*c.b4/Tr3)/Vr -
		(c.c1-2*c.c3/Tr3)/(2*Vr2) -
		c.d1/(5*Vr5) +
		2*E

	return departures{Z: Z, H: H, S: S}, true
}

// solveVolume finds the reduced-volume root of Pr(Tr, Vr) = Pr by damped
// Newton iteration with a forward-difference derivative. The starting guess
// selects the branch: an ideal-gas guess converges to the vapor root, a small
// guess to the liquid root.
func (c lkCoeffs) solveVolume(Tr, Pr, guess float64) (float64, bool) {
	const (
		tol     = 1e-10
		maxIter = 200
		minVr   = 1e-4
	)

	f := func(Vr float64) float64 { return c.reducedPressure(Tr, Vr) - Pr }

	x := guess
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, true
		}
		dx := x * 1e-7
		dfx := (f(x+dx) - fx) / dx
		if dfx == 0 || math.IsNaN(dfx) {
			return 0, false
		}
		step := fx / dfx
		// Halve the step until it keeps the iterate positive.
		next := x - step
		for next <= minVr {
			step /= 2
			next = x - step
			if math.Abs(step) < minVr*tol {
				return 0, false
			}
		}
		x = next
	}
	return 0, false
}

// blend interpolates a property between the simple and reference fluids by
// acentric factor: F = F0 + (omega/omegaRef)*(Fref - F0).
func blend(omega, simple, reference float64) float64 {
	return simple + (omega/referenceAcentricFactor)*(reference-simple)
}
