// Package props resolves thermodynamic properties of a working fluid from two
// independent state variables.
//
// The package exposes a small query interface (Backend) so that cycle
// calculations depend only on the capability "resolve enthalpy/entropy given
// pressure plus one of temperature, entropy, enthalpy, or quality" and not on
// any particular equation of state.
//
// The shipped implementation combines:
//   - an ideal-gas caloric model (cubic cp0 polynomial) for the baseline
//     enthalpy and entropy,
//   - the Lee-Kesler three-parameter corresponding-states correlation for the
//     real-fluid departures, with liquid/vapor root selection,
//   - a Wagner-type ancillary equation for the vapor-pressure curve, which
//     also anchors two-phase (quality) states.
//
// Inverse queries (temperature from pressure and enthalpy or entropy) are
// solved by bisection on the relevant single-phase branch; states inside the
// two-phase dome resolve by quality interpolation between the saturated
// endpoints.
//
// Everything is SI: Pa, K, J/kg, J/(kg·K). All lookups are pure functions of
// their inputs and safe for concurrent use. A failed lookup returns a
// *LookupError identifying the query and the offending values.
package props
