package cli

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nravel/orcsim/internal/cycle"
)

// WriteReport renders a cycle result as the human-readable text report.
// Pressures print in MPa and specific quantities in kJ/kg; absolute powers
// keep W with digit grouping so 100 kW reads as 100,000.
func WriteReport(w io.Writer, res *cycle.Result) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, "Cycle state points:")
	fmt.Fprintf(w, "  %-15s %10s %10s %12s %14s\n", "point", "P [MPa]", "T [K]", "h [kJ/kg]", "s [kJ/kg.K]")
	for _, st := range res.States {
		fmt.Fprintf(w, "  %-15s %10.3f %10.2f %12.3f %14.4f\n",
			st.Label, st.Pressure/1e6, st.Temperature, st.Enthalpy/1e3, st.Entropy/1e3)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Specific turbine work: %.3f kJ/kg\n", res.SpecificTurbineWork/1e3)
	fmt.Fprintf(w, "Specific pump work:    %.3f kJ/kg\n", res.SpecificPumpWork/1e3)
	fmt.Fprintf(w, "Specific net work:     %.3f kJ/kg\n", res.SpecificNetWork/1e3)
	fmt.Fprintln(w)

	p.Fprintf(w, "Mass flow:          %.3f kg/s\n", res.MassFlow)
	p.Fprintf(w, "Turbine power:      %.1f W\n", res.TurbinePower)
	p.Fprintf(w, "Pump power:         %.1f W\n", res.PumpPower)
	p.Fprintf(w, "Net power:          %.1f W\n", res.NetPower)
	p.Fprintf(w, "Electrical power:   %.1f W\n", res.ElectricalPower)
	p.Fprintf(w, "Heat input:         %.1f W\n", res.HeatInput)
	p.Fprintf(w, "Heat rejection:     %.1f W\n", res.HeatRejection)
	fmt.Fprintf(w, "Thermal efficiency: %.2f %%\n", res.ThermalEfficiency*100)
	fmt.Fprintf(w, "Regime:             %s\n", res.Regime)
}

// WriteWarnings renders design-point warnings ahead of a text report.
func WriteWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
	}
}
