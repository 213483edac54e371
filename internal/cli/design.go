package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nravel/orcsim/internal/cycle"
	"github.com/nravel/orcsim/internal/props"
)

// DesignOptions holds flags for the design command.
type DesignOptions struct {
	*RootOptions

	// Backend allows overriding the property backend (for testing).
	// If nil, defaults to the CO2 Lee-Kesler backend.
	Backend props.Backend
}

// DesignReport is the JSON payload of the design command: the derived
// boundary conditions alongside the evaluation result.
type DesignReport struct {
	Conditions cycle.Conditions `json:"conditions"`
	Warnings   []string         `json:"warnings,omitempty"`
	Result     *cycle.Result    `json:"result"`
}

// NewDesignCommand creates the design command.
func NewDesignCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DesignOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "design <config.yaml>",
		Short: "Size a cycle from heat source and sink temperatures",
		Long: `Derive cycle boundary conditions from a YAML config describing the heat
source and sink: evaporation and condensation temperatures follow from the
source/sink temperatures and heat-exchanger pinches, pressures from the
saturation curve, with superheat at the turbine inlet and subcooling at the
pump inlet. The derived cycle is then evaluated like the evaluate command.

Example:
  orcsim design examples/geothermal-design.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesign(opts, args[0], cmd)
		},
	}

	return cmd
}

func runDesign(opts *DesignOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var spec cycle.DesignSpec
	if err := LoadConfig(configPath, &spec); err != nil {
		return outputLoadError(formatter, err)
	}
	slog.Debug("design spec loaded", "path", configPath,
		"source_temperature_k", spec.SourceTemp, "sink_temperature_k", spec.SinkTemp)

	backend := opts.Backend
	if backend == nil {
		backend = props.NewCO2()
	}

	cond, warnings, err := cycle.DesignPoint(backend, spec)
	if err != nil {
		return outputCycleError(formatter, err)
	}
	slog.Debug("design point derived",
		"evap_pressure_pa", cond.EvapPressure, "cond_pressure_pa", cond.CondPressure,
		"warnings", len(warnings))

	result, err := cycle.New(backend).Evaluate(cond)
	if err != nil {
		return outputCycleError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(uuid.NewString(), DesignReport{
			Conditions: cond,
			Warnings:   warnings,
			Result:     result,
		})
	}

	WriteWarnings(formatter.Writer, warnings)
	writeDerivedConditions(formatter, cond)
	WriteReport(formatter.Writer, result)
	return nil
}

func writeDerivedConditions(formatter *OutputFormatter, cond cycle.Conditions) {
	w := formatter.Writer
	fmt.Fprintln(w, "Derived conditions:")
	fmt.Fprintf(w, "  Evaporator: %.3f MPa, turbine inlet %.2f K\n", cond.EvapPressure/1e6, cond.EvapTemp)
	fmt.Fprintf(w, "  Condenser:  %.3f MPa, pump inlet %.2f K\n", cond.CondPressure/1e6, cond.CondTemp)
	fmt.Fprintln(w)
}
