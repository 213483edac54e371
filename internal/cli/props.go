package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nravel/orcsim/internal/props"
)

// PropsOptions holds flags for the props command.
type PropsOptions struct {
	*RootOptions
	Pressure    float64
	Temperature float64
	Quality     float64

	// Backend allows overriding the property backend (for testing).
	Backend props.Backend
}

// PropsResult is the payload of a single property query.
type PropsResult struct {
	Fluid       string  `json:"fluid"`
	Pressure    float64 `json:"pressure_pa"`
	Temperature float64 `json:"temperature_k"`
	Enthalpy    float64 `json:"enthalpy_j_per_kg"`
	Entropy     float64 `json:"entropy_j_per_kg_k"`
}

// NewPropsCommand creates the props command.
func NewPropsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PropsOptions{RootOptions: rootOpts, Temperature: -1, Quality: -1}

	cmd := &cobra.Command{
		Use:   "props",
		Short: "Query a single thermodynamic state of CO2",
		Long: `Resolve enthalpy and entropy of CO2 at one state, given pressure plus
either temperature or vapor quality.

Example:
  orcsim props --pressure 10e6 --temperature 323
  orcsim props --pressure 3e6 --quality 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Pressure, "pressure", 0, "pressure in Pa (required)")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", -1, "temperature in K")
	cmd.Flags().Float64Var(&opts.Quality, "quality", -1, "vapor quality in [0,1]")
	_ = cmd.MarkFlagRequired("pressure")

	return cmd
}

func runProps(opts *PropsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	hasTemp := opts.Temperature >= 0
	hasQuality := opts.Quality >= 0
	if hasTemp == hasQuality {
		msg := "exactly one of --temperature or --quality is required"
		_ = formatter.Error(ErrCodeBadConfig, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	backend := opts.Backend
	if backend == nil {
		backend = props.NewCO2()
	}

	result := PropsResult{Fluid: backend.Fluid().Name, Pressure: opts.Pressure}
	var err error
	if hasTemp {
		result.Temperature = opts.Temperature
		if result.Enthalpy, err = backend.EnthalpyPT(opts.Pressure, opts.Temperature); err == nil {
			result.Entropy, err = backend.EntropyPT(opts.Pressure, opts.Temperature)
		}
	} else {
		if result.Temperature, err = backend.SaturationTemperature(opts.Pressure); err == nil {
			if result.Enthalpy, err = backend.EnthalpyPQ(opts.Pressure, opts.Quality); err == nil {
				result.Entropy, err = backend.EntropyPQ(opts.Pressure, opts.Quality)
			}
		}
	}
	if err != nil {
		return outputPropsError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(uuid.NewString(), result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Fluid:       %s\n", result.Fluid)
	fmt.Fprintf(w, "Pressure:    %.3f MPa\n", result.Pressure/1e6)
	fmt.Fprintf(w, "Temperature: %.2f K\n", result.Temperature)
	fmt.Fprintf(w, "Enthalpy:    %.3f kJ/kg\n", result.Enthalpy/1e3)
	fmt.Fprintf(w, "Entropy:     %.4f kJ/kg.K\n", result.Entropy/1e3)
	return nil
}

func outputPropsError(formatter *OutputFormatter, err error) error {
	var le *props.LookupError
	if errors.As(err, &le) {
		_ = formatter.Error(string(le.Code), le.Message, le.Values)
		return WrapExitError(ExitFailure, "property lookup failed", err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitFailure, "property lookup failed", err)
}
