package cli

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nravel/orcsim/internal/cycle"
	"github.com/nravel/orcsim/internal/props"
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions

	// Backend allows overriding the property backend (for testing).
	// If nil, defaults to the CO2 Lee-Kesler backend.
	Backend props.Backend
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate <config.yaml>",
		Short: "Evaluate a cycle from explicit boundary conditions",
		Long: `Evaluate the steady-state cycle described by a YAML config of explicit
boundary conditions: evaporator and condenser pressure/temperature, pump and
turbine isentropic efficiencies, and the target net electrical power.

Example:
  orcsim evaluate examples/co2-100kw.yaml
  orcsim evaluate --format json examples/co2-100kw.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runEvaluate(opts *EvaluateOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var cond cycle.Conditions
	if err := LoadConfig(configPath, &cond); err != nil {
		return outputLoadError(formatter, err)
	}
	slog.Debug("config loaded", "path", configPath,
		"evap_pressure_pa", cond.EvapPressure, "cond_pressure_pa", cond.CondPressure,
		"target_net_power_w", cond.TargetNetPower)

	backend := opts.Backend
	if backend == nil {
		backend = props.NewCO2()
	}

	result, err := cycle.New(backend).Evaluate(cond)
	if err != nil {
		return outputCycleError(formatter, err)
	}
	slog.Debug("cycle evaluated",
		"mass_flow_kg_per_s", result.MassFlow,
		"thermal_efficiency", result.ThermalEfficiency,
		"regime", result.Regime)

	return outputResult(formatter, result, nil)
}

// outputResult renders a successful evaluation in the configured format.
func outputResult(formatter *OutputFormatter, result *cycle.Result, warnings []string) error {
	if formatter.Format == "json" {
		payload := struct {
			Warnings []string      `json:"warnings,omitempty"`
			Result   *cycle.Result `json:"result"`
		}{Warnings: warnings, Result: result}
		return formatter.Success(uuid.NewString(), payload)
	}

	WriteWarnings(formatter.Writer, warnings)
	WriteReport(formatter.Writer, result)
	return nil
}

// outputLoadError reports a config-load failure. Always a command error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		_ = formatter.Error(le.Code, le.Message, le.Path)
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load config", err)
}

// outputCycleError maps evaluation failures to output and exit codes:
// invalid input is a command error, physics failures are evaluation failures.
func outputCycleError(formatter *OutputFormatter, err error) error {
	var ce *cycle.CycleError
	if !errors.As(err, &ce) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}

	details := interface{}(nil)
	if ce.Point != "" {
		details = map[string]string{"point": ce.Point}
	}
	_ = formatter.Error(string(ce.Code), ce.Message, details)

	if ce.Code == cycle.ErrCodeInvalidConditions {
		return WrapExitError(ExitCommandError, "invalid cycle conditions", err)
	}
	return WrapExitError(ExitFailure, "evaluation failed", err)
}
