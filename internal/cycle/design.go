package cycle

import (
	"fmt"
	"log/slog"

	"github.com/nravel/orcsim/internal/props"
)

// DesignSpec describes a cycle by its heat source and sink instead of by
// explicit pressures: evaporation and condensation temperatures follow from
// the source/sink temperatures and the heat-exchanger pinches, and the
// pressures from the saturation curve.
type DesignSpec struct {
	// SourceTemp is the heat source (e.g. geothermal brine) temperature, K.
	SourceTemp float64 `yaml:"source_temperature_k" json:"source_temperature_k"`

	// SinkTemp is the cooling medium (e.g. seawater) temperature, K.
	SinkTemp float64 `yaml:"sink_temperature_k" json:"sink_temperature_k"`

	// EvapPinch and CondPinch are the heat-exchanger pinch temperature
	// differences, K.
	EvapPinch float64 `yaml:"evaporator_pinch_k" json:"evaporator_pinch_k"`
	CondPinch float64 `yaml:"condenser_pinch_k" json:"condenser_pinch_k"`

	// Superheat raises the turbine inlet above the evaporation temperature, K.
	Superheat float64 `yaml:"superheat_k" json:"superheat_k"`

	// Subcool lowers the pump inlet below the condensation temperature, K.
	Subcool float64 `yaml:"subcool_k" json:"subcool_k"`

	// Efficiencies, fractions in (0, 1].
	PumpEfficiency      float64 `yaml:"pump_efficiency" json:"pump_efficiency"`
	TurbineEfficiency   float64 `yaml:"turbine_efficiency" json:"turbine_efficiency"`
	GeneratorEfficiency float64 `yaml:"generator_efficiency,omitempty" json:"generator_efficiency,omitempty"`

	// TargetNetPower is the net electrical output, W.
	TargetNetPower float64 `yaml:"target_net_power_w" json:"target_net_power_w"`
}

// DesignPoint derives explicit cycle Conditions from a DesignSpec.
//
// The evaporation temperature is the source temperature less the evaporator
// pinch, clipped below the critical temperature so a saturation pressure
// exists; the condensation temperature is the sink temperature plus the
// condenser pinch. Both pressures come from the saturation curve. The turbine
// inlet gains the superheat (clipped just below critical when it would cross),
// and the pump inlet loses the subcooling.
//
// Clips are returned as warnings and logged; they mirror conditions under
// which the requested design cannot be met exactly.
func DesignPoint(backend props.Backend, spec DesignSpec) (Conditions, []string, error) {
	var warnings []string
	f := backend.Fluid()

	evapTemp := spec.SourceTemp - spec.EvapPinch
	if evapTemp > f.CriticalTemp-1 {
		evapTemp = f.CriticalTemp - 1
		warnings = append(warnings,
			fmt.Sprintf("evaporation temperature exceeds critical temperature; clipped to %.2f K", evapTemp))
		slog.Warn("evaporation temperature clipped below critical", "temperature_k", evapTemp)
	}
	condTemp := spec.SinkTemp + spec.CondPinch

	evapPressure, err := backend.SaturationPressure(evapTemp)
	if err != nil {
		return Conditions{}, warnings, newLookupError(PointTurbineInlet, err)
	}
	condPressure, err := backend.SaturationPressure(condTemp)
	if err != nil {
		return Conditions{}, warnings, newLookupError(PointPumpInlet, err)
	}

	turbineInlet := evapTemp + spec.Superheat
	if turbineInlet >= f.CriticalTemp {
		turbineInlet = f.CriticalTemp - 0.1
		warnings = append(warnings,
			fmt.Sprintf("superheated turbine inlet crosses critical temperature; clipped to %.2f K", turbineInlet))
		slog.Warn("turbine inlet temperature clipped below critical", "temperature_k", turbineInlet)
	}
	pumpInlet := condTemp - spec.Subcool

	return Conditions{
		EvapPressure:        evapPressure,
		EvapTemp:            turbineInlet,
		CondPressure:        condPressure,
		CondTemp:            pumpInlet,
		PumpEfficiency:      spec.PumpEfficiency,
		TurbineEfficiency:   spec.TurbineEfficiency,
		GeneratorEfficiency: spec.GeneratorEfficiency,
		TargetNetPower:      spec.TargetNetPower,
	}, warnings, nil
}
