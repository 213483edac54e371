package cycle

// Regime flags whether the evaporator operates above or below the working
// fluid's critical temperature.
type Regime string

const (
	// RegimeSupercritical: evaporator temperature at or above critical.
	RegimeSupercritical Regime = "supercritical"

	// RegimeSubcritical: evaporator temperature below critical.
	RegimeSubcritical Regime = "subcritical"
)

// Conditions are the boundary conditions for one cycle evaluation.
// All fields are SI (Pa, K, W); efficiencies are fractions in (0, 1].
// Conditions are immutable inputs: Evaluate never modifies them.
type Conditions struct {
	// EvapPressure is the evaporator (high-side) pressure.
	EvapPressure float64 `yaml:"evaporator_pressure_pa" json:"evaporator_pressure_pa"`

	// EvapTemp is the evaporator outlet / turbine inlet temperature.
	EvapTemp float64 `yaml:"evaporator_temperature_k" json:"evaporator_temperature_k"`

	// CondPressure is the condenser (low-side) pressure.
	CondPressure float64 `yaml:"condenser_pressure_pa" json:"condenser_pressure_pa"`

	// CondTemp is the condenser outlet / pump inlet temperature.
	CondTemp float64 `yaml:"condenser_temperature_k" json:"condenser_temperature_k"`

	// PumpEfficiency is the pump isentropic efficiency.
	PumpEfficiency float64 `yaml:"pump_efficiency" json:"pump_efficiency"`

	// TurbineEfficiency is the turbine isentropic efficiency.
	TurbineEfficiency float64 `yaml:"turbine_efficiency" json:"turbine_efficiency"`

	// GeneratorEfficiency covers generator plus gearbox losses between shaft
	// and electrical output. Zero means "not specified" and defaults to 1.
	GeneratorEfficiency float64 `yaml:"generator_efficiency,omitempty" json:"generator_efficiency,omitempty"`

	// TargetNetPower is the net electrical output the mass flow is sized for.
	TargetNetPower float64 `yaml:"target_net_power_w" json:"target_net_power_w"`
}

// generatorEfficiency returns the effective generator efficiency with the
// unspecified-field default applied.
func (c Conditions) generatorEfficiency() float64 {
	if c.GeneratorEfficiency == 0 {
		return 1
	}
	return c.GeneratorEfficiency
}

// State-point labels, in flow order around the cycle.
const (
	PointPumpInlet     = "pump_inlet"     // condenser outlet, state 1
	PointPumpOutlet    = "pump_outlet"    // evaporator inlet, state 2
	PointTurbineInlet  = "turbine_inlet"  // evaporator outlet, state 3
	PointTurbineOutlet = "turbine_outlet" // condenser inlet, state 4
)

// StatePoint is one resolved cycle node. Read-only once computed.
type StatePoint struct {
	Label       string  `json:"label"`
	Pressure    float64 `json:"pressure_pa"`
	Temperature float64 `json:"temperature_k"`
	Enthalpy    float64 `json:"enthalpy_j_per_kg"`
	Entropy     float64 `json:"entropy_j_per_kg_k"`
}

// Result is the outcome of one cycle evaluation. Derived entirely from the
// four state points and the conditions; never mutated after Evaluate returns.
type Result struct {
	// States holds the four cycle nodes in flow order:
	// pump inlet, pump outlet, turbine inlet, turbine outlet.
	States [4]StatePoint `json:"states"`

	// Specific quantities, per unit mass flow (J/kg).
	SpecificTurbineWork float64 `json:"specific_turbine_work_j_per_kg"`
	SpecificPumpWork    float64 `json:"specific_pump_work_j_per_kg"`
	SpecificNetWork     float64 `json:"specific_net_work_j_per_kg"`

	// MassFlow is solved so net electrical power meets the target (kg/s).
	MassFlow float64 `json:"mass_flow_kg_per_s"`

	// Absolute shaft powers and heat duties (W). NetPower is always exactly
	// TurbinePower minus PumpPower.
	TurbinePower  float64 `json:"turbine_power_w"`
	PumpPower     float64 `json:"pump_power_w"`
	NetPower      float64 `json:"net_power_w"`
	HeatInput     float64 `json:"heat_input_w"`
	HeatRejection float64 `json:"heat_rejection_w"`

	// ElectricalPower is net power after generator and gearbox losses; the
	// mass flow is sized so this meets the target. Equals NetPower when no
	// generator efficiency is specified.
	ElectricalPower float64 `json:"electrical_power_w"`

	// ThermalEfficiency is electrical power over heat input.
	ThermalEfficiency float64 `json:"thermal_efficiency"`

	// Regime flags supercritical vs subcritical evaporator operation.
	Regime Regime `json:"regime"`
}
