package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/nravel/orcsim/internal/cycle"
)

// reportResult is a fixed cycle result with round numbers so the rendered
// report is stable regardless of property-backend behaviour.
func reportResult() *cycle.Result {
	return &cycle.Result{
		States: [4]cycle.StatePoint{
			{Label: cycle.PointPumpInlet, Pressure: 5.7e6, Temperature: 283.00, Enthalpy: 250000, Entropy: 1150.0},
			{Label: cycle.PointPumpOutlet, Pressure: 10.0e6, Temperature: 288.40, Enthalpy: 256500, Entropy: 1162.5},
			{Label: cycle.PointTurbineInlet, Pressure: 10.0e6, Temperature: 323.00, Enthalpy: 430000, Entropy: 1750.0},
			{Label: cycle.PointTurbineOutlet, Pressure: 5.7e6, Temperature: 296.75, Enthalpy: 410000, Entropy: 1762.5},
		},
		SpecificTurbineWork: 20000,
		SpecificPumpWork:    6500,
		SpecificNetWork:     13500,
		MassFlow:            8.0,
		TurbinePower:        160000,
		PumpPower:           52000,
		NetPower:            108000,
		ElectricalPower:     103680,
		HeatInput:           1388000,
		HeatRejection:       1280000,
		ThermalEfficiency:   103680.0 / 1388000.0,
		Regime:              cycle.RegimeSupercritical,
	}
}

func TestWriteReport_Golden(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, reportResult())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}

func TestWriteWarnings(t *testing.T) {
	var buf bytes.Buffer
	WriteWarnings(&buf, []string{"evaporator temperature clipped to 303.128 K"})

	out := buf.String()
	assert.Contains(t, out, "Warning: evaporator temperature clipped to 303.128 K")

	buf.Reset()
	WriteWarnings(&buf, nil)
	assert.Empty(t, buf.String())
}
