package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsSupercriticalState(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewPropsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--pressure", "10e6", "--temperature", "323"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Fluid:       CO2")
	assert.Contains(t, output, "Pressure:    10.000 MPa")
	assert.Contains(t, output, "Temperature: 323.00 K")
	assert.Contains(t, output, "Enthalpy:")
	assert.Contains(t, output, "Entropy:")
}

func TestPropsSaturatedVaporJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewPropsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--pressure", "3e6", "--quality", "1"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	assert.Equal(t, "CO2", data["fluid"])

	// Saturation temperature at 3 MPa sits near 267.6 K.
	temp, ok := data["temperature_k"].(float64)
	require.True(t, ok, "temperature should be a number")
	assert.InDelta(t, 267.6, temp, 1.0)
}

func TestPropsRequiresTemperatureOrQuality(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewPropsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--pressure", "10e6"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "exactly one of --temperature or --quality")
}

func TestPropsRejectsTemperatureAndQuality(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewPropsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--pressure", "10e6", "--temperature", "323", "--quality", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPropsQualityAboveCriticalPressure(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewPropsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--pressure", "10e6", "--quality", "0.5"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "OUT_OF_RANGE")
}
