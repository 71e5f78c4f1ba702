package machineprobe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandErrorMessage(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := &CommandError{Command: "cmd", Err: inner}

	assert.Equal(t, `command "cmd" failed: exit status 1`, err.Error())
	assert.Same(t, inner, errors.Unwrap(err))
}

func TestCommandErrorAs(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := fmt.Errorf("collecting UUID: %w", &CommandError{Command: "powershell", Err: inner})

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "powershell", cmdErr.Command)
}

func TestRegistryErrorMessage(t *testing.T) {
	err := &RegistryError{Path: cryptographyKeyPath, Value: machineGUIDValueName, Err: ErrNotFound}

	assert.Equal(t, `registry HKLM\SOFTWARE\Microsoft\Cryptography\MachineGuid: value not found`, err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProbeErrorMessage(t *testing.T) {
	err := &ProbeError{Probe: ComponentUUID, Err: ErrEmptyValue}

	assert.Equal(t, `probe "uuid": empty value returned`, err.Error())
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestProbeErrorAsThroughChain(t *testing.T) {
	err := fmt.Errorf("run: %w", &ProbeError{
		Probe: ComponentMachineGUID,
		Err:   &RegistryError{Path: cryptographyKeyPath, Value: machineGUIDValueName, Err: ErrUnsupportedPlatform},
	})

	var probeErr *ProbeError
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, ComponentMachineGUID, probeErr.Probe)

	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, machineGUIDValueName, regErr.Value)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrEmptyValue, ErrNotFound, ErrNullProperty, ErrUnsupportedPlatform, ErrAllMethodsFailed}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
