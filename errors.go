package machineprobe

import (
	"errors"
	"fmt"
)

// Sentinel errors recorded in [DiagnosticInfo.Errors]. Probes never return
// them to the caller; they only explain why a printed value is empty.
var (
	// ErrEmptyValue is recorded when a source answered but produced no value.
	ErrEmptyValue = errors.New("empty value returned")

	// ErrNotFound is recorded when the queried key, value or class does not
	// exist on this machine.
	ErrNotFound = errors.New("value not found")

	// ErrNullProperty is recorded when a management instance reports a null
	// value for the requested property.
	ErrNullProperty = errors.New("property is null")

	// ErrUnsupportedPlatform is returned by the default registry and
	// management sources on operating systems other than Windows.
	ErrUnsupportedPlatform = errors.New("source not supported on this platform")

	// ErrAllMethodsFailed is recorded when every collection method for a
	// probe has been exhausted without success.
	ErrAllMethodsFailed = errors.New("all collection methods failed")
)

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "cmd", "powershell"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// RegistryError records a failed registry read.
type RegistryError struct {
	Path  string // key path below HKEY_LOCAL_MACHINE
	Value string // value name
	Err   error
}

// Error returns a human-readable description of the registry failure.
func (e *RegistryError) Error() string {
	return fmt.Sprintf(`registry HKLM\%s\%s: %v`, e.Path, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// ProbeError records a failure while running a specific probe.
// These errors appear in [DiagnosticInfo.Errors] and can be inspected with [errors.As].
type ProbeError struct {
	Probe string // probe name, e.g. "uuid", "Win32_BIOS.SerialNumber"
	Err   error  // underlying error
}

// Error returns a human-readable description of the probe failure.
func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %q: %v", e.Probe, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProbeError) Unwrap() error {
	return e.Err
}
