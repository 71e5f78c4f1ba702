//go:build windows

package machineprobe

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// localMachineRegistry reads HKEY_LOCAL_MACHINE through the 64-bit view so
// that a 32-bit build sees the same values as the native tools.
type localMachineRegistry struct{}

func newRegistryReader() RegistryReader {
	return localMachineRegistry{}
}

// StringValue reads a REG_SZ or REG_EXPAND_SZ value.
func (localMachineRegistry) StringValue(path, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", registryError(path, name, err)
	}
	defer k.Close()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return "", registryError(path, name, err)
	}

	return value, nil
}

func registryError(path, name string, err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		err = fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return &RegistryError{Path: path, Value: name, Err: err}
}
