package machineprobe

import (
	"context"
	"strings"
)

// Registry locations below HKEY_LOCAL_MACHINE read by the registry probes.
const (
	cryptographyKeyPath   = `SOFTWARE\Microsoft\Cryptography`
	machineGUIDValueName  = "MachineGuid"
	currentVersionKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
	productIDValueName    = "ProductId"
)

// RegistryReader reads string values below HKEY_LOCAL_MACHINE.
// Implementations return an error wrapping [ErrNotFound] when the key or
// value does not exist.
type RegistryReader interface {
	StringValue(path, name string) (string, error)
}

// MachineGUID returns HKLM\SOFTWARE\Microsoft\Cryptography\MachineGuid uppercased.
func (p *Prober) MachineGUID(ctx context.Context) string {
	return p.registryValue(ctx, ComponentMachineGUID, cryptographyKeyPath, machineGUIDValueName, strings.ToUpper)
}

// WindowsProductID returns HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\ProductId as stored.
func (p *Prober) WindowsProductID(ctx context.Context) string {
	return p.registryValue(ctx, ComponentProductID, currentVersionKeyPath, productIDValueName, nil)
}

func (p *Prober) registryValue(ctx context.Context, component, path, name string, transform func(string) string) string {
	if err := ctx.Err(); err != nil {
		p.recordError(component, err)

		return p.recordValue(component, "")
	}

	if p.registry == nil {
		p.recordError(component, ErrUnsupportedPlatform)

		return p.recordValue(component, "")
	}

	p.logDebug("reading registry value", "path", path, "name", name)

	value, err := p.registry.StringValue(path, name)
	if err != nil {
		p.recordError(component, err)

		return p.recordValue(component, "")
	}

	if transform != nil {
		value = transform(value)
	}

	return p.recordValue(component, value)
}
