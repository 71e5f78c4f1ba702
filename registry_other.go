//go:build !windows

package machineprobe

type unsupportedRegistry struct{}

func newRegistryReader() RegistryReader {
	return unsupportedRegistry{}
}

func (unsupportedRegistry) StringValue(path, name string) (string, error) {
	return "", &RegistryError{Path: path, Value: name, Err: ErrUnsupportedPlatform}
}
