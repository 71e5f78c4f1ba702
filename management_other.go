//go:build !windows

package machineprobe

import "context"

type unsupportedManagement struct{}

func newManagementQuerier() ManagementQuerier {
	return unsupportedManagement{}
}

func (unsupportedManagement) PropertyValues(context.Context, string, string) ([]InstanceValue, error) {
	return nil, ErrUnsupportedPlatform
}
