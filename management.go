package machineprobe

import (
	"context"
	"strings"
)

// InstanceValue is the outcome of reading one property from one management
// class instance. A non-nil Err means the instance has no usable value.
type InstanceValue struct {
	Value string
	Err   error
}

// ManagementQuerier reads one named property from every instance of a
// management (WMI) class, in the order the instances are enumerated.
// Per-instance failures are reported through [InstanceValue.Err]. An error
// means the class could not be queried or enumeration stopped early; the
// instances read before it are still returned.
type ManagementQuerier interface {
	PropertyValues(ctx context.Context, class, property string) ([]InstanceValue, error)
}

// ManagementPropertyValue returns property read from every instance of class,
// with ":" removed from each value, concatenated in enumeration order with
// no separator. An instance whose lookup fails contributes nothing.
func (p *Prober) ManagementPropertyValue(ctx context.Context, class, property string) string {
	component := class + "." + property

	if p.management == nil {
		p.recordError(component, ErrUnsupportedPlatform)

		return p.recordValue(component, "")
	}

	p.logDebug("querying management class", "class", class, "property", property)

	instances, err := p.management.PropertyValues(ctx, class, property)
	if err != nil {
		p.recordError(component, err)
	}

	var sb strings.Builder

	for i, instance := range instances {
		if instance.Err != nil {
			p.logDebug("skipping management instance", "class", class, "property", property, "instance", i, "error", instance.Err)
			p.recordError(component, instance.Err)

			continue
		}

		sb.WriteString(strings.ReplaceAll(instance.Value, ":", ""))
	}

	return p.recordValue(component, sb.String())
}

// isManagementIdentifier reports whether name is usable as a WMI class name
// inside a WQL query: letters, digits and underscores, not starting with a digit.
func isManagementIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
