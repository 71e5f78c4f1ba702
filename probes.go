package machineprobe

import "context"

// Layout selects how a [Result] is rendered by [WriteReport].
type Layout int

const (
	// LayoutBlock prints the label on its own line, the value below it and a
	// blank line after.
	LayoutBlock Layout = iota
	// LayoutInline prints "label: value" on a single line.
	LayoutInline
)

// Probe is one entry of the fixed probe list: a label and the query that
// produces its value. Query takes the prober first so method expressions
// such as (*Prober).UUID can be used directly.
type Probe struct {
	Label  string
	Layout Layout
	Break  bool // print a blank line after an inline result
	Query  func(p *Prober, ctx context.Context) string
}

// Result is the transient outcome of one probe.
type Result struct {
	Label  string
	Value  string
	Layout Layout
	Break  bool
}

// DefaultProbes returns the full list of identifier probes in print order.
// Each call returns a fresh slice.
func DefaultProbes() []Probe {
	return []Probe{
		{Label: "wmic csproduct get UUID", Query: (*Prober).UUID},
		{Label: "wmic DISKDRIVE get SerialNumber", Query: (*Prober).DiskSerialNumber},
		{Label: "MachineGuid (from registry)", Query: (*Prober).MachineGUID},
		{Label: "Windows ProductId (from registry)", Query: (*Prober).WindowsProductID},
		{Label: "first MAC address obtained via net.Interfaces()", Query: (*Prober).FirstMACAddress},
		{Label: "all MAC addresses obtained via net.Interfaces()", Query: (*Prober).AllMACAddresses},
		managementProbe("all MAC addresses obtained via WMI", "Win32_NetworkAdapterConfiguration", "MacAddress", LayoutBlock, false),
		managementProbe("processor id obtained via WMI", "Win32_Processor", "ProcessorId", LayoutBlock, false),

		inlineProbe("Win32_Processor", "Name", false),
		inlineProbe("Win32_Processor", "Manufacturer", false),
		inlineProbe("Win32_Processor", "MaxClockSpeed", true),

		inlineProbe("Win32_BIOS", "Manufacturer", false),
		inlineProbe("Win32_BIOS", "SMBIOSBIOSVersion", false),
		inlineProbe("Win32_BIOS", "IdentificationCode", false),
		inlineProbe("Win32_BIOS", "SerialNumber", false),
		inlineProbe("Win32_BIOS", "ReleaseDate", false),
		inlineProbe("Win32_BIOS", "Version", true),

		inlineProbe("Win32_DiskDrive", "Model", false),
		inlineProbe("Win32_DiskDrive", "Manufacturer", false),
		inlineProbe("Win32_DiskDrive", "Signature", false),
		inlineProbe("Win32_DiskDrive", "TotalHeads", true),

		inlineProbe("Win32_BaseBoard", "Model", false),
		inlineProbe("Win32_BaseBoard", "Manufacturer", false),
		inlineProbe("Win32_BaseBoard", "Signature", false),
		inlineProbe("Win32_BaseBoard", "TotalHeads", true),

		inlineProbe("Win32_VideoController", "DriverVersion", false),
		inlineProbe("Win32_VideoController", "Name", false),
	}
}

// managementProbe builds a probe over [Prober.ManagementPropertyValue].
func managementProbe(label, class, property string, layout Layout, brk bool) Probe {
	return Probe{
		Label:  label,
		Layout: layout,
		Break:  brk,
		Query: func(p *Prober, ctx context.Context) string {
			return p.ManagementPropertyValue(ctx, class, property)
		},
	}
}

// inlineProbe is a management probe labelled "<class> <property>".
func inlineProbe(class, property string, brk bool) Probe {
	return managementProbe(class+" "+property, class, property, LayoutInline, brk)
}
