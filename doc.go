// Package machineprobe reads machine-identifying attributes from a Windows
// host: board UUID, disk serial numbers, the registry MachineGuid, the
// Windows Product ID, MAC addresses, the processor ID and assorted hardware
// descriptors exposed through WMI.
//
// # Overview
//
// A [Prober] owns four sources, each behind an interface:
//
//   - [CommandExecutor] runs the wmic inventory commands (with a PowerShell
//     Get-CimInstance fallback)
//   - [RegistryReader] reads string values below HKEY_LOCAL_MACHINE
//   - [InterfaceLister] enumerates network interfaces
//   - [ManagementQuerier] reads one property from every instance of a WMI class
//
// Every probe method returns a string and never an error. A source that is
// missing or fails yields an empty value; the reason is recorded in
// [Prober.Diagnostics] and logged when a logger is set.
//
// # Quick Start
//
//	p := machineprobe.New()
//	results := p.Run(ctx, machineprobe.DefaultProbes())
//	_ = machineprobe.WriteReport(os.Stdout, results)
//
// Individual probes can be called directly:
//
//	uuid := p.UUID(ctx)
//	bios := p.ManagementPropertyValue(ctx, "Win32_BIOS", "SerialNumber")
//
// # Management Values
//
// [Prober.ManagementPropertyValue] concatenates the property of all
// instances in enumeration order, without a separator, after removing ":"
// from each value. An instance whose property cannot be read contributes
// nothing, so with N instances and one failure the result is the other
// N-1 values joined together.
//
// # Testing
//
// Inject fakes through [Prober.WithExecutor], [Prober.WithRegistry],
// [Prober.WithInterfaces] and [Prober.WithManagement]:
//
//	p := machineprobe.New().
//		WithExecutor(myExecutor).
//		WithRegistry(myRegistry)
//
// # Platform Support
//
// The registry and WMI sources are only implemented on Windows. Elsewhere
// they report [ErrUnsupportedPlatform] and their probes print empty values.
//
// # CLI Tool
//
// cmd/machineprobe prints every probe and waits for Enter before exiting:
//
//	machineprobe
//	machineprobe --no-wait --diagnostics
//	machineprobe --physical-only --timeout 30s
package machineprobe
