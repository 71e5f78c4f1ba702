package machineprobe

import (
	"context"
	"encoding/hex"
	"net"
	"strings"
)

// InterfaceLister enumerates the host's network interfaces in the order the
// operating system reports them.
type InterfaceLister interface {
	Interfaces() ([]net.Interface, error)
}

// netInterfaceLister lists interfaces through the net package.
type netInterfaceLister struct{}

func (netInterfaceLister) Interfaces() ([]net.Interface, error) {
	return net.Interfaces()
}

// virtualInterfacePrefixes lists interface name prefixes that represent
// virtual, VPN, bridge, or ephemeral interfaces. They are only skipped when
// the prober is configured with WithPhysicalOnly.
var virtualInterfacePrefixes = []string{
	// VPN and tunnel interfaces
	"utun", "tun", "tap", "ipsec", "ppp",
	// Docker and container bridges
	"docker", "br-", "veth",
	// Virtual bridges and switches
	"virbr", "vnet", "vmnet",
	// Thunderbolt bridge (changes with docking state)
	"bridge",
	// Loopback variants; a bare "lo" would also match "Local Area Connection"
	"loopback",
	// WireGuard
	"wg",
	// Parallels / VirtualBox / VMware
	"vnic", "vboxnet", "virtualbox",
}

// FirstMACAddress returns the hardware address of the first enumerated
// interface that has one, as uppercase hex digits without separators.
func (p *Prober) FirstMACAddress(ctx context.Context) string {
	macs, err := p.macAddresses(ctx)
	if err != nil {
		p.recordError(ComponentFirstMAC, err)

		return p.recordValue(ComponentFirstMAC, "")
	}

	for _, mac := range macs {
		if mac != "" {
			return p.recordValue(ComponentFirstMAC, mac)
		}
	}

	return p.recordValue(ComponentFirstMAC, "")
}

// AllMACAddresses returns the hardware addresses of all enumerated
// interfaces concatenated in enumeration order, without separators.
func (p *Prober) AllMACAddresses(ctx context.Context) string {
	macs, err := p.macAddresses(ctx)
	if err != nil {
		p.recordError(ComponentAllMACs, err)

		return p.recordValue(ComponentAllMACs, "")
	}

	return p.recordValue(ComponentAllMACs, strings.Join(macs, ""))
}

// macAddresses returns one formatted address per eligible interface.
// Interfaces without a hardware address contribute an empty string.
func (p *Prober) macAddresses(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lister := p.interfaces
	if lister == nil {
		lister = netInterfaceLister{}
	}

	interfaces, err := lister.Interfaces()
	if err != nil {
		return nil, err
	}

	macs := make([]string, 0, len(interfaces))

	for _, i := range interfaces {
		if p.physicalOnly && !isPhysicalInterface(i) {
			p.logDebug("skipping interface", "interface", i.Name)

			continue
		}

		macs = append(macs, formatMAC(i.HardwareAddr))
	}

	return macs, nil
}

// formatMAC renders a hardware address as uppercase hex digits, e.g. "F26E0BD68352".
func formatMAC(addr net.HardwareAddr) string {
	return strings.ToUpper(hex.EncodeToString(addr))
}

// isPhysicalInterface reports whether i is up, not a loopback, has a
// hardware address and does not look like a virtual interface.
func isPhysicalInterface(i net.Interface) bool {
	if i.Flags&net.FlagLoopback != 0 || len(i.HardwareAddr) == 0 {
		return false
	}

	if i.Flags&net.FlagUp == 0 {
		return false
	}

	return !isVirtualInterface(i.Name)
}

// isVirtualInterface returns true if the interface name matches a known
// virtual, VPN, or bridge prefix.
func isVirtualInterface(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range virtualInterfacePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}
