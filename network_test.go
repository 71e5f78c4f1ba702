package machineprobe

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInterfaces() []net.Interface {
	return []net.Interface{
		{Index: 1, Name: "Loopback Pseudo-Interface 1", Flags: net.FlagUp | net.FlagLoopback},
		{Index: 2, Name: "Ethernet", Flags: net.FlagUp, HardwareAddr: mustMAC("f2:6e:0b:d6:83:52")},
		{Index: 3, Name: "vEthernet (Default Switch)", Flags: net.FlagUp, HardwareAddr: mustMAC("00:15:5d:01:02:03")},
		{Index: 4, Name: "Wi-Fi", HardwareAddr: mustMAC("a4:c3:f0:11:22:33")},
	}
}

// TestCollectMACAddresses enumerates the real host interfaces.
func TestCollectMACAddresses(t *testing.T) {
	interfaces, err := net.Interfaces()
	if err != nil {
		t.Skipf("interfaces not available: %v", err)
	}

	macs, err := New().macAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, macs, len(interfaces))

	for i, mac := range macs {
		assert.Len(t, mac, 2*len(interfaces[i].HardwareAddr), interfaces[i].Name)
		assert.Equal(t, strings.ToUpper(mac), mac)
	}
}

func TestMACProbesWithZeroInterfaces(t *testing.T) {
	p, _, _ := newTestProber()

	ctx := context.Background()
	assert.Equal(t, "", p.FirstMACAddress(ctx))
	assert.Equal(t, "", p.AllMACAddresses(ctx))
	assert.ErrorIs(t, p.Diagnostics().Errors[ComponentFirstMAC], ErrEmptyValue)
}

func TestFirstMACAddressSkipsInterfacesWithoutAddress(t *testing.T) {
	p, _, _ := newTestProber()
	p.WithInterfaces(fakeInterfaces{interfaces: testInterfaces()})

	assert.Equal(t, "F26E0BD68352", p.FirstMACAddress(context.Background()))
}

func TestAllMACAddressesConcatenatesInOrder(t *testing.T) {
	p, _, _ := newTestProber()
	p.WithInterfaces(fakeInterfaces{interfaces: testInterfaces()})

	assert.Equal(t, "F26E0BD6835200155D010203A4C3F0112233", p.AllMACAddresses(context.Background()))
}

func TestMACProbesPhysicalOnly(t *testing.T) {
	p, _, _ := newTestProber()
	p.WithInterfaces(fakeInterfaces{interfaces: testInterfaces()}).WithPhysicalOnly()

	ctx := context.Background()
	assert.Equal(t, "F26E0BD68352", p.FirstMACAddress(ctx))
	assert.Equal(t, "F26E0BD68352", p.AllMACAddresses(ctx), "virtual and down interfaces are skipped")
}

func TestMACProbesListerError(t *testing.T) {
	p, _, _ := newTestProber()
	listErr := errors.New("GetAdaptersAddresses failed")
	p.WithInterfaces(fakeInterfaces{err: listErr})

	ctx := context.Background()
	assert.Equal(t, "", p.FirstMACAddress(ctx))
	assert.Equal(t, "", p.AllMACAddresses(ctx))

	diag := p.Diagnostics()
	assert.ErrorIs(t, diag.Errors[ComponentFirstMAC], listErr)
	assert.ErrorIs(t, diag.Errors[ComponentAllMACs], listErr)
}

func TestFormatMAC(t *testing.T) {
	assert.Equal(t, "F26E0BD68352", formatMAC(mustMAC("f2-6e-0b-d6-83-52")))
	assert.Equal(t, "", formatMAC(nil))
}

// TestIsVirtualInterface tests virtual interface detection.
func TestIsVirtualInterface(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"utun0", true},
		{"docker0", true},
		{"br-abc123", true},
		{"veth1234", true},
		{"vEthernet (Default Switch)", true},
		{"bridge0", true},
		{"vmnet1", true},
		{"Loopback Pseudo-Interface 1", true},
		{"wg0", true},
		{"VirtualBox Host-Only Network", true},
		{"Ethernet", false},
		{"Ethernet 2", false},
		{"Local Area Connection", false},
		{"eth0", false},
		{"Wi-Fi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isVirtualInterface(tt.name), "isVirtualInterface(%q)", tt.name)
		})
	}
}
