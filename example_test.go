package machineprobe_test

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/slashdevops/machineprobe"
)

// staticExecutor answers every command with the same output.
type staticExecutor string

func (e staticExecutor) Execute(context.Context, string, ...string) (string, error) {
	return string(e), nil
}

// staticRegistry answers every lookup with the same value.
type staticRegistry string

func (r staticRegistry) StringValue(string, string) (string, error) {
	return string(r), nil
}

type staticInterfaces []net.Interface

func (s staticInterfaces) Interfaces() ([]net.Interface, error) {
	return s, nil
}

// staticManagement returns two instances, the second of which cannot be read.
type staticManagement struct{}

func (staticManagement) PropertyValues(_ context.Context, _, property string) ([]machineprobe.InstanceValue, error) {
	return []machineprobe.InstanceValue{
		{Value: "00:15:5D:" + property},
		{Err: machineprobe.ErrNullProperty},
	}, nil
}

// ExampleProber_Run demonstrates running a custom probe list and printing
// the report.
func ExampleProber_Run() {
	mac, _ := net.ParseMAC("f2:6e:0b:d6:83:52")

	p := machineprobe.New().
		WithExecutor(staticExecutor("UUID\r\n96149bfb-1914-483a-2c03-f3669756e3df\r\n")).
		WithRegistry(staticRegistry("d8bf5749-9c2c-4cbc-a688-c999d619dd6b")).
		WithInterfaces(staticInterfaces{{Name: "Ethernet", HardwareAddr: mac}}).
		WithManagement(staticManagement{})

	all := machineprobe.DefaultProbes()
	probes := []machineprobe.Probe{all[0], all[2], all[4]}

	results := p.Run(context.Background(), probes)
	if err := machineprobe.WriteReport(os.Stdout, results); err != nil {
		fmt.Println(err)
	}

	// Output:
	// wmic csproduct get UUID:
	// 96149BFB-1914-483A-2C03-F3669756E3DF
	//
	// MachineGuid (from registry):
	// D8BF5749-9C2C-4CBC-A688-C999D619DD6B
	//
	// first MAC address obtained via net.Interfaces():
	// F26E0BD68352
}

// ExampleProber_ManagementPropertyValue shows that instances whose property
// cannot be read are skipped and ":" is removed from the rest.
func ExampleProber_ManagementPropertyValue() {
	p := machineprobe.New().WithManagement(staticManagement{})

	fmt.Println(p.ManagementPropertyValue(context.Background(), "Win32_NetworkAdapterConfiguration", "MacAddress"))

	// Output:
	// 00155DMacAddress
}
