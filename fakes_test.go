package machineprobe

import (
	"context"
	"fmt"
	"net"
)

// fakeRegistry serves values from a map keyed by path then value name.
type fakeRegistry map[string]map[string]string

func (r fakeRegistry) StringValue(path, name string) (string, error) {
	values, ok := r[path]
	if !ok {
		return "", &RegistryError{Path: path, Value: name, Err: ErrNotFound}
	}

	value, ok := values[name]
	if !ok {
		return "", &RegistryError{Path: path, Value: name, Err: ErrNotFound}
	}

	return value, nil
}

// fakeInterfaces returns a fixed interface list or error.
type fakeInterfaces struct {
	interfaces []net.Interface
	err        error
}

func (f fakeInterfaces) Interfaces() ([]net.Interface, error) {
	return f.interfaces, f.err
}

// fakeManagement serves instance values keyed by "<class>.<property>".
// Classes listed in errs return their error along with any values set.
type fakeManagement struct {
	values  map[string][]InstanceValue
	errs    map[string]error
	queries []string
}

func newFakeManagement() *fakeManagement {
	return &fakeManagement{
		values: make(map[string][]InstanceValue),
		errs:   make(map[string]error),
	}
}

func (f *fakeManagement) PropertyValues(_ context.Context, class, property string) ([]InstanceValue, error) {
	f.queries = append(f.queries, class+"."+property)

	return f.values[class+"."+property], f.errs[class]
}

func (f *fakeManagement) set(class, property string, values ...InstanceValue) {
	f.values[class+"."+property] = values
}

func instanceOK(value string) InstanceValue {
	return InstanceValue{Value: value}
}

func instanceErr(format string, args ...any) InstanceValue {
	return InstanceValue{Err: fmt.Errorf(format, args...)}
}

func mustMAC(s string) net.HardwareAddr {
	mac, err := net.ParseMAC(s)
	if err != nil {
		panic(err)
	}

	return mac
}

// newTestProber returns a prober whose sources are all fakes with no data.
func newTestProber() (*Prober, *mockExecutor, *fakeManagement) {
	exec := newMockExecutor()
	mgmt := newFakeManagement()

	p := New().
		WithExecutor(exec).
		WithRegistry(fakeRegistry{}).
		WithInterfaces(fakeInterfaces{}).
		WithManagement(mgmt)

	return p, exec, mgmt
}
