//go:build windows

package machineprobe

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const (
	wmiNamespace = `root\cimv2`
	// sFalse is returned by CoInitializeEx when COM is already initialised on the thread.
	sFalse = 0x00000001
)

// wmiQuerier talks to WMI through the SWbemLocator scripting interface.
type wmiQuerier struct{}

func newManagementQuerier() ManagementQuerier {
	return wmiQuerier{}
}

// PropertyValues runs "SELECT * FROM <class>" and reads property from each
// instance. COM is initialised and torn down on a locked OS thread per call.
func (wmiQuerier) PropertyValues(ctx context.Context, class, property string) ([]InstanceValue, error) {
	if !isManagementIdentifier(class) {
		return nil, fmt.Errorf("invalid management class name %q", class)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return nil, fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return nil, fmt.Errorf("failed to create WMI locator: %w", err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("failed to query WMI interface: %w", err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, wmiNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to WMI namespace: %w", err)
	}
	service := serviceRaw.ToIDispatch()
	defer service.Release()

	resultRaw, err := oleutil.CallMethod(service, "ExecQuery", "SELECT * FROM "+class)
	if err != nil {
		return nil, fmt.Errorf("failed to execute WMI query: %w", err)
	}
	result := resultRaw.ToIDispatch()
	defer result.Release()

	countVar, err := oleutil.GetProperty(result, "Count")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", class, err)
	}
	defer countVar.Clear()
	count := int(countVar.Val)

	values := make([]InstanceValue, 0, count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return values, err
		}

		itemRaw, err := oleutil.CallMethod(result, "ItemIndex", i)
		if err != nil {
			values = append(values, InstanceValue{Err: fmt.Errorf("instance %d: %w", i, err)})

			continue
		}
		item := itemRaw.ToIDispatch()

		value, err := propertyString(item, property)
		item.Release()

		values = append(values, InstanceValue{Value: value, Err: err})
	}

	return values, nil
}

// propertyString reads a property and renders it as text. Null values are
// reported as ErrNullProperty.
func propertyString(obj *ole.IDispatch, name string) (string, error) {
	v, err := oleutil.GetProperty(obj, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	defer v.Clear()

	if v.VT == ole.VT_NULL || v.VT == ole.VT_EMPTY {
		return "", fmt.Errorf("%w: %s", ErrNullProperty, name)
	}

	if v.VT&ole.VT_ARRAY != 0 {
		array := v.ToArray()
		if array == nil {
			return "", fmt.Errorf("%w: %s", ErrNullProperty, name)
		}

		elements := array.ToValueArray()
		parts := make([]string, 0, len(elements))
		for _, e := range elements {
			parts = append(parts, fmt.Sprint(e))
		}

		return strings.Join(parts, ","), nil
	}

	return fmt.Sprint(v.Value()), nil
}
