package machineprobe

import (
	"context"
	"fmt"
	"strings"
)

// inventoryCommand describes one wmic inventory query and the CIM class and
// property PowerShell falls back to when wmic is unavailable.
type inventoryCommand struct {
	component string
	wmic      string // command line handed to cmd /c
	class     string
	property  string
}

var (
	uuidCommand = inventoryCommand{
		component: ComponentUUID,
		wmic:      "wmic csproduct get UUID",
		class:     "Win32_ComputerSystemProduct",
		property:  "UUID",
	}

	diskSerialCommand = inventoryCommand{
		component: ComponentDiskSerial,
		wmic:      "wmic DISKDRIVE get SerialNumber",
		class:     "Win32_DiskDrive",
		property:  "SerialNumber",
	}
)

// UUID returns the board UUID reported by "wmic csproduct get UUID",
// with the column header removed, trimmed and uppercased.
func (p *Prober) UUID(ctx context.Context) string {
	return p.inventoryValue(ctx, uuidCommand)
}

// DiskSerialNumber returns the output of "wmic DISKDRIVE get SerialNumber"
// with the column header removed, trimmed and uppercased. With several
// disks the serials stay on separate lines, in the order wmic lists them.
func (p *Prober) DiskSerialNumber(ctx context.Context) string {
	return p.inventoryValue(ctx, diskSerialCommand)
}

func (p *Prober) inventoryValue(ctx context.Context, c inventoryCommand) string {
	output, err := p.runInventory(ctx, c)
	if err != nil {
		p.recordError(c.component, err)

		return p.recordValue(c.component, "")
	}

	return p.recordValue(c.component, normalizeInventoryOutput(output, c.property))
}

// runInventory runs the wmic command line through cmd, with a PowerShell
// Get-CimInstance fallback for hosts where wmic has been removed.
func (p *Prober) runInventory(ctx context.Context, c inventoryCommand) (string, error) {
	output, err := executeCommand(ctx, p.commandExecutor, p.logger, "cmd", "/c", c.wmic)
	if err == nil {
		return output, nil
	}

	p.logDebug("wmic failed, falling back to PowerShell", "probe", c.component, "error", err)

	psOutput, psErr := executeCommand(ctx, p.commandExecutor, p.logger, "powershell", "-NoProfile", "-Command",
		fmt.Sprintf("Get-CimInstance -ClassName %s | Select-Object -ExpandProperty %s", c.class, c.property))
	if psErr != nil {
		return "", fmt.Errorf("%w: wmic: %w, powershell: %w", ErrAllMethodsFailed, err, psErr)
	}

	return psOutput, nil
}

// normalizeInventoryOutput removes every occurrence of the column header
// token, then trims surrounding whitespace and uppercases the rest.
func normalizeInventoryOutput(output, token string) string {
	return strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(output, token, "")))
}

