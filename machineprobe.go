package machineprobe

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Probe names used as keys in DiagnosticInfo. Management probes are keyed
// by "<class>.<property>".
const (
	ComponentUUID        = "uuid"
	ComponentDiskSerial  = "disk-serial"
	ComponentMachineGUID = "machine-guid"
	ComponentProductID   = "product-id"
	ComponentFirstMAC    = "mac-first"
	ComponentAllMACs     = "mac-all"
)

// defaultTimeout is the default timeout for system command execution.
const defaultTimeout = 10 * time.Second

// DiagnosticInfo contains information about what happened during the last [Prober.Run].
// Use [Prober.Diagnostics] to retrieve it.
type DiagnosticInfo struct {
	Errors    map[string]error // Probe names that failed with their errors
	Collected []string         // Probe names that produced a non-empty value
}

// CommandExecutor is an interface for executing system commands, allowing for dependency injection and testing.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// Prober queries machine-identifying attributes from the operating system.
// Every probe returns a best-effort string; failures only show up in
// [Prober.Diagnostics] and the optional logger.
type Prober struct {
	commandExecutor CommandExecutor
	registry        RegistryReader
	interfaces      InterfaceLister
	management      ManagementQuerier
	logger          *slog.Logger
	diagnostics     *DiagnosticInfo
	mu              sync.Mutex
	physicalOnly    bool
}

// New creates a new Prober wired to the real operating system sources.
// On platforms other than Windows the registry and management sources
// report [ErrUnsupportedPlatform] and their probes print empty values.
func New() *Prober {
	return &Prober{
		commandExecutor: &defaultCommandExecutor{
			Timeout: defaultTimeout,
		},
		registry:   newRegistryReader(),
		interfaces: netInterfaceLister{},
		management: newManagementQuerier(),
	}
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real system commands.
func (p *Prober) WithExecutor(executor CommandExecutor) *Prober {
	p.commandExecutor = executor

	return p
}

// WithRegistry sets a custom [RegistryReader].
func (p *Prober) WithRegistry(reader RegistryReader) *Prober {
	p.registry = reader

	return p
}

// WithInterfaces sets a custom [InterfaceLister].
func (p *Prober) WithInterfaces(lister InterfaceLister) *Prober {
	p.interfaces = lister

	return p
}

// WithManagement sets a custom [ManagementQuerier].
func (p *Prober) WithManagement(querier ManagementQuerier) *Prober {
	p.management = querier

	return p
}

// WithTimeout changes the per-command timeout of the default executor.
// A zero timeout lets commands run until the context passed to a probe is done.
// It has no effect once a custom executor has been set.
func (p *Prober) WithTimeout(timeout time.Duration) *Prober {
	if e, ok := p.commandExecutor.(*defaultCommandExecutor); ok {
		e.Timeout = timeout
	}

	return p
}

// WithPhysicalOnly makes the MAC address probes skip loopback, down and
// virtual/VPN/bridge interfaces.
func (p *Prober) WithPhysicalOnly() *Prober {
	p.physicalOnly = true

	return p
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the prober logs source calls, fallback paths and per-probe
// failures. A nil logger (the default) disables all logging.
func (p *Prober) WithLogger(logger *slog.Logger) *Prober {
	p.logger = logger

	return p
}

// Run evaluates probes one after another, in order, and returns one
// [Result] per probe. It never fails: a probe whose source is unavailable
// yields an empty value. Diagnostics from any earlier run are discarded.
func (p *Prober) Run(ctx context.Context, probes []Probe) []Result {
	p.mu.Lock()
	p.diagnostics = newDiagnosticInfo()
	p.mu.Unlock()

	p.logInfo("running probes", "platform", runtime.GOOS, "count", len(probes))

	results := make([]Result, 0, len(probes))
	for _, probe := range probes {
		results = append(results, Result{
			Label:  probe.Label,
			Value:  probe.Query(p, ctx),
			Layout: probe.Layout,
			Break:  probe.Break,
		})
	}

	diag := p.Diagnostics()
	p.logInfo("probes finished",
		"collected", len(diag.Collected),
		"errors_count", len(diag.Errors),
	)

	return results
}

// Diagnostics returns information about which probes produced a value and
// which ones failed since the last call to [Prober.Run]. Probes called
// directly accumulate into the same record. Returns nil if no probe has run yet.
func (p *Prober) Diagnostics() *DiagnosticInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.diagnostics
}

func newDiagnosticInfo() *DiagnosticInfo {
	return &DiagnosticInfo{
		Errors: make(map[string]error),
	}
}

// diag returns the current diagnostics record, creating it if needed.
// The caller must hold p.mu.
func (p *Prober) diag() *DiagnosticInfo {
	if p.diagnostics == nil {
		p.diagnostics = newDiagnosticInfo()
	}

	return p.diagnostics
}

// recordError notes a failure for the named probe. Repeated failures for
// the same probe are joined.
func (p *Prober) recordError(component string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	diag := p.diag()
	if prev, ok := diag.Errors[component]; ok {
		var probeErr *ProbeError
		if errors.As(prev, &probeErr) {
			err = errors.Join(probeErr.Err, err)
		}
	}
	diag.Errors[component] = &ProbeError{Probe: component, Err: err}

	if p.logger != nil {
		p.logger.Warn("probe failed", "probe", component, "error", err)
	}
}

// recordValue notes the outcome of the named probe and returns value.
// An empty value without an earlier error is recorded as [ErrEmptyValue].
func (p *Prober) recordValue(component, value string) string {
	p.mu.Lock()
	diag := p.diag()
	_, failed := diag.Errors[component]
	if value != "" {
		diag.Collected = append(diag.Collected, component)
	}
	p.mu.Unlock()

	if value == "" {
		if !failed {
			p.recordError(component, ErrEmptyValue)
		}

		return value
	}

	p.logDebug("probe value", "probe", component, "value", value)

	return value
}

// logDebug logs at debug level if a logger is configured.
func (p *Prober) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (p *Prober) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
