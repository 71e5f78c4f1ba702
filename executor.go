package machineprobe

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

// defaultCommandExecutor implements CommandExecutor using actual system command execution.
type defaultCommandExecutor struct {
	Timeout time.Duration
}

// Execute runs a system command and returns its untouched standard output.
// A positive Timeout bounds the command; zero lets it run until ctx is done.
// A command that exits non-zero after writing to stdout still yields its output.
func (e *defaultCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	configureCommand(cmd)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil && len(output) > 0 {
			return string(output), nil
		}

		return "", &CommandError{Command: name, Err: err}
	}

	return string(output), nil
}

// executeCommand runs a command through executor, falling back to the default
// executor when none is configured, and logs the call timing.
func executeCommand(ctx context.Context, executor CommandExecutor, logger *slog.Logger, name string, args ...string) (string, error) {
	if executor == nil {
		executor = &defaultCommandExecutor{Timeout: defaultTimeout}
	}

	start := time.Now()
	output, err := executor.Execute(ctx, name, args...)

	if logger != nil {
		logger.Debug("command executed",
			"command", name,
			"args", args,
			"duration", time.Since(start),
			"error", err,
		)
	}

	return output, err
}
