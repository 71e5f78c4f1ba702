package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slashdevops/machineprobe"
	"github.com/slashdevops/machineprobe/internal/config"
	"github.com/slashdevops/machineprobe/internal/logging"
	"github.com/slashdevops/machineprobe/internal/version"
)

const applicationName = "machineprobe"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr, machineprobe.New)
	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("machineprobe failed", "error", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. newProber is injected so tests can replace
// the operating system sources.
func newRootCommand(in io.Reader, out, errOut io.Writer, newProber func() *machineprobe.Prober) *cobra.Command {
	v := viper.New()

	var (
		configFile  string
		showVersion bool
		longVersion bool
	)

	cmd := &cobra.Command{
		Use:   applicationName,
		Short: "Print machine-identifying attributes of this Windows host",
		Long: applicationName + " prints the board UUID, disk serial numbers, registry MachineGuid,\n" +
			"Windows Product ID, MAC addresses, processor ID and other hardware\n" +
			"descriptors, then waits for Enter before exiting.",
		Example: "  machineprobe\n" +
			"  machineprobe --no-wait --diagnostics\n" +
			"  machineprobe --physical-only --timeout 30s\n" +
			"  MACHINEPROBE_NO_WAIT=true machineprobe",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := io.WriteString(out, version.Short(applicationName))
				return err
			}

			if longVersion {
				_, err := io.WriteString(out, version.Long(applicationName))
				return err
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, newProber(), in, out, errOut)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	config.RegisterFlags(flags)
	flags.StringVar(&configFile, "config", "", "read settings from this YAML file")
	flags.BoolVar(&showVersion, "version", false, "show version information")
	flags.BoolVar(&longVersion, "version-long", false, "show detailed version information")

	return cmd
}

// run probes the machine, prints the report and optionally waits for Enter.
func run(ctx context.Context, cfg config.Config, prober *machineprobe.Prober, in io.Reader, out, errOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  level,
		File:   cfg.LogFile,
		Stderr: errOut,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	prober.WithLogger(logger).WithTimeout(cfg.Timeout)
	if cfg.PhysicalOnly {
		prober.WithPhysicalOnly()
	}

	results := prober.Run(ctx, machineprobe.DefaultProbes())

	if err := machineprobe.WriteReport(out, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cfg.Diagnostics {
		printDiagnostics(errOut, prober.Diagnostics())
	}

	if cfg.NoWait {
		return nil
	}

	return waitForEnter(ctx, in)
}

// waitForEnter blocks until a line (or end of input) is read from in, or
// until ctx is cancelled, e.g. by Ctrl-C.
func waitForEnter(ctx context.Context, in io.Reader) error {
	done := make(chan error, 1)

	go func() {
		_, err := bufio.NewReader(in).ReadString('\n')
		done <- err
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-done:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("waiting for input: %w", err)
		}

		return nil
	}
}

func printDiagnostics(w io.Writer, diag *machineprobe.DiagnosticInfo) {
	if diag == nil {
		fmt.Fprintln(w, "no diagnostic information available")
		return
	}

	fmt.Fprintln(w, "Diagnostics:")
	if len(diag.Collected) > 0 {
		fmt.Fprintf(w, "  Collected: %s\n", strings.Join(diag.Collected, ", "))
	}

	if len(diag.Errors) > 0 {
		names := make([]string, 0, len(diag.Errors))
		for name := range diag.Errors {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "  Errors:")
		for _, name := range names {
			fmt.Fprintf(w, "    %s: %v\n", name, diag.Errors[name])
		}
	}
}
