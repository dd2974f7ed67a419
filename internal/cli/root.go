package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/gpubar/internal/config"
	"github.com/rileyhilliard/gpubar/internal/errors"
	"github.com/rileyhilliard/gpubar/internal/logger"
	"github.com/rileyhilliard/gpubar/internal/monitor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgViper layers flag values over GPUBAR_ environment variables and
// built-in defaults.
var cfgViper *viper.Viper

// rootCmd runs the status bar directly; subcommands cover diagnostics
// and version info.
var rootCmd = &cobra.Command{
	Use:   "gpubar",
	Short: "GPU, CPU, and network status bar for the terminal",
	Long: `gpubar renders a compact always-on status line with per-GPU
utilization, power draw, and temperature, plus overall CPU usage and
network download rate.

Metrics are color-coded by severity and refresh on a fixed interval.
GPU data comes from nvidia-smi; the bar exits immediately at startup
if it is not installed.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  b           Toggle border
  ?           Show help

Examples:
  gpubar
  gpubar --interval 2s
  gpubar --iface eth0 --scale 1.5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBar(config.Resolve(cfgViper))
	},
}

func init() {
	cfgViper = config.NewViper()

	flags := rootCmd.Flags()
	flags.Duration("interval", config.DefaultInterval, "refresh interval (e.g., 1s, 500ms); minimum 250ms")
	flags.Float64("scale", config.DefaultScale, "widen separators between segments")
	flags.String("iface", config.DefaultIface, "network interface to watch, or 'auto' for the busiest")
	flags.Int("xmargin", config.DefaultXMargin, "right-edge padding in columns")

	// Explicit flags win over GPUBAR_ environment variables.
	for _, name := range []string{"interval", "scale", "iface", "xmargin"} {
		_ = cfgViper.BindPFlag(name, flags.Lookup(name))
	}
}

// runBar starts the display loop. A missing nvidia-smi is the only
// fatal startup condition; everything after launch degrades in place.
func runBar(cfg config.Config) error {
	log := logger.Default()

	smiPath, err := monitor.LookupSMI()
	if err != nil {
		return err
	}

	collector := monitor.NewCollector(smiPath, cfg.Iface, monitor.DetectAccounting(log), log)

	count, err := collector.DetectGPUCount(context.Background())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Could not list GPUs",
			"Check that the NVIDIA driver is loaded: nvidia-smi --list-gpus")
	}
	log.Info("detected %d GPU(s), interval %s, iface %s", count, cfg.Interval, cfg.Iface)

	model := monitor.NewModel(collector, monitor.Options{
		Interval: cfg.Interval,
		Scale:    cfg.Scale,
		XMargin:  cfg.XMargin,
	}, log)

	// Inline rendering: the bar lives in the normal terminal flow like a
	// status line, not on an alternate screen.
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Display loop failed",
			"Re-run with GPUBAR_DEBUG=1 for details")
	}
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
