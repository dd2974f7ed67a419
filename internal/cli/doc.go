// Package cli implements the gpubar command-line interface.
//
// The root command runs the status bar itself; there is no separate
// "start" subcommand. Subcommands cover everything that is not the bar:
//
//	gpubar           - Run the status bar
//	gpubar doctor    - Diagnose GPU, accounting, and terminal issues
//	gpubar version   - Print version information
//
// # Configuration
//
// Settings resolve in three layers, highest precedence first: flags
// (--interval, --scale, --iface, --xmargin), GPUBAR_-prefixed
// environment variables, and built-in defaults. The layering is handled
// by a viper instance in the config package; there is no config file.
//
// # Startup Behavior
//
// A missing nvidia-smi binary is the only fatal startup condition: the
// command prints a structured error to stderr and exits 1 before any
// rendering starts. Failures after launch (a GPU query erroring, the
// accounting backend going away) degrade individual bar segments and
// never terminate the loop.
package cli
