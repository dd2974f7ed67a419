// Package config resolves the bar's runtime settings.
//
// Settings come from three layers, highest precedence first: command-line
// flags, GPUBAR_-prefixed environment variables, and built-in defaults.
// There is no config file; the bar is meant to be launched with everything
// it needs on the command line.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the bar's settings.
const (
	DefaultInterval = 1 * time.Second
	DefaultScale    = 1.0
	DefaultIface    = "auto"
	DefaultXMargin  = 8
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. GPUBAR_INTERVAL=2s or GPUBAR_IFACE=eth0.
const EnvPrefix = "GPUBAR"

// Config holds the resolved runtime settings for the bar.
type Config struct {
	// Interval between refresh ticks. Values below the display loop's
	// minimum are clamped there, not here.
	Interval time.Duration

	// Scale widens the separators between bar segments.
	Scale float64

	// Iface is the network interface to watch, or "auto" to pick the
	// busiest one.
	Iface string

	// XMargin is the right-edge padding in columns.
	XMargin int
}

// Default returns a Config with built-in defaults.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Scale:    DefaultScale,
		Iface:    DefaultIface,
		XMargin:  DefaultXMargin,
	}
}

// NewViper returns a viper instance with defaults set and GPUBAR_
// environment overrides enabled. Flag bindings layer on top of this.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("scale", DefaultScale)
	v.SetDefault("iface", DefaultIface)
	v.SetDefault("xmargin", DefaultXMargin)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Resolve reads the final settings out of a viper instance.
func Resolve(v *viper.Viper) Config {
	return Config{
		Interval: v.GetDuration("interval"),
		Scale:    v.GetFloat64("scale"),
		Iface:    v.GetString("iface"),
		XMargin:  v.GetInt("xmargin"),
	}
}
