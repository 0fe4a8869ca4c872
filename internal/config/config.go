// Package config holds the arithmos runtime configuration and resolves it
// from command-line flags, ARITHMOS_* environment variables, an optional
// TOML file and built-in defaults, in that order of priority.
package config

import (
	"slices"
	"strings"
	"time"

	"github.com/agbru/arithmos/internal/bigint"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "ARITHMOS_"

const (
	DefaultTimeout        = 5 * time.Minute
	DefaultIterations     = 200
	DefaultMaxWords       = 64
	DefaultSeed           = 1
	DefaultMaxResultWords = 1 << 26
)

// KnownBackends lists the verify backends accepted by Validate. "gmp" is
// only usable in binaries built with the gmp tag; the orchestration layer
// reports that at run time.
var KnownBackends = []string{"arithmos", "big", "gmp"}

// AppConfig is the resolved configuration shared by every subcommand.
type AppConfig struct {
	Quiet    bool          `toml:"quiet"`
	Verbose  bool          `toml:"verbose"`
	NoColor  bool          `toml:"no_color"`
	LogLevel string        `toml:"log_level"`
	Timeout  time.Duration `toml:"timeout"`

	// KaratsubaThreshold is the operand size in words at which
	// multiplication switches to Karatsuba. Zero selects an estimate for
	// the host.
	KaratsubaThreshold int `toml:"karatsuba_threshold"`
	// MaxDigits truncates printed results to their leading and trailing
	// digits. Zero prints everything.
	MaxDigits int `toml:"max_digits"`
	// MaxResultWords refuses fib, fact and pow when the estimated result
	// is larger than this many words.
	MaxResultWords int `toml:"max_result_words"`

	MetricsFile string `toml:"metrics_file"`
	HistoryFile string `toml:"history_file"`
	ConfigFile  string `toml:"-"`

	Backends   []string `toml:"backends"`
	Iterations int      `toml:"iterations"`
	MaxWords   int      `toml:"max_words"`
	Seed       uint64   `toml:"seed"`
	Workers    int      `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		LogLevel:       "warn",
		Timeout:        DefaultTimeout,
		MaxResultWords: DefaultMaxResultWords,
		Backends:       []string{"arithmos", "big"},
		Iterations:     DefaultIterations,
		MaxWords:       DefaultMaxWords,
		Seed:           DefaultSeed,
	}
}

// RegisterFlags binds the persistent flags to the fields of cfg. The
// current field values become the flag defaults.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "print bare results only")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print timing, size and memory details")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort any command after this long")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", cfg.KaratsubaThreshold, "operand words at which Karatsuba multiplication starts (0 = auto)")
	fs.IntVar(&cfg.MaxDigits, "max-digits", cfg.MaxDigits, "truncate printed results longer than this many digits (0 = never)")
	fs.IntVar(&cfg.MaxResultWords, "max-result-words", cfg.MaxResultWords, "refuse results estimated above this many 64-bit words")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus text metrics to this file on exit")
	fs.StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "REPL history file")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "TOML config file")
	fs.StringSliceVar(&cfg.Backends, "backends", cfg.Backends, "verify backends ("+strings.Join(KnownBackends, ", ")+")")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "verify cases per operation")
	fs.IntVar(&cfg.MaxWords, "max-words", cfg.MaxWords, "largest verify operand in words")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "verify corpus seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "verify worker count (0 = one per CPU)")
}

// Validate checks ranges and enumerations.
func (c AppConfig) Validate() error {
	switch {
	case c.Timeout <= 0:
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	case c.KaratsubaThreshold != 0 && c.KaratsubaThreshold < bigint.MinKaratsubaThreshold:
		return apperrors.NewConfigError("karatsuba threshold %d is below the minimum %d", c.KaratsubaThreshold, bigint.MinKaratsubaThreshold)
	case c.MaxDigits < 0:
		return apperrors.NewConfigError("max digits must not be negative, got %d", c.MaxDigits)
	case c.MaxResultWords < 1:
		return apperrors.NewConfigError("max result words must be at least 1, got %d", c.MaxResultWords)
	case c.Iterations < 1:
		return apperrors.NewConfigError("iterations must be at least 1, got %d", c.Iterations)
	case c.MaxWords < 1:
		return apperrors.NewConfigError("max words must be at least 1, got %d", c.MaxWords)
	case c.Workers < 0:
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	case c.Quiet && c.Verbose:
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if len(c.Backends) == 0 {
		return apperrors.NewConfigError("at least one verify backend is required")
	}
	for _, b := range c.Backends {
		if !slices.Contains(KnownBackends, b) {
			return apperrors.NewConfigError("unknown backend %q (known: %s)", b, strings.Join(KnownBackends, ", "))
		}
	}
	return nil
}
