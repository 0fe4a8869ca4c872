package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/spf13/pflag"
)

// override declares one configurable setting: the environment key (without
// EnvPrefix), the TOML key, the flag names that shadow both, a parser for
// the environment string and a copy from a decoded config file.
type override struct {
	envKey  string
	tomlKey string
	flags   []string
	apply   func(*AppConfig, string) error
	merge   func(dst, src *AppConfig)
}

var overrides = []override{
	// Numeric
	{"KARATSUBA_THRESHOLD", "karatsuba_threshold", []string{"karatsuba-threshold"},
		intSetter(func(c *AppConfig) *int { return &c.KaratsubaThreshold }),
		func(d, s *AppConfig) { d.KaratsubaThreshold = s.KaratsubaThreshold }},
	{"MAX_DIGITS", "max_digits", []string{"max-digits"},
		intSetter(func(c *AppConfig) *int { return &c.MaxDigits }),
		func(d, s *AppConfig) { d.MaxDigits = s.MaxDigits }},
	{"MAX_RESULT_WORDS", "max_result_words", []string{"max-result-words"},
		intSetter(func(c *AppConfig) *int { return &c.MaxResultWords }),
		func(d, s *AppConfig) { d.MaxResultWords = s.MaxResultWords }},
	{"ITERATIONS", "iterations", []string{"iterations"},
		intSetter(func(c *AppConfig) *int { return &c.Iterations }),
		func(d, s *AppConfig) { d.Iterations = s.Iterations }},
	{"MAX_WORDS", "max_words", []string{"max-words"},
		intSetter(func(c *AppConfig) *int { return &c.MaxWords }),
		func(d, s *AppConfig) { d.MaxWords = s.MaxWords }},
	{"WORKERS", "workers", []string{"workers"},
		intSetter(func(c *AppConfig) *int { return &c.Workers }),
		func(d, s *AppConfig) { d.Workers = s.Workers }},
	{"SEED", "seed", []string{"seed"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = parsed
		return nil
	}, func(d, s *AppConfig) { d.Seed = s.Seed }},

	// Duration
	{"TIMEOUT", "timeout", []string{"timeout"}, func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Timeout = parsed
		return nil
	}, func(d, s *AppConfig) { d.Timeout = s.Timeout }},

	// String
	{"LOG_LEVEL", "log_level", []string{"log-level"}, func(c *AppConfig, v string) error {
		c.LogLevel = v
		return nil
	}, func(d, s *AppConfig) { d.LogLevel = s.LogLevel }},
	{"METRICS_FILE", "metrics_file", []string{"metrics-file"}, func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}, func(d, s *AppConfig) { d.MetricsFile = s.MetricsFile }},
	{"HISTORY_FILE", "history_file", []string{"history-file"}, func(c *AppConfig, v string) error {
		c.HistoryFile = v
		return nil
	}, func(d, s *AppConfig) { d.HistoryFile = s.HistoryFile }},
	{"BACKENDS", "backends", []string{"backends"}, func(c *AppConfig, v string) error {
		c.Backends = splitList(v)
		return nil
	}, func(d, s *AppConfig) { d.Backends = s.Backends }},

	// Boolean
	{"QUIET", "quiet", []string{"quiet", "q"},
		boolSetter(func(c *AppConfig) *bool { return &c.Quiet }),
		func(d, s *AppConfig) { d.Quiet = s.Quiet }},
	{"VERBOSE", "verbose", []string{"verbose", "v"},
		boolSetter(func(c *AppConfig) *bool { return &c.Verbose }),
		func(d, s *AppConfig) { d.Verbose = s.Verbose }},
	{"NO_COLOR", "no_color", []string{"no-color"},
		boolSetter(func(c *AppConfig) *bool { return &c.NoColor }),
		func(d, s *AppConfig) { d.NoColor = s.NoColor }},
}

func intSetter(field func(*AppConfig) *int) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

func boolSetter(field func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, ok := parseBoolEnv(v)
		if !ok {
			return fmt.Errorf("not a boolean: %q", v)
		}
		*field(c) = parsed
		return nil
	}
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no" in any
// case.
func parseBoolEnv(val string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// flagChanged reports whether any of the named flags was set on the
// command line. Names that fs does not define are ignored.
func flagChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return true
		}
		if len(name) == 1 {
			if f := fs.ShorthandLookup(name); f != nil && f.Changed {
				return true
			}
		}
	}
	return false
}

// applyEnvOverrides copies ARITHMOS_* values into cfg for every setting
// whose flag was not given. An unparsable value is a ConfigError.
func applyEnvOverrides(cfg *AppConfig, fs *pflag.FlagSet) error {
	for _, o := range overrides {
		if flagChanged(fs, o.flags...) {
			continue
		}
		val, ok := os.LookupEnv(EnvPrefix + o.envKey)
		if !ok || val == "" {
			continue
		}
		if err := o.apply(cfg, val); err != nil {
			return apperrors.NewConfigError("%s%s: %v", EnvPrefix, o.envKey, err)
		}
	}
	return nil
}
