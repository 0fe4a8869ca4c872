package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/spf13/pflag"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/arithmos/config.toml (or the
// platform equivalent), or "" when no user config directory exists.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arithmos", "config.toml")
}

// configPath picks the file to load. An explicit --config or
// ARITHMOS_CONFIG must exist; the default location is optional.
func configPath(cfg *AppConfig) (path string, required bool) {
	if cfg.ConfigFile != "" {
		return cfg.ConfigFile, true
	}
	if env := os.Getenv(EnvPrefix + "CONFIG"); env != "" {
		return env, true
	}
	return DefaultConfigPath(), false
}

// applyFile decodes the TOML file at path and copies every key it defines
// into cfg, skipping settings whose flag was given on the command line.
func applyFile(cfg *AppConfig, flags *pflag.FlagSet, path string, required bool) error {
	if path == "" {
		return nil
	}
	var fileCfg AppConfig
	meta, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewConfigError("%s: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return apperrors.NewConfigError("%s: unknown key %q", path, undecoded[0].String())
	}
	for _, o := range overrides {
		if !meta.IsDefined(o.tomlKey) || flagChanged(flags, o.flags...) {
			continue
		}
		o.merge(cfg, &fileCfg)
	}
	return nil
}

// Resolve layers the config file and environment over the flag values
// already parsed into cfg, then validates the result. Flags win over the
// environment, which wins over the file, which wins over Default.
func Resolve(flags *pflag.FlagSet, cfg *AppConfig) error {
	path, required := configPath(cfg)
	if err := applyFile(cfg, flags, path, required); err != nil {
		return err
	}
	if err := applyEnvOverrides(cfg, flags); err != nil {
		return err
	}
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateKaratsubaThreshold()
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg.Validate()
}
