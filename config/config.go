// SPDX-License-Identifier: MIT
// Package config provides run configuration for the spinfoam CLI.
//
// Config file locations (priority order):
//  1. $SPINFOAM_CONFIG
//  2. ./spinfoam.yaml
//  3. $XDG_CONFIG_HOME/spinfoam/config.yaml
//  4. ~/.config/spinfoam/config.yaml
//
// Missing files are not an error: Load returns DefaultConfig.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spinfoam/builder"
	"github.com/katalvlaran/spinfoam/loopexpr"
	"github.com/katalvlaran/spinfoam/quanta"
)

// Defaults reproduce the reference simulation run.
const (
	DefaultNetwork      = "tetrahedral"
	DefaultFinalNetwork = "cubical"
	DefaultSteps        = 1
	DefaultSpectrumSize = 10
	DefaultLoop         = "0 -> 1 -> 3 -> 2"
	DefaultTimeStep     = quanta.PlanckTime
)

// Config is the full run configuration.
type Config struct {
	// Network is the initial network ("tetrahedral", "cubical", "octahedral").
	Network string `yaml:"network" validate:"required,network"`
	// FinalNetwork is the final state for transition amplitudes.
	FinalNetwork string `yaml:"final_network" validate:"required,network"`
	// TimeStep is the evolution step in seconds; 0 in the file means one Planck time.
	TimeStep float64 `yaml:"time_step" validate:"gte=0"`
	// Steps is the number of evolution steps.
	Steps int `yaml:"steps" validate:"gte=0,lte=100000"`
	// SpectrumSize is the number of spectrum rows.
	SpectrumSize int `yaml:"spectrum_size" validate:"gte=1,lte=10000"`
	// Loop is a Wilson-loop expression (see package loopexpr).
	Loop string `yaml:"loop" validate:"loop"`
	// Store configures trajectory persistence.
	Store StoreConfig `yaml:"store"`
	// Verbosity is the klog -v level.
	Verbosity int `yaml:"verbosity" validate:"gte=0,lte=10"`
}

// StoreConfig configures the badger trajectory store.
type StoreConfig struct {
	// Enabled turns persistence on.
	Enabled bool `yaml:"enabled"`
	// Path is the database directory; empty means in-memory.
	Path string `yaml:"path"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("network", validateNetwork)
	_ = configValidate.RegisterValidation("loop", validateLoop)
}

func validateNetwork(fl validator.FieldLevel) bool {
	_, err := builder.ParseNetworkName(fl.Field().String())
	return err == nil
}

func validateLoop(fl validator.FieldLevel) bool {
	_, err := loopexpr.Parse(fl.Field().String())
	return err == nil
}

// Load finds and loads the config file, or returns defaults if none found.
// The second result is the path used ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads, defaults and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	return errors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}

// DefaultConfig returns the reference run configuration.
func DefaultConfig() *Config {
	return &Config{
		Network:      DefaultNetwork,
		FinalNetwork: DefaultFinalNetwork,
		TimeStep:     DefaultTimeStep,
		Steps:        DefaultSteps,
		SpectrumSize: DefaultSpectrumSize,
		Loop:         DefaultLoop,
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Network == "" {
		c.Network = DefaultNetwork
	}
	if c.FinalNetwork == "" {
		c.FinalNetwork = DefaultFinalNetwork
	}
	if c.TimeStep == 0 {
		c.TimeStep = DefaultTimeStep
	}
	if c.SpectrumSize == 0 {
		c.SpectrumSize = DefaultSpectrumSize
	}
	if c.Loop == "" {
		c.Loop = DefaultLoop
	}
}

// Validate checks every field against its tag constraints.
func (c *Config) Validate() error {
	return errors.Wrap(configValidate.Struct(c), "invalid config")
}

// NetworkName resolves Network.
func (c *Config) NetworkName() (builder.NetworkName, error) {
	return builder.ParseNetworkName(c.Network)
}

// FinalNetworkName resolves FinalNetwork.
func (c *Config) FinalNetworkName() (builder.NetworkName, error) {
	return builder.ParseNetworkName(c.FinalNetwork)
}

// LoopSequence resolves Loop into edge ids.
func (c *Config) LoopSequence() ([]int, error) {
	return loopexpr.Parse(c.Loop)
}
