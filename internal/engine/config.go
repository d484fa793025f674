package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds window and scene settings. Zero values in a config file keep
// the defaults from DefaultConfig.
type Config struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	VSync      bool       `yaml:"vsync"`
	ShaderPath string     `yaml:"shader"`
	Debug      bool       `yaml:"debug"`
	ClearColor [4]float32 `yaml:"clear_color"`
	PulseStep  float32    `yaml:"pulse_step"`
}

func DefaultConfig() Config {
	return Config{
		Width:      640,
		Height:     480,
		Title:      "GL Window",
		VSync:      true,
		ClearColor: [4]float32{0, 0, 0, 1},
		PulseStep:  0.05,
	}
}

// LoadConfig reads a YAML config file over the defaults. When the file
// cannot be read the defaults are returned along with the wrapped error, so
// callers can treat fs.ErrNotExist as optional.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.PulseStep <= 0 || c.PulseStep >= 1 {
		errs = append(errs, fmt.Errorf("pulse_step %g must be in (0, 1)", c.PulseStep))
	}
	return errors.Join(errs...)
}
