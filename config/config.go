// Package config loads overlay settings with priority defaults < file < flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/logger"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window    WindowConfig  `yaml:"window"`
	Pet       PetConfig     `yaml:"pet"`
	Logging   LoggingConfig `yaml:"logging"`
	Debug     DebugConfig   `yaml:"debug"`
	HotReload bool          `yaml:"hot_reload"`
}

// WindowConfig mirrors the overlay's window flags. Monitor 0 is the primary
// monitor.
type WindowConfig struct {
	Title            string `yaml:"title"`
	Floating         bool   `yaml:"floating"`
	Decorated        bool   `yaml:"decorated"`
	MousePassthrough bool   `yaml:"mouse_passthrough"`
	Transparent      bool   `yaml:"transparent"`
	Monitor          int    `yaml:"monitor"`
	TPS              int    `yaml:"tps"`
}

// PetConfig picks the prefab and optionally overrides parts of it. Zero
// values leave the prefab untouched.
type PetConfig struct {
	Prefab string  `yaml:"prefab"`
	Clip   string  `yaml:"clip"`
	Scale  float64 `yaml:"scale"`
	FPS    float64 `yaml:"fps"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:            "deskcat",
			Floating:         true,
			Decorated:        false,
			MousePassthrough: true,
			Transparent:      true,
			Monitor:          0,
			TPS:              60,
		},
		Pet: PetConfig{
			Prefab: "pet.yaml",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every bad field at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Window.Monitor < 0 {
		problems = append(problems, fmt.Sprintf("window.monitor must be >= 0, got %d", c.Window.Monitor))
	}
	if c.Window.TPS < 0 {
		problems = append(problems, fmt.Sprintf("window.tps must be >= 0, got %d", c.Window.TPS))
	}
	if strings.TrimSpace(c.Pet.Prefab) == "" {
		problems = append(problems, "pet.prefab is empty")
	}
	if c.Pet.Clip != "" {
		if _, err := anim.ParseClip(c.Pet.Clip); err != nil {
			problems = append(problems, fmt.Sprintf("pet.clip: %v", err))
		}
	}
	if c.Pet.Scale < 0 {
		problems = append(problems, fmt.Sprintf("pet.scale must be >= 0, got %v", c.Pet.Scale))
	}
	if c.Pet.FPS < 0 {
		problems = append(problems, fmt.Sprintf("pet.fps must be >= 0, got %v", c.Pet.FPS))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, fmt.Sprintf("logging.level: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
