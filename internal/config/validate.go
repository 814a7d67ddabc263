package config

import (
	"errors"
	"fmt"

	"recrate/internal/preset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.Unrar == "" {
		return errors.New("tools.unrar must be set")
	}
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	return nil
}

func (c *Config) validateConvert() error {
	if c.Convert.ArchiveExtension == "." {
		return errors.New("convert.archive_extension must name an extension")
	}
	if c.Convert.AudioExtension == "." {
		return errors.New("convert.audio_extension must name an extension")
	}
	if c.Convert.DefaultPreset != "" {
		if _, ok := preset.ByName(c.Convert.DefaultPreset); !ok {
			return fmt.Errorf("convert.default_preset: unknown preset %q", c.Convert.DefaultPreset)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// DefaultPreset resolves the configured default preset, falling back to the
// canonical default when unset.
func (c *Config) DefaultPreset() preset.Preset {
	if p, ok := preset.ByName(c.Convert.DefaultPreset); ok {
		return p
	}
	return preset.Default()
}
