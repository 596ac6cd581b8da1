// SPDX-License-Identifier: EPL-2.0

// Package config loads pcmwave's runtime settings from defaults, flags,
// PCMWAVE_* environment variables and an optional config file.
//
// The output audio layout is not part of the configuration; it is fixed.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Convert ConvertConfig `mapstructure:"convert"`
	Tone    ToneConfig    `mapstructure:"tone"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Overwrite bool `mapstructure:"overwrite"`
}

type ConvertConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

type ToneConfig struct {
	Frequency float64       `mapstructure:"frequency"`
	Amplitude float64       `mapstructure:"amplitude"`
	Duration  time.Duration `mapstructure:"duration"`
}

type LoadOptions struct {
	Flags      *pflag.FlagSet
	ConfigFile string
	Defaults   Config
}

// flagKeys maps config keys to the flag names registered by RegisterFlags.
var flagKeys = map[string]string{
	"log.level":           "log-level",
	"log.format":          "log-format",
	"output.overwrite":    "overwrite",
	"convert.buffer_size": "buffer-size",
	"tone.frequency":      "freq",
	"tone.amplitude":      "amplitude",
	"tone.duration":       "duration",
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Overwrite: true,
		},
		Convert: ConvertConfig{
			BufferSize: 4096,
		},
		Tone: ToneConfig{
			Frequency: 440,
			Amplitude: 0.5,
			Duration:  time.Second,
		},
	}
}

// RegisterFlags adds the persistent flags shared by every command.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
	fs.Bool("overwrite", defaults.Output.Overwrite, "Replace existing output files")
}

// RegisterConvertFlags adds the flags of the convert command.
func RegisterConvertFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("buffer-size", defaults.Convert.BufferSize, "Samples read per decode step")
}

// RegisterToneFlags adds the flags of the tone command.
func RegisterToneFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Float64("freq", defaults.Tone.Frequency, "Tone frequency in Hz")
	fs.Float64("amplitude", defaults.Tone.Amplitude, "Peak amplitude in (0, 1]")
	fs.Duration("duration", defaults.Tone.Duration, "Tone length")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	if opts.Flags != nil {
		for key, name := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix("PCMWAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("pcmwave")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("output.overwrite", c.Output.Overwrite)
	v.SetDefault("convert.buffer_size", c.Convert.BufferSize)
	v.SetDefault("tone.frequency", c.Tone.Frequency)
	v.SetDefault("tone.amplitude", c.Tone.Amplitude)
	v.SetDefault("tone.duration", c.Tone.Duration)
}

// Validate checks value ranges. Log level names are checked by the logging
// package when the logger is built.
func (c Config) Validate() error {
	switch {
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	case c.Convert.BufferSize <= 0:
		return fmt.Errorf("%w: convert.buffer_size must be positive", ErrInvalidConfig)
	case c.Tone.Frequency <= 0:
		return fmt.Errorf("%w: tone.frequency must be positive", ErrInvalidConfig)
	case c.Tone.Amplitude <= 0 || c.Tone.Amplitude > 1:
		return fmt.Errorf("%w: tone.amplitude must be in (0, 1]", ErrInvalidConfig)
	case c.Tone.Duration <= 0:
		return fmt.Errorf("%w: tone.duration must be positive", ErrInvalidConfig)
	}

	return nil
}
