// Package config loads cfx settings from a file and the environment.
//
// Settings are read from cfx.yml (or .yaml/.json/.toml) in the working
// directory or $HOME/.config/cfx, and may be overridden by CFX_* variables
// such as CFX_PREPEND_TIME or CFX_TIMESTAMP_FORMAT:
//
//	prepend_time: true
//	timestamp:
//	  format: "HH:mm:ss"
//	  prefix: "[th]"
//	  suffix: "[re] "
//	reset: " [re]"
//	styles:
//	  error: "[bred][fwhite] "
//	reference: ./tokens.yml
//	codes:
//	  dim: "\e[2m"
//
// Keys under codes are case-folded by the loader; tables that need
// case-sensitive token names belong in a reference file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/cfx/style"
	"github.com/simonhull/cfx/timestamp"
	"github.com/simonhull/cfx/writer"
	"github.com/spf13/viper"
)

// Config holds the user-adjustable writer settings.
type Config struct {
	PrependTime   bool              `yaml:"prepend_time"`
	Timestamp     Timestamp         `yaml:"timestamp"`
	Reset         string            `yaml:"reset"`
	Styles        map[string]string `yaml:"styles"`
	ReferencePath string            `yaml:"reference,omitempty"`
	Codes         map[string]string `yaml:"codes,omitempty"`

	// File is the config file that was read, if any.
	File string `yaml:"-"`
}

// Timestamp holds the timestamp prefix settings.
type Timestamp struct {
	Format string `yaml:"format"`
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Default returns the built-in settings.
func Default() *Config {
	styles := make(map[string]string)
	for level, tmpl := range writer.DefaultStyles() {
		styles[level.String()] = tmpl
	}

	return &Config{
		Timestamp: Timestamp{
			Format: timestamp.DefaultPattern,
			Prefix: writer.DefaultTimestampPrefix,
			Suffix: writer.DefaultTimestampSuffix,
		},
		Reset:  writer.DefaultReset,
		Styles: styles,
	}
}

// Load reads settings. An explicit path must exist; without one, a missing
// config file simply yields the defaults plus any environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cfx")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cfx"))
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("CFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		PrependTime: v.GetBool("prepend_time"),
		Timestamp: Timestamp{
			Format: v.GetString("timestamp.format"),
			Prefix: v.GetString("timestamp.prefix"),
			Suffix: v.GetString("timestamp.suffix"),
		},
		Reset:         v.GetString("reset"),
		Styles:        make(map[string]string),
		ReferencePath: v.GetString("reference"),
		Codes:         v.GetStringMapString("codes"),
		File:          v.ConfigFileUsed(),
	}
	for _, level := range writer.Levels {
		if level == writer.LevelLog {
			continue
		}
		cfg.Styles[level.String()] = v.GetString("styles." + level.String())
	}

	// Resolve the reference path relative to the config file
	if cfg.ReferencePath != "" && cfg.File != "" && !filepath.IsAbs(cfg.ReferencePath) {
		cfg.ReferencePath = filepath.Join(filepath.Dir(cfg.File), cfg.ReferencePath)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("prepend_time", d.PrependTime)
	v.SetDefault("timestamp.format", d.Timestamp.Format)
	v.SetDefault("timestamp.prefix", d.Timestamp.Prefix)
	v.SetDefault("timestamp.suffix", d.Timestamp.Suffix)
	v.SetDefault("reset", d.Reset)
	v.SetDefault("reference", "")
	for name, tmpl := range d.Styles {
		v.SetDefault("styles."+name, tmpl)
	}
}

// Reference builds the token table: the reference file (or the ASCII
// table) with inline codes layered on top.
func (c *Config) Reference() (*style.Reference, error) {
	base := style.ASCII()
	if c.ReferencePath != "" {
		ref, err := style.LoadReference(c.ReferencePath)
		if err != nil {
			return nil, err
		}
		base = ref
	}

	codes := make(map[string]string, len(c.Codes))
	for name, code := range c.Codes {
		codes[name] = style.ExpandEscapes(code)
	}

	ref, err := base.Merge(codes)
	if err != nil {
		return nil, fmt.Errorf("applying inline codes: %w", err)
	}
	return ref, nil
}

// Apply pushes the settings into w.
func (c *Config) Apply(w *writer.StyleWriter) error {
	ref, err := c.Reference()
	if err != nil {
		return err
	}
	if err := w.SetReference(ref); err != nil {
		return err
	}

	w.PrependTime = c.PrependTime
	w.TimestampFormat = c.Timestamp.Format
	w.TimestampPrefix = c.Timestamp.Prefix
	w.TimestampSuffix = c.Timestamp.Suffix
	w.Reset = c.Reset

	for name, tmpl := range c.Styles {
		level, err := writer.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("styles: %w", err)
		}
		w.Styles[level] = tmpl
	}
	return nil
}

// NewWriter builds a writer on s configured from c.
func (c *Config) NewWriter(s writer.Sink) (*writer.StyleWriter, error) {
	w, err := writer.New(&writer.Options{Sink: s})
	if err != nil {
		return nil, err
	}
	if err := c.Apply(w); err != nil {
		return nil, err
	}
	return w, nil
}
