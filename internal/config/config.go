// Package config loads hdrkit configuration files.
//
// A configuration file is YAML:
//
//	log:
//	  level: debug   # debug, info, warn or error
//	  format: dev    # console or dev
//	headers:
//	  - id: app.XRequestId
//	  - id: app.XTraceTags
//	    list: true
//	  - id: app.XRetryDate
//	    parent: date
//
// Header entries extend the builtin type hierarchy, parents are given by
// wire name and default to the hierarchy root.
package config

//go:generate go tool errtrace -w .

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/hdrkit/header"
	"github.com/ghettovoice/hdrkit/internal/errorutil"
	"github.com/ghettovoice/hdrkit/internal/util"
)

// Config is the hdrkit configuration.
type Config struct {
	Log     Log          `yaml:"log"`
	Headers []HeaderType `yaml:"headers"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HeaderType describes an extra header type.
type HeaderType struct {
	ID     string `yaml:"id"`
	Parent string `yaml:"parent"`
	List   bool   `yaml:"list"`
}

// Log formats.
const (
	FormatConsole = "console"
	FormatDev     = "dev"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info", Format: FormatConsole},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Parse(data))
}

// Parse decodes and validates a YAML configuration.
// Unknown fields are rejected, missing ones keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := levels[util.LCase(c.Log.Level)]; !ok {
		errs = append(errs, errorutil.NewInvalidArgumentError("unknown log level %q", c.Log.Level))
	}
	if f := util.LCase(c.Log.Format); f != FormatConsole && f != FormatDev {
		errs = append(errs, errorutil.NewInvalidArgumentError("unknown log format %q", c.Log.Format))
	}
	for i, h := range c.Headers {
		if util.TrimSP(h.ID) == "" {
			errs = append(errs, errorutil.NewInvalidArgumentError("header #%d has no id", i))
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid config", errs...))
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	if lvl, ok := levels[util.LCase(c.Log.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Extend derives the configured header types below root in file order,
// so an entry may use an earlier one as its parent.
// It fails when a parent is unknown or a derived name is already taken.
func (c *Config) Extend(root *header.Type) error {
	for _, h := range c.Headers {
		parent := root
		if h.Parent != "" {
			p, err := root.Lookup(h.Parent)
			if err != nil {
				return errtrace.Wrap(err)
			}
			parent = p
		}

		name := header.IDToName(h.ID)
		if typ, err := root.Lookup(name); err == nil {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError(
				"header %q clashes with %s", h.ID, typ.ID(),
			))
		}

		var opts []header.TypeOption
		if h.List {
			opts = append(opts, header.AsList())
		}
		parent.Derive(h.ID, opts...)
	}
	return nil
}
