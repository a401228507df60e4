// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package winconf provides the configuration of the graphics context
// and window, loadable from TOML or YAML files and reloadable while
// the program runs.
package winconf

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glbind/gl"
	"cogentcore.org/glbind/grr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Context contains the options for the graphics context that
// every window is created with.
type Context struct {

	// Major is the OpenGL major version requested.
	Major int `toml:"major" yaml:"major"`

	// Minor is the OpenGL minor version requested.
	Minor int `toml:"minor" yaml:"minor"`

	// Debug requests a debug context and enables driver debug output.
	Debug bool `toml:"debug" yaml:"debug"`
}

// Window contains the options for one window.
type Window struct {

	// Title is the window title.
	Title string `toml:"title" yaml:"title"`

	// Width is the initial width in screen coordinates.
	Width int `toml:"width" yaml:"width"`

	// Height is the initial height in screen coordinates.
	Height int `toml:"height" yaml:"height"`

	// Resizable is whether the user can resize the window.
	Resizable bool `toml:"resizable" yaml:"resizable"`

	// Visible is whether the window is shown when created.
	Visible bool `toml:"visible" yaml:"visible"`

	// Samples is the number of multisampling samples; 0 disables it.
	Samples int `toml:"samples" yaml:"samples"`

	// SwapInterval is the number of screen updates to wait for
	// before swapping buffers; 1 is vsync, 0 is unsynchronized.
	SwapInterval int `toml:"swap_interval" yaml:"swap_interval"`
}

// Mesh contains the options for the buffers the host uploads.
type Mesh struct {

	// Usage is the usage hint for vertex and index buffers.
	Usage gl.Usage `toml:"usage" yaml:"usage"`
}

// Config is the full configuration.
type Config struct {
	Context Context `toml:"context" yaml:"context"`
	Window  Window  `toml:"window" yaml:"window"`
	Mesh    Mesh    `toml:"mesh" yaml:"mesh"`
}

// Defaults returns the default configuration: an OpenGL 4.6 core
// context and a visible, resizable 800x600 window with vsync.
func Defaults() Config {
	return Config{
		Context: Context{Major: 4, Minor: 6},
		Window: Window{
			Title:        "glbind",
			Width:        800,
			Height:       600,
			Resizable:    true,
			Visible:      true,
			SwapInterval: 1,
		},
		Mesh: Mesh{Usage: gl.StaticDraw},
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Context.Major < 3 || (c.Context.Major == 3 && c.Context.Minor < 2):
		return grr.Errorf("winconf: OpenGL %d.%d has no core profile, need 3.2 or later", c.Context.Major, c.Context.Minor)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return grr.Errorf("winconf: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return grr.Errorf("winconf: invalid sample count %d", c.Window.Samples)
	case !c.Mesh.Usage.IsValid():
		return grr.Errorf("winconf: %w: %v", gl.ErrInvalidUsage, c.Mesh.Usage)
	}
	return nil
}

// Formats are the supported file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatFor returns the format for the given file name, by extension:
// .yaml and .yml are YAML, everything else is TOML.
func FormatFor(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Open reads the configuration from the given file, in the format given
// by [FormatFor]. Settings missing from the file keep their [Defaults].
// Unknown settings are an error.
func Open(filename string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, grr.Wrap(err)
	}
	if err := Read(b, FormatFor(filename), &cfg); err != nil {
		return cfg, grr.Errorf("winconf: reading %s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// Read decodes b in the given format into cfg.
func Read(b []byte, format Formats, cfg *Config) error {
	if format == YAML {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Write encodes cfg in the given format.
func Write(cfg *Config, format Formats) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}

// Save writes the configuration to the given file, in the format given
// by [FormatFor].
func Save(filename string, cfg *Config) error {
	b, err := Write(cfg, FormatFor(filename))
	if err != nil {
		return grr.Wrap(err)
	}
	return grr.Wrap(os.WriteFile(filename, b, 0666))
}
