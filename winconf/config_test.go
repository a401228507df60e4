// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winconf

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glbind/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Context.Major)
	assert.Equal(t, 6, cfg.Context.Minor)
	assert.Equal(t, gl.StaticDraw, cfg.Mesh.Usage)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Context.Major, cfg.Context.Minor = 3, 1
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Window.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Window.Samples = -1
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Mesh.Usage = gl.UsagesN
	assert.ErrorIs(t, cfg.Validate(), gl.ErrInvalidUsage)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, TOML, FormatFor("glbind.toml"))
	assert.Equal(t, YAML, FormatFor("glbind.yaml"))
	assert.Equal(t, YAML, FormatFor("GLBIND.YML"))
	assert.Equal(t, TOML, FormatFor("glbind"))
}

func TestSaveOpen(t *testing.T) {
	for _, name := range []string{"glbind.toml", "glbind.yaml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), name)
			cfg := Defaults()
			cfg.Window.Title = "saved"
			cfg.Window.Samples = 4
			cfg.Context.Debug = true
			cfg.Mesh.Usage = gl.DynamicDraw
			require.NoError(t, Save(fn, &cfg))

			got, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestOpenPartial(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[window]\ntitle = \"partial\"\n\n[mesh]\nusage = \"StreamDraw\"\n"), 0666))
	cfg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "partial", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, gl.StreamDraw, cfg.Mesh.Usage)

	fn = filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("window:\n  width: 1024\n"), 0666))
	cfg, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "glbind", cfg.Window.Title)

	fn = filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(fn, nil, 0666))
	cfg, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	dir := t.TempDir()
	fn := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[window]\ncolor = \"red\"\n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)

	fn = filepath.Join(dir, "usage.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("mesh:\n  usage: Sometimes\n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)

	fn = filepath.Join(dir, "size.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[window]\nheight = -1\n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)
}
