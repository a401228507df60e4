// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winconf

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "watch.toml")
	cfg := Defaults()
	require.NoError(t, Save(fn, &cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(c Config) {
			select {
			case reloads <- c:
			default:
			}
		})
	}()

	// the watcher may not be registered yet, so keep saving until
	// a reload with the new title arrives
	cfg.Window.Title = "reloaded"
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case c := <-reloads:
			got = c.Window.Title == "reloaded"
		case <-tick.C:
			require.NoError(t, Save(fn, &cfg))
		case <-timeout:
			t.Fatal("no reload within timeout")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

// lockedBuffer is a bytes.Buffer that is safe to write from the
// watching goroutine while the test reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// replace writes data next to fn and renames it over fn, so that the
// watcher never reads a partially written file.
func replace(t *testing.T, fn string, data []byte) {
	tmp := fn + ".tmp"
	require.NoError(t, os.WriteFile(tmp, data, 0666))
	require.NoError(t, os.Rename(tmp, fn))
}

func replaceConfig(t *testing.T, fn string, cfg Config) {
	data, err := Write(&cfg, TOML)
	require.NoError(t, err)
	replace(t, fn, data)
}

func TestWatchSkipsInvalid(t *testing.T) {
	var logs lockedBuffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	fn := filepath.Join(t.TempDir(), "watch.toml")
	cfg := Defaults()
	require.NoError(t, Save(fn, &cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := make(chan Config, 16)
	go Watch(ctx, fn, func(c Config) {
		select {
		case reloads <- c:
		default:
		}
	})

	// wait until the watcher sees changes
	cfg.Window.Title = "ready"
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case c := <-reloads:
			got = c.Window.Title == "ready"
		case <-tick.C:
			replaceConfig(t, fn, cfg)
		case <-timeout:
			t.Fatal("no reload within timeout")
		}
	}

	replace(t, fn, []byte("[window\ntitle = \"bad\"\n"))
	quiet := time.After(300 * time.Millisecond)
	for waiting := true; waiting; {
		select {
		case c := <-reloads:
			assert.Equal(t, "ready", c.Window.Title, "invalid file delivered")
		case <-quiet:
			waiting = false
		}
	}

	cfg.Window.Title = "after"
	replaceConfig(t, fn, cfg)
	timeout = time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case c := <-reloads:
			assert.NotEqual(t, "bad", c.Window.Title)
			got = c.Window.Title == "after"
		case <-timeout:
			t.Fatal("no reload after invalid file")
		}
	}
	assert.Contains(t, logs.String(), "level=ERROR")
}
