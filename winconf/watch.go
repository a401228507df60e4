// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winconf

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glbind/grr"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file and calls fn with the reloaded
// configuration each time the file is written or replaced. Files that
// fail to load are logged and skipped. Watch blocks until ctx is done,
// and fn is called on the goroutine running Watch.
//
// The directory is watched rather than the file itself, because many
// editors save by writing a new file and renaming it over the old one.
func Watch(ctx context.Context, filename string, fn func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return grr.Wrap(err)
	}
	defer w.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return grr.Wrap(err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return grr.Errorf("winconf: watching %s: %w", filename, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := Open(abs)
			if grr.Log(err) != nil {
				continue
			}
			slog.Info("winconf: reloaded", "file", filename)
			fn(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			grr.Log(err)
		}
	}
}
