// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"

	"cogentcore.org/glbind/gl"
	"cogentcore.org/glbind/gl/glnative"
	"cogentcore.org/glbind/glwin"
	"cogentcore.org/glbind/grr"
	"cogentcore.org/glbind/winconf"
	"github.com/mitchellh/go-homedir"
)

var (
	meshVertices = []float32{1.0, 2.0, 3.0, 4.0}
	meshIndexes  = []uint32{0, 1, 2, 3}
)

// loadConfig returns the config in filename, or the defaults if
// filename is empty. A leading ~ is expanded to the home directory.
func loadConfig(filename string) (winconf.Config, string, error) {
	if filename == "" {
		return winconf.Defaults(), "", nil
	}
	filename, err := homedir.Expand(filename)
	if err != nil {
		return winconf.Config{}, "", grr.Wrap(err)
	}
	cfg, err := winconf.Open(filename)
	return cfg, filename, err
}

// run opens the window and runs the frame loop until the window is
// closed or the given number of frames have been shown.
func run(ctx context.Context, filename string, frames int) error {
	cfg, filename, err := loadConfig(filename)
	if err != nil {
		return err
	}

	wctx, err := glwin.Init(cfg.Context)
	if err != nil {
		return err
	}
	defer wctx.Terminate()

	win, err := wctx.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	win.SetSwapInterval(cfg.Window.SwapInterval)
	win.OnFramebufferSize(func(width, height int) {
		slog.Info("framebuffer resized", "width", width, "height", height)
	})

	drv, err := glnative.Init(cfg.Context.Debug)
	if err != nil {
		return err
	}
	gctx := gl.NewContext(drv)

	mesh, err := NewMesh(gctx, cfg.Mesh.Usage, meshVertices, meshIndexes)
	if err != nil {
		return err
	}
	defer mesh.Delete()
	slog.Info("mesh uploaded", "vertex array", mesh.Array.Handle(), "vertices", mesh.Vertices.Handle(), "indexes", mesh.Indexes.Handle())
	gctx.CheckErrors("upload")

	reloads := make(chan winconf.Config, 1)
	if filename != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			grr.Log(winconf.Watch(watchCtx, filename, sendLatest(reloads)))
		}()
	}

	for frame := 0; !win.ShouldClose() && (frames == 0 || frame < frames); frame++ {
		select {
		case c := <-reloads:
			win.Apply(c.Window)
			if c.Mesh.Usage != mesh.Usage() {
				slog.Info("mesh usage changed", "from", mesh.Usage(), "to", c.Mesh.Usage)
				mesh.SetUsage(c.Mesh.Usage)
			}
		default:
		}
		grr.Log(mesh.Update())
		gctx.CheckErrors("frame")
		win.SwapBuffers()
		wctx.PollEvents()
	}
	return nil
}

// sendLatest returns a function that hands each config to ch, which
// must have a buffer of one, replacing a config still pending there so
// that the receiver always gets the newest. It must be the only sender.
func sendLatest(ch chan winconf.Config) func(winconf.Config) {
	return func(c winconf.Config) {
		select {
		case <-ch:
		default:
		}
		ch <- c
	}
}

// writeConfig writes the default config to filename.
func writeConfig(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return grr.Wrap(err)
	}
	cfg := winconf.Defaults()
	if err := winconf.Save(filename, &cfg); err != nil {
		return err
	}
	slog.Info("wrote config", "file", filename)
	return nil
}
