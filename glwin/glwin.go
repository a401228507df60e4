// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glwin manages the GLFW library and the windows whose OpenGL
// contexts the gl package operates within.
//
// GLFW must be used from the main thread: call [runtime.LockOSThread]
// in an init function of the main package, and make every glwin call
// from main.
package glwin

import (
	"log/slog"
	"runtime"
	"slices"

	"cogentcore.org/glbind/grr"
	"cogentcore.org/glbind/winconf"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is the initialized GLFW library. There is at most one per
// process, created by [Init] and ended by [Context.Terminate].
type Context struct {
	opts       winconf.Context
	windows    []*Window
	terminated bool
}

// Init initializes GLFW, with all windows created through the returned
// Context getting an OpenGL context of the given version and options.
// Must be called on the main thread.
func Init(opts winconf.Context) (ctx *Context, err error) {
	defer grr.Recover(&err)
	if err := glfw.Init(); err != nil {
		return nil, grr.Log(grr.Errorf("glwin: failed to initialize glfw: %w", err))
	}
	slog.Info("glfw initialized", "version", glfw.GetVersionString())
	return &Context{opts: opts}, nil
}

// hint is one GLFW window creation hint.
type hint struct {
	Hint  glfw.Hint
	Value int
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// windowHints returns the creation hints for a window with the given
// options on the given operating system.
func windowHints(c winconf.Context, w winconf.Window, goos string) []hint {
	return []hint{
		{glfw.ContextVersionMajor, c.Major},
		{glfw.ContextVersionMinor, c.Minor},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		// macOS only provides core profiles 3.2+ as forward-compatible
		{glfw.OpenGLForwardCompatible, boolHint(goos == "darwin")},
		{glfw.OpenGLDebugContext, boolHint(c.Debug)},
		{glfw.Resizable, boolHint(w.Resizable)},
		{glfw.Visible, boolHint(w.Visible)},
		{glfw.Samples, w.Samples},
	}
}

// NewWindow creates a new window with its own OpenGL context.
// The context is not made current; call [Window.MakeContextCurrent].
func (c *Context) NewWindow(opts winconf.Window) (w *Window, err error) {
	defer grr.Recover(&err)
	glfw.DefaultWindowHints()
	for _, h := range windowHints(c.opts, opts, runtime.GOOS) {
		glfw.WindowHint(h.Hint, h.Value)
	}
	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, grr.Log(grr.Errorf("glwin: failed to create window %q: %w", opts.Title, err))
	}
	w = &Window{ctx: c, glw: glw, opts: opts}
	glw.SetFramebufferSizeCallback(w.framebufferSize)
	c.windows = append(c.windows, w)
	return w, nil
}

// PollEvents processes pending window events and returns immediately.
func (c *Context) PollEvents() {
	glfw.PollEvents()
}

// WaitEvents waits until at least one event is pending and processes
// the pending events.
func (c *Context) WaitEvents() {
	glfw.WaitEvents()
}

// Terminate destroys all remaining windows and shuts GLFW down. It must
// be the last glwin call. Calling it more than once has no further effect.
func (c *Context) Terminate() {
	if c.terminated {
		return
	}
	for _, w := range slices.Clone(c.windows) {
		w.Destroy()
	}
	c.windows = nil
	glfw.Terminate()
	c.terminated = true
}

func (c *Context) removeWindow(w *Window) {
	for i, cw := range c.windows {
		if cw == w {
			c.windows = append(c.windows[:i], c.windows[i+1:]...)
			return
		}
	}
}
