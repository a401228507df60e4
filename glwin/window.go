// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glwin

import (
	"log/slog"

	"cogentcore.org/glbind/winconf"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is one GLFW window and its OpenGL context. It owns the native
// window handle until [Window.Destroy].
type Window struct {
	ctx  *Context
	glw  *glfw.Window
	opts winconf.Window

	resize []func(width, height int)
}

// Handle returns the native GLFW window, or nil after Destroy.
func (w *Window) Handle() *glfw.Window {
	return w.glw
}

// Options returns the options the window currently has.
func (w *Window) Options() winconf.Window {
	return w.opts
}

// MakeContextCurrent makes the OpenGL context of the window current on
// the calling thread. It must be current before any gl object is used.
func (w *Window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
}

// IsCurrent returns whether the window's context is current on the
// calling thread.
func (w *Window) IsCurrent() bool {
	return w.glw != nil && glfw.GetCurrentContext() == w.glw
}

// ShouldClose returns whether the user has asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets the close flag of the window.
func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

// SwapBuffers swaps the front and back buffers of the window.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.glw.SetTitle(title)
	w.opts.Title = title
}

// SetSwapInterval sets the swap interval of the window's context,
// which must be current.
func (w *Window) SetSwapInterval(n int) {
	glfw.SwapInterval(n)
	w.opts.SwapInterval = n
}

// FramebufferSize returns the size of the framebuffer in pixels,
// which differs from the window size on high-DPI screens.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// OnFramebufferSize adds a function called with the new framebuffer
// size in pixels whenever it changes. Functions run on the main thread
// during [Context.PollEvents] and [Context.WaitEvents].
func (w *Window) OnFramebufferSize(fn func(width, height int)) {
	w.resize = append(w.resize, fn)
}

func (w *Window) framebufferSize(_ *glfw.Window, width, height int) {
	slog.Debug("glwin: framebuffer resized", "title", w.opts.Title, "width", width, "height", height)
	for _, fn := range w.resize {
		fn(width, height)
	}
}

// Apply changes the window to have the given options, for those that
// can change after creation: title, size, resizability, and the swap
// interval (when the window's context is current). Samples and
// visibility keep their creation values.
func (w *Window) Apply(opts winconf.Window) {
	if opts.Title != w.opts.Title {
		w.SetTitle(opts.Title)
	}
	if opts.Width != w.opts.Width || opts.Height != w.opts.Height {
		w.glw.SetSize(opts.Width, opts.Height)
		w.opts.Width, w.opts.Height = opts.Width, opts.Height
	}
	if opts.Resizable != w.opts.Resizable {
		w.glw.SetAttrib(glfw.Resizable, boolHint(opts.Resizable))
		w.opts.Resizable = opts.Resizable
	}
	if opts.SwapInterval != w.opts.SwapInterval && w.IsCurrent() {
		w.SetSwapInterval(opts.SwapInterval)
	}
}

// Destroy destroys the window and its context. Calling it more than
// once has no further effect.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	w.ctx.removeWindow(w)
}
