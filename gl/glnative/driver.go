// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glnative implements [gl.Driver] on OpenGL 4.6 core,
// via github.com/go-gl/gl.
package glnative

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/glbind/gl"
	"cogentcore.org/glbind/grr"
	ogl "github.com/go-gl/gl/v4.6-core/gl"
)

// Driver issues [gl.Driver] calls to the OpenGL context that is
// current on the calling thread.
type Driver struct {
	// debug errors reported through the KHR_debug callback since the
	// last call to Errors. Debug output is synchronous, so the
	// callback runs on the thread that issued the failing call.
	debugErrs []error
}

// Init loads the OpenGL function pointers and returns a new [Driver].
// An OpenGL context must be current on the calling thread, and all
// later calls must come from that same thread.
// If debug is true, the driver installs a debug message callback:
// errors it reports are returned by [Driver.Errors] along with the
// glGetError codes, and other messages are logged at debug level.
// Debug output needs a debug context to report anything.
func Init(debug bool) (*Driver, error) {
	if err := ogl.Init(); err != nil {
		return nil, grr.Errorf("glnative: could not initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized", "version", ogl.GoStr(ogl.GetString(ogl.VERSION)), "renderer", ogl.GoStr(ogl.GetString(ogl.RENDERER)))
	d := &Driver{}
	if debug {
		ogl.Enable(ogl.DEBUG_OUTPUT)
		ogl.Enable(ogl.DEBUG_OUTPUT_SYNCHRONOUS)
		ogl.DebugMessageCallback(d.debugMessage, nil)
	}
	return d, nil
}

func (d *Driver) debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	if gltype == ogl.DEBUG_TYPE_ERROR {
		d.debugErrs = append(d.debugErrs, &DebugError{ID: id, Severity: severity, Message: message})
		return
	}
	slog.Debug("gl debug message", "id", id, "severity", SeverityString(severity), "msg", message)
}

func (d *Driver) GenBuffer() (gl.Handle, error) {
	var h uint32
	ogl.GenBuffers(1, &h)
	return gl.Handle(h), nil
}

func (d *Driver) DeleteBuffer(h gl.Handle) {
	u := uint32(h)
	ogl.DeleteBuffers(1, &u)
}

func (d *Driver) BindBuffer(target gl.Target, h gl.Handle) {
	ogl.BindBuffer(TargetEnum(target), uint32(h))
}

func (d *Driver) BufferData(target gl.Target, data []byte, usage gl.Usage) {
	// gl.Ptr panics on an empty slice; a nil pointer with size 0 is
	// a valid empty data store.
	var p unsafe.Pointer
	if len(data) > 0 {
		p = ogl.Ptr(data)
	}
	ogl.BufferData(TargetEnum(target), len(data), p, UsageEnum(usage))
}

// BufferSubData implements [gl.DataReader].
func (d *Driver) BufferSubData(target gl.Target, size int) []byte {
	data := make([]byte, size)
	if size > 0 {
		ogl.GetBufferSubData(TargetEnum(target), 0, size, ogl.Ptr(data))
	}
	return data
}

func (d *Driver) GenVertexArray() (gl.Handle, error) {
	var h uint32
	ogl.GenVertexArrays(1, &h)
	return gl.Handle(h), nil
}

func (d *Driver) DeleteVertexArray(h gl.Handle) {
	u := uint32(h)
	ogl.DeleteVertexArrays(1, &u)
}

func (d *Driver) BindVertexArray(h gl.Handle) {
	ogl.BindVertexArray(uint32(h))
}

// Errors returns the debug errors reported since the last call,
// followed by all pending glGetError codes.
func (d *Driver) Errors() []error {
	errs := d.debugErrs
	d.debugErrs = nil
	for code := ogl.GetError(); code != ogl.NO_ERROR; code = ogl.GetError() {
		errs = append(errs, Error(code))
	}
	return errs
}

// TargetEnum returns the OpenGL enum for the given buffer target.
func TargetEnum(t gl.Target) uint32 {
	switch t {
	case gl.ArrayBuffer:
		return ogl.ARRAY_BUFFER
	case gl.ElementArrayBuffer:
		return ogl.ELEMENT_ARRAY_BUFFER
	case gl.UniformBuffer:
		return ogl.UNIFORM_BUFFER
	case gl.CopyReadBuffer:
		return ogl.COPY_READ_BUFFER
	case gl.CopyWriteBuffer:
		return ogl.COPY_WRITE_BUFFER
	}
	return 0
}

// UsageEnum returns the OpenGL enum for the given usage hint.
func UsageEnum(u gl.Usage) uint32 {
	switch u {
	case gl.StaticDraw:
		return ogl.STATIC_DRAW
	case gl.DynamicDraw:
		return ogl.DYNAMIC_DRAW
	case gl.StreamDraw:
		return ogl.STREAM_DRAW
	case gl.StaticRead:
		return ogl.STATIC_READ
	case gl.DynamicRead:
		return ogl.DYNAMIC_READ
	case gl.StreamRead:
		return ogl.STREAM_READ
	case gl.StaticCopy:
		return ogl.STATIC_COPY
	case gl.DynamicCopy:
		return ogl.DYNAMIC_COPY
	case gl.StreamCopy:
		return ogl.STREAM_COPY
	}
	return 0
}

// Error is an error code returned by glGetError.
type Error uint32

func (e Error) Error() string {
	switch uint32(e) {
	case ogl.INVALID_ENUM:
		return "gl: invalid enum"
	case ogl.INVALID_VALUE:
		return "gl: invalid value"
	case ogl.INVALID_OPERATION:
		return "gl: invalid operation"
	case ogl.STACK_OVERFLOW:
		return "gl: stack overflow"
	case ogl.STACK_UNDERFLOW:
		return "gl: stack underflow"
	case ogl.OUT_OF_MEMORY:
		return "gl: out of memory"
	case ogl.INVALID_FRAMEBUFFER_OPERATION:
		return "gl: invalid framebuffer operation"
	}
	return fmt.Sprintf("gl: error 0x%04X", uint32(e))
}

// DebugError is an error message from the debug output callback.
type DebugError struct {
	ID       uint32
	Severity uint32
	Message  string
}

func (e *DebugError) Error() string {
	return fmt.Sprintf("gl: %s (id %d, severity %s)", e.Message, e.ID, SeverityString(e.Severity))
}

// SeverityString returns a short name for a debug message severity.
func SeverityString(severity uint32) string {
	switch severity {
	case ogl.DEBUG_SEVERITY_HIGH:
		return "high"
	case ogl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case ogl.DEBUG_SEVERITY_LOW:
		return "low"
	case ogl.DEBUG_SEVERITY_NOTIFICATION:
		return "notification"
	}
	return fmt.Sprintf("0x%04X", severity)
}
