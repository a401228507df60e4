// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl provides wrappers for handle-based graphics objects
// (buffers and vertex arrays) that tie each native handle to exactly
// one Go object, and a scoped-bind utility ([With]) that binds a
// resource for the duration of an operation and always unbinds it.
//
// All native calls go through a [Driver], so that the package can
// be used with a real OpenGL context (package glnative) or with the
// recording mock in package gltest.
package gl

import (
	"errors"
	"log/slog"
)

// Slot identifies one binding slot of a context: the global
// "currently active object of this kind" register that driver
// operations implicitly act on.
type Slot struct {
	Kind Kinds

	// Target is the buffer target, for [BufferKind] slots.
	Target Target
}

// BufferSlot returns the slot for buffers bound to the given target.
func BufferSlot(target Target) Slot {
	return Slot{Kind: BufferKind, Target: target}
}

// VertexArraySlot is the slot for the active vertex array.
var VertexArraySlot = Slot{Kind: VertexArrayKind}

func (s Slot) String() string {
	if s.Kind == BufferKind {
		return s.Kind.String() + "(" + s.Target.String() + ")"
	}
	return s.Kind.String()
}

// Context is one graphics context: the driver its objects are created
// through, and the table of what is currently bound in each slot.
// The table is updated by Bind and Unbind on the objects, and
// is the explicit record of state the driver otherwise keeps hidden.
//
// The [ElementArrayBuffer] slot is vertex array state: binding or
// unbinding an index buffer while a vertex array is bound changes what
// that vertex array records, and binding a vertex array brings its
// index buffer back into the slot.
//
// A Context is not safe for concurrent use. It belongs to the thread
// on which its native context is current.
type Context struct {
	driver Driver
	bound  map[Slot]Handle

	// elements is the index buffer recorded by each vertex array,
	// with 0 for the default one.
	elements map[Handle]Handle
}

// NewContext returns a new [Context] issuing calls to d.
// The native context behind d must already be current.
func NewContext(d Driver) *Context {
	return &Context{driver: d, bound: map[Slot]Handle{}, elements: map[Handle]Handle{}}
}

// Driver returns the driver for this context.
func (c *Context) Driver() Driver {
	return c.driver
}

// Bound returns the handle currently bound to the given slot,
// or 0 if the slot is clear.
func (c *Context) Bound(s Slot) Handle {
	return c.bound[s]
}

// elementSlot is the slot that follows the bound vertex array.
var elementSlot = BufferSlot(ElementArrayBuffer)

func (c *Context) setBound(s Slot, h Handle) {
	c.set(s, h)
	switch s {
	case elementSlot:
		c.setElements(c.Bound(VertexArraySlot), h)
	case VertexArraySlot:
		c.set(elementSlot, c.elements[h])
	}
}

func (c *Context) set(s Slot, h Handle) {
	if h == 0 {
		delete(c.bound, s)
		return
	}
	c.bound[s] = h
}

func (c *Context) setElements(va, h Handle) {
	if h == 0 {
		delete(c.elements, va)
		return
	}
	c.elements[va] = h
}

// Elements returns the index buffer recorded by vertex array va,
// or by the default vertex array if va is 0.
func (c *Context) Elements(va Handle) Handle {
	return c.elements[va]
}

// CheckErrors drains the errors the driver has reported asynchronously,
// logging each one with the given location, and returns them joined.
// Object operations never call this themselves: the host calls it at
// points where it wants driver errors surfaced, such as once per frame.
func (c *Context) CheckErrors(where string) error {
	errs := c.driver.Errors()
	for _, err := range errs {
		slog.Error("gl driver error", "where", where, "err", err)
	}
	return errors.Join(errs...)
}
