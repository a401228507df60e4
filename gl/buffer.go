// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"log/slog"

	"cogentcore.org/glbind/grr"
)

// Buffer is a contiguous block of GPU memory, such as vertex data
// ([ArrayBuffer]) or vertex indexes ([ElementArrayBuffer]).
// Its [Target] and construction [Usage] are fixed for its lifetime.
// The content is uploaded to the GPU and no copy is kept: the
// Buffer only records the size of the last upload.
type Buffer struct {
	Object

	target Target
	usage  Usage
	size   int
}

// NewBuffer allocates a new buffer for the given target and uploads data
// to it in one [With] cycle: bind, [Buffer.SetData], unbind. The buffer
// is left unbound. A nil or empty data slice makes an empty buffer.
//
// If the driver cannot allocate a handle, the error wraps [ErrAllocation]
// and no handle is left behind. If the upload panics, the slot is unbound
// and the handle deleted before the panic continues.
func NewBuffer(ctx *Context, target Target, usage Usage, data []byte) (*Buffer, error) {
	if !target.IsValid() {
		return nil, grr.Errorf("gl.NewBuffer: %w: %v", ErrInvalidTarget, target)
	}
	if !usage.IsValid() {
		return nil, grr.Errorf("gl.NewBuffer: %w: %v", ErrInvalidUsage, usage)
	}
	h, err := ctx.driver.GenBuffer()
	if err != nil {
		return nil, grr.Errorf("gl.NewBuffer %v: %w: %w", target, ErrAllocation, err)
	}
	if h == 0 {
		return nil, grr.Errorf("gl.NewBuffer %v: %w", target, ErrAllocation)
	}
	b := &Buffer{Object: newObject(ctx, h), target: target, usage: usage}

	uploaded := false
	defer func() {
		if !uploaded {
			b.Delete()
		}
	}()
	With(b, func() error {
		b.SetData(usage, data)
		return nil
	})
	uploaded = true

	slog.Debug("gl: created buffer", "handle", h, "target", target, "usage", usage, "size", len(data))
	return b, nil
}

// NewBufferFrom is [NewBuffer] for a typed slice, which is uploaded as
// its in-memory bytes (see [SliceBytes]).
func NewBufferFrom[E any](ctx *Context, target Target, usage Usage, data []E) (*Buffer, error) {
	return NewBuffer(ctx, target, usage, SliceBytes(data))
}

// Target returns the binding slot role of this buffer.
func (b *Buffer) Target() Target {
	return b.target
}

// Usage returns the usage hint the buffer was created with.
func (b *Buffer) Usage() Usage {
	return b.usage
}

// Size returns the size in bytes of the last upload.
func (b *Buffer) Size() int {
	return b.size
}

// Bind makes this buffer the active one for its target.
func (b *Buffer) Bind() {
	b.ctx.driver.BindBuffer(b.target, b.handle)
	b.ctx.setBound(BufferSlot(b.target), b.handle)
}

// Unbind clears the binding slot of this buffer's target.
func (b *Buffer) Unbind() {
	b.ctx.driver.BindBuffer(b.target, 0)
	b.ctx.setBound(BufferSlot(b.target), 0)
}

// SetData replaces the entire content of the buffer with data.
// The buffer must already be bound: SetData does not bind or unbind,
// so callers managing their own bind scope can call it directly,
// and otherwise wrap it in [With]. usage is the hint for this upload;
// it does not change [Buffer.Usage]. SetData on a deleted buffer
// does nothing.
func (b *Buffer) SetData(usage Usage, data []byte) {
	if b.IsDeleted() {
		return
	}
	b.ctx.driver.BufferData(b.target, data, usage)
	b.size = len(data)
}

// SetDataFrom is [Buffer.SetData] for a typed slice.
func SetDataFrom[E any](b *Buffer, usage Usage, data []E) {
	b.SetData(usage, SliceBytes(data))
}

// ReadData returns a copy of the buffer content as last uploaded.
// The buffer must already be bound. It returns [ErrUnsupported] if the
// driver cannot read buffers back, and [ErrDeleted] after Delete.
func (b *Buffer) ReadData() ([]byte, error) {
	if b.IsDeleted() {
		return nil, grr.Errorf("gl.Buffer ReadData: %w", ErrDeleted)
	}
	rd, ok := b.ctx.driver.(DataReader)
	if !ok {
		return nil, grr.Errorf("gl.Buffer ReadData %d: %w", b.handle, ErrUnsupported)
	}
	return rd.BufferSubData(b.target, b.size), nil
}

// Delete releases the native handle and resets [Buffer.Size] to 0.
// It must not be called while the buffer is in use by GPU work the
// caller has issued. Calling Delete more than once has no further effect.
func (b *Buffer) Delete() {
	h := b.handle
	b.size = 0
	if b.release(BufferSlot(b.target), b.ctx.driver.DeleteBuffer) {
		slog.Debug("gl: deleted buffer", "handle", h, "target", b.target)
	}
}
