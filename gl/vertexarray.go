// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"cogentcore.org/glbind/grr"
)

// VertexArray records vertex attribute layout and the element buffer
// binding, so that a mesh can be made current with a single bind.
type VertexArray struct {
	Object
}

// NewVertexArray allocates a new vertex array. It is left unbound.
func NewVertexArray(ctx *Context) (*VertexArray, error) {
	h, err := ctx.driver.GenVertexArray()
	if err != nil {
		return nil, grr.Errorf("gl.NewVertexArray: %w: %w", ErrAllocation, err)
	}
	if h == 0 {
		return nil, grr.Errorf("gl.NewVertexArray: %w", ErrAllocation)
	}
	return &VertexArray{Object: newObject(ctx, h)}, nil
}

// Bind makes this the active vertex array. The index buffer it
// records becomes the bound [ElementArrayBuffer].
func (va *VertexArray) Bind() {
	va.ctx.driver.BindVertexArray(va.handle)
	va.ctx.setBound(VertexArraySlot, va.handle)
}

// Unbind clears the vertex array slot. The [ElementArrayBuffer] slot
// reverts to the default vertex array's index buffer.
func (va *VertexArray) Unbind() {
	va.ctx.driver.BindVertexArray(0)
	va.ctx.setBound(VertexArraySlot, 0)
}

// Delete releases the native handle, along with the index buffer
// binding it records. Calling it more than once has no further effect.
func (va *VertexArray) Delete() {
	h := va.handle
	if va.release(VertexArraySlot, va.ctx.driver.DeleteVertexArray) {
		va.ctx.setElements(h, 0)
	}
}
