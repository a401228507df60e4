// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Driver is the set of native graphics calls the object wrappers are
// built on. All methods are synchronous and must be called on the
// thread that owns the current graphics context.
//
// Except for allocation, driver methods do not report errors directly:
// like the native API, failures are queued and returned later by Errors.
type Driver interface {
	// GenBuffer allocates one buffer handle. A failed allocation
	// returns a non-nil error or the null handle.
	GenBuffer() (Handle, error)

	// DeleteBuffer releases a buffer handle.
	DeleteBuffer(h Handle)

	// BindBuffer makes h the active buffer for target.
	// Binding 0 clears the slot.
	BindBuffer(target Target, h Handle)

	// BufferData replaces the entire content of the buffer bound to
	// target with a copy of data. Zero-length data is allowed.
	BufferData(target Target, data []byte, usage Usage)

	// GenVertexArray allocates one vertex array handle.
	GenVertexArray() (Handle, error)

	// DeleteVertexArray releases a vertex array handle.
	DeleteVertexArray(h Handle)

	// BindVertexArray makes h the active vertex array.
	BindVertexArray(h Handle)

	// Errors drains and returns the errors the driver has reported
	// since the last call.
	Errors() []error
}

// DataReader is implemented by drivers that can read buffer content
// back from the GPU.
type DataReader interface {
	// BufferSubData returns the first size bytes of the buffer
	// bound to target.
	BufferSubData(target Target, size int) []byte
}
