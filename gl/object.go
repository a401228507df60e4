// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Handle is an opaque identifier issued by the graphics driver for
// a GPU-resident object. It is meaningful only to that driver.
// Zero is the null handle, which unbinds a slot when bound.
type Handle uint32

// Bindable is a resource that can be made the active one for its
// binding slot, and cleared from that slot again.
type Bindable interface {
	// Bind makes this resource the active one for its binding slot.
	Bind()

	// Unbind clears the binding slot, by binding the null handle.
	Unbind()
}

// Deleter is a resource that owns a native handle which must be
// released exactly once.
type Deleter interface {
	Delete()
}

// Resource is the full capability set of a GPU object wrapper.
type Resource interface {
	Bindable
	Deleter

	// Handle returns the raw native handle, for interop with
	// lower-level draw calls. It is 0 after Delete.
	Handle() Handle
}

// Object is the base for all GPU object wrappers. It owns exactly one
// native [Handle], which the concrete type allocates before the Object
// is initialized and releases exactly once in its Delete method.
// Objects are not safe for concurrent use: all calls must happen on
// the thread that owns the current graphics context.
type Object struct {
	ctx    *Context
	handle Handle
}

func newObject(ctx *Context, h Handle) Object {
	return Object{ctx: ctx, handle: h}
}

// Handle returns the native handle, or 0 if the object has been deleted.
func (o *Object) Handle() Handle {
	return o.handle
}

// Context returns the context the object was created in.
func (o *Object) Context() *Context {
	return o.ctx
}

// IsDeleted returns whether the handle has already been released.
func (o *Object) IsDeleted() bool {
	return o.handle == 0
}

// release deletes the handle through del exactly once, clearing slot
// in the binding table if it still records this handle (the driver
// itself drops bindings to deleted objects). It returns false if
// the handle was already released.
func (o *Object) release(slot Slot, del func(Handle)) bool {
	if o.handle == 0 {
		return false
	}
	h := o.handle
	o.handle = 0
	if o.ctx.Bound(slot) == h {
		o.ctx.setBound(slot, 0)
	}
	del(h)
	return true
}
