// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory [gl.Driver] that records every
// call, for testing code built on package gl without a GPU.
package gltest

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/glbind/gl"
)

// Ops are the driver operations recorded in [Call.Op].
type Ops string

const (
	GenBuffer         Ops = "GenBuffer"
	DeleteBuffer      Ops = "DeleteBuffer"
	BindBuffer        Ops = "BindBuffer"
	BufferData        Ops = "BufferData"
	BufferSubData     Ops = "BufferSubData"
	GenVertexArray    Ops = "GenVertexArray"
	DeleteVertexArray Ops = "DeleteVertexArray"
	BindVertexArray   Ops = "BindVertexArray"
)

var (
	// ErrNoBuffer is reported when data is uploaded or read back
	// with no buffer bound to the target.
	ErrNoBuffer = errors.New("gltest: no buffer bound to target")

	// ErrUnknownHandle is reported when an unallocated or already
	// deleted handle is bound or deleted.
	ErrUnknownHandle = errors.New("gltest: unknown handle")
)

// Call is one recorded driver call.
type Call struct {
	Op     Ops
	Target gl.Target
	Handle gl.Handle
	Usage  gl.Usage

	// Size is the byte count for BufferData and BufferSubData.
	Size int
}

func (c Call) String() string {
	switch c.Op {
	case BindBuffer, DeleteBuffer:
		return fmt.Sprintf("%s(%v, %d)", c.Op, c.Target, c.Handle)
	case BufferData:
		return fmt.Sprintf("%s(%v, %d bytes, %v)", c.Op, c.Target, c.Size, c.Usage)
	case BufferSubData:
		return fmt.Sprintf("%s(%v, %d bytes)", c.Op, c.Target, c.Size)
	default:
		return fmt.Sprintf("%s(%d)", c.Op, c.Handle)
	}
}

// Driver is a [gl.Driver] and [gl.DataReader] that keeps buffer
// content in memory and records every call in Calls.
// Its zero value is not ready for use; use [NewDriver].
type Driver struct {
	// Calls is every call made, in order.
	Calls []Call

	// BufferAllocs and BufferDeletes count buffer handles
	// allocated and successfully deleted.
	BufferAllocs, BufferDeletes int

	// VertexArrayAllocs and VertexArrayDeletes count vertex array
	// handles allocated and successfully deleted.
	VertexArrayAllocs, VertexArrayDeletes int

	// BadDeletes records handles deleted when they were not live,
	// such as double deletes.
	BadDeletes []gl.Handle

	// UploadHook, if set, is called at the start of every BufferData.
	// It can panic to simulate an upload failure.
	UploadHook func(target gl.Target, data []byte)

	last      gl.Handle
	allocs    int
	failAlloc map[int]error
	buffers   map[gl.Handle][]byte
	arrays    map[gl.Handle]bool
	bound     map[gl.Target]gl.Handle
	boundVA   gl.Handle
	errs      []error

	// elements is the element array binding of each vertex array,
	// with 0 for the default one.
	elements map[gl.Handle]gl.Handle
}

// NewDriver returns a new empty [Driver].
func NewDriver() *Driver {
	return &Driver{
		failAlloc: map[int]error{},
		buffers:   map[gl.Handle][]byte{},
		arrays:    map[gl.Handle]bool{},
		bound:     map[gl.Target]gl.Handle{},
		elements:  map[gl.Handle]gl.Handle{},
	}
}

// FailNextAlloc makes the next handle allocation fail. A nil err makes
// the driver return the null handle with no error.
func (d *Driver) FailNextAlloc(err error) {
	d.FailAllocAt(1, err)
}

// FailAllocAt makes the n-th handle allocation from now fail, counting
// buffers and vertex arrays together; 1 is the next one. A nil err
// makes the driver return the null handle with no error.
func (d *Driver) FailAllocAt(n int, err error) {
	d.failAlloc[d.allocs+n] = err
}

// PushError queues an asynchronous driver error, returned by the
// next call to Errors.
func (d *Driver) PushError(err error) {
	d.errs = append(d.errs, err)
}

// Ops returns the operations of Calls, in order.
func (d *Driver) Ops() []Ops {
	ops := make([]Ops, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// ResetCalls clears the recorded calls, keeping all other state.
func (d *Driver) ResetCalls() {
	d.Calls = nil
}

// LiveBuffers returns the buffer handles that are allocated and not deleted,
// in increasing order.
func (d *Driver) LiveBuffers() []gl.Handle {
	hs := make([]gl.Handle, 0, len(d.buffers))
	for h := range d.buffers {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// LiveVertexArrays returns the number of vertex arrays that are allocated
// and not deleted.
func (d *Driver) LiveVertexArrays() int {
	return len(d.arrays)
}

// BoundBuffer returns the handle the driver has bound to target.
// For [gl.ElementArrayBuffer] that is the binding recorded by the
// bound vertex array.
func (d *Driver) BoundBuffer(target gl.Target) gl.Handle {
	h, _ := d.binding(target)
	return h
}

// ElementBuffer returns the index buffer recorded by vertex array va,
// or by the default vertex array if va is 0.
func (d *Driver) ElementBuffer(va gl.Handle) gl.Handle {
	return d.elements[va]
}

func (d *Driver) binding(target gl.Target) (gl.Handle, bool) {
	if target == gl.ElementArrayBuffer {
		h, ok := d.elements[d.boundVA]
		return h, ok
	}
	h, ok := d.bound[target]
	return h, ok
}

func (d *Driver) setBinding(target gl.Target, h gl.Handle) {
	switch {
	case target == gl.ElementArrayBuffer:
		d.setElement(d.boundVA, h)
	case h == 0:
		delete(d.bound, target)
	default:
		d.bound[target] = h
	}
}

func (d *Driver) setElement(va, h gl.Handle) {
	if h == 0 {
		delete(d.elements, va)
		return
	}
	d.elements[va] = h
}

// BoundVertexArray returns the handle of the bound vertex array.
func (d *Driver) BoundVertexArray() gl.Handle {
	return d.boundVA
}

// Content returns a copy of the content of buffer h, and whether h is live.
func (d *Driver) Content(h gl.Handle) ([]byte, bool) {
	b, ok := d.buffers[h]
	if !ok {
		return nil, false
	}
	return slices.Clone(b), true
}

func (d *Driver) alloc() (gl.Handle, error) {
	d.allocs++
	if err, ok := d.failAlloc[d.allocs]; ok {
		delete(d.failAlloc, d.allocs)
		return 0, err
	}
	d.last++
	return d.last, nil
}

func (d *Driver) GenBuffer() (gl.Handle, error) {
	h, err := d.alloc()
	d.Calls = append(d.Calls, Call{Op: GenBuffer, Handle: h})
	if err != nil || h == 0 {
		return h, err
	}
	d.buffers[h] = []byte{}
	d.BufferAllocs++
	return h, nil
}

func (d *Driver) DeleteBuffer(h gl.Handle) {
	d.Calls = append(d.Calls, Call{Op: DeleteBuffer, Handle: h})
	if _, ok := d.buffers[h]; !ok {
		d.BadDeletes = append(d.BadDeletes, h)
		return
	}
	delete(d.buffers, h)
	for t, b := range d.bound {
		if b == h {
			delete(d.bound, t)
		}
	}
	if d.elements[d.boundVA] == h {
		delete(d.elements, d.boundVA)
	}
	d.BufferDeletes++
}

func (d *Driver) BindBuffer(target gl.Target, h gl.Handle) {
	d.Calls = append(d.Calls, Call{Op: BindBuffer, Target: target, Handle: h})
	if _, ok := d.buffers[h]; h != 0 && !ok {
		d.PushError(fmt.Errorf("BindBuffer(%v, %d): %w", target, h, ErrUnknownHandle))
		return
	}
	d.setBinding(target, h)
}

func (d *Driver) BufferData(target gl.Target, data []byte, usage gl.Usage) {
	h, ok := d.binding(target)
	d.Calls = append(d.Calls, Call{Op: BufferData, Target: target, Handle: h, Usage: usage, Size: len(data)})
	if d.UploadHook != nil {
		d.UploadHook(target, data)
	}
	if !ok {
		d.PushError(fmt.Errorf("BufferData(%v): %w", target, ErrNoBuffer))
		return
	}
	d.buffers[h] = append([]byte{}, data...)
}

// BufferSubData implements [gl.DataReader].
func (d *Driver) BufferSubData(target gl.Target, size int) []byte {
	h, ok := d.binding(target)
	d.Calls = append(d.Calls, Call{Op: BufferSubData, Target: target, Handle: h, Size: size})
	if !ok {
		d.PushError(fmt.Errorf("BufferSubData(%v): %w", target, ErrNoBuffer))
		return nil
	}
	b := d.buffers[h]
	size = min(size, len(b))
	return slices.Clone(b[:size])
}

func (d *Driver) GenVertexArray() (gl.Handle, error) {
	h, err := d.alloc()
	d.Calls = append(d.Calls, Call{Op: GenVertexArray, Handle: h})
	if err != nil || h == 0 {
		return h, err
	}
	d.arrays[h] = true
	d.VertexArrayAllocs++
	return h, nil
}

func (d *Driver) DeleteVertexArray(h gl.Handle) {
	d.Calls = append(d.Calls, Call{Op: DeleteVertexArray, Handle: h})
	if !d.arrays[h] {
		d.BadDeletes = append(d.BadDeletes, h)
		return
	}
	delete(d.arrays, h)
	delete(d.elements, h)
	if d.boundVA == h {
		d.boundVA = 0
	}
	d.VertexArrayDeletes++
}

func (d *Driver) BindVertexArray(h gl.Handle) {
	d.Calls = append(d.Calls, Call{Op: BindVertexArray, Handle: h})
	if h != 0 && !d.arrays[h] {
		d.PushError(fmt.Errorf("BindVertexArray(%d): %w", h, ErrUnknownHandle))
		return
	}
	d.boundVA = h
}

func (d *Driver) Errors() []error {
	errs := d.errs
	d.errs = nil
	return errs
}
