// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Target classifies which binding slot, and so which semantic role,
// a [Buffer] serves.
type Target int32

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer Target = iota

	// ElementArrayBuffer holds vertex indexes for indexed drawing.
	ElementArrayBuffer

	// UniformBuffer holds uniform block data.
	UniformBuffer

	// CopyReadBuffer is the source slot for buffer-to-buffer copies.
	CopyReadBuffer

	// CopyWriteBuffer is the destination slot for buffer-to-buffer copies.
	CopyWriteBuffer
)

// Usage is an advisory hint for the expected access pattern of a
// buffer's content. It lets the driver pick a memory placement and
// never affects correctness.
type Usage int32

const (
	// StaticDraw content is set once and drawn from many times.
	StaticDraw Usage = iota

	// DynamicDraw content is changed often and drawn from many times.
	DynamicDraw

	// StreamDraw content is set once and drawn from at most a few times.
	StreamDraw

	// StaticRead content is set once by the GPU and read back many times.
	StaticRead

	// DynamicRead content is changed often by the GPU and read back many times.
	DynamicRead

	// StreamRead content is set once by the GPU and read back a few times.
	StreamRead

	// StaticCopy content is set once by the GPU and used as a GPU source many times.
	StaticCopy

	// DynamicCopy content is changed often by the GPU and used as a GPU source many times.
	DynamicCopy

	// StreamCopy content is set once by the GPU and used as a GPU source a few times.
	StreamCopy
)

// Kinds is the kind of GPU object a binding slot holds.
type Kinds int32

const (
	// BufferKind slots hold buffers, one slot per [Target].
	BufferKind Kinds = iota

	// VertexArrayKind is the single vertex array slot.
	VertexArrayKind
)
