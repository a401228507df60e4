// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/glbind/gl"
)

// Mesh is the geometry uploaded by run: a vertex array with a vertex
// buffer and an index buffer. The vertex array records the index
// buffer, so binding it is enough to draw the mesh.
type Mesh struct {
	Array    *gl.VertexArray
	Vertices *gl.Buffer
	Indexes  *gl.Buffer

	usage    gl.Usage
	vertices []float32
}

// NewMesh uploads the given vertices and indexes in ctx, with the
// vertex array bound. Objects created before a failure are deleted.
func NewMesh(ctx *gl.Context, usage gl.Usage, vertices []float32, indexes []uint32) (m *Mesh, err error) {
	m = &Mesh{usage: usage, vertices: vertices}
	defer func() {
		if err != nil {
			m.Delete()
			m = nil
		}
	}()
	if m.Array, err = gl.NewVertexArray(ctx); err != nil {
		return
	}
	err = gl.With(m.Array, func() error {
		var err error
		if m.Vertices, err = gl.NewBufferFrom(ctx, gl.ArrayBuffer, usage, vertices); err != nil {
			return err
		}
		if m.Indexes, err = gl.NewBufferFrom(ctx, gl.ElementArrayBuffer, usage, indexes); err != nil {
			return err
		}
		// the upload scope unbinds the index buffer, which detaches it
		// from the vertex array; bind it again and leave it to the array
		m.Indexes.Bind()
		return nil
	})
	return
}

// Usage returns the usage hint for vertex uploads.
func (m *Mesh) Usage() gl.Usage {
	return m.usage
}

// SetUsage changes the usage hint for later vertex uploads by [Mesh.Update].
// The buffers keep the usage they were created with.
func (m *Mesh) SetUsage(usage gl.Usage) {
	m.usage = usage
}

// Update re-uploads the vertices, for meshes whose usage hint says
// they change. Static meshes are left as is.
func (m *Mesh) Update() error {
	if m.usage == gl.StaticDraw || m.usage == gl.StaticRead || m.usage == gl.StaticCopy {
		return nil
	}
	return gl.With(m.Vertices, func() error {
		gl.SetDataFrom(m.Vertices, m.usage, m.vertices)
		return nil
	})
}

// Delete deletes the mesh objects that were created.
func (m *Mesh) Delete() {
	if m.Indexes != nil {
		m.Indexes.Delete()
	}
	if m.Vertices != nil {
		m.Vertices.Delete()
	}
	if m.Array != nil {
		m.Array.Delete()
	}
}
