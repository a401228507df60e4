// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"errors"
	"testing"

	"cogentcore.org/glbind/gl"
	"cogentcore.org/glbind/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a Bindable that records its calls.
type counter struct {
	log     []string
	binds   int
	unbinds int
	deletes int
}

func (c *counter) Bind() {
	c.binds++
	c.log = append(c.log, "bind")
}

func (c *counter) Unbind() {
	c.unbinds++
	c.log = append(c.log, "unbind")
}

func (c *counter) Delete() {
	c.deletes++
}

func TestWith(t *testing.T) {
	c := &counter{}
	err := gl.With(c, func() error {
		c.log = append(c.log, "op")
		assert.Equal(t, 1, c.binds)
		assert.Equal(t, 0, c.unbinds)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"bind", "op", "unbind"}, c.log)
}

func TestWithError(t *testing.T) {
	c := &counter{}
	fail := errors.New("operation failed")
	err := gl.With(c, func() error {
		return fail
	})
	assert.Same(t, fail, err)
	assert.Equal(t, 1, c.binds)
	assert.Equal(t, 1, c.unbinds)
}

func TestWithPanic(t *testing.T) {
	c := &counter{}
	assert.PanicsWithValue(t, "operation panicked", func() {
		gl.With(c, func() error {
			panic("operation panicked")
		})
	})
	assert.Equal(t, []string{"bind", "unbind"}, c.log)
}

func TestWithValue(t *testing.T) {
	c := &counter{}
	v, err := gl.WithValue(c, func() (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	fail := errors.New("no value")
	_, err = gl.WithValue(c, func() (string, error) {
		return "", fail
	})
	assert.ErrorIs(t, err, fail)

	assert.Panics(t, func() {
		gl.WithValue(c, func() (int, error) {
			panic("boom")
		})
	})
	assert.Equal(t, 3, c.binds)
	assert.Equal(t, 3, c.unbinds)
}

func TestUse(t *testing.T) {
	c := &counter{}
	err := gl.Use(c, func(c *counter) error {
		assert.Zero(t, c.deletes)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, c.deletes)

	c = &counter{}
	assert.Panics(t, func() {
		gl.Use(c, func(c *counter) error {
			panic("boom")
		})
	})
	assert.Equal(t, 1, c.deletes)
}

func TestUseBuffer(t *testing.T) {
	d := gltest.NewDriver()
	ctx := gl.NewContext(d)
	b, err := gl.NewBuffer(ctx, gl.ArrayBuffer, gl.StaticDraw, []byte{1, 2})
	require.NoError(t, err)
	err = gl.Use(b, func(b *gl.Buffer) error {
		return gl.With(b, func() error {
			b.SetData(gl.StaticDraw, []byte{3})
			return nil
		})
	})
	assert.NoError(t, err)
	assert.Empty(t, d.LiveBuffers())
	assert.Equal(t, 1, d.BufferDeletes)
}

func TestVertexArray(t *testing.T) {
	d := gltest.NewDriver()
	ctx := gl.NewContext(d)
	va, err := gl.NewVertexArray(ctx)
	require.NoError(t, err)
	assert.NotZero(t, va.Handle())

	var vb *gl.Buffer
	err = gl.With(va, func() error {
		assert.Equal(t, va.Handle(), ctx.Bound(gl.VertexArraySlot))
		vb, err = gl.NewBufferFrom(ctx, gl.ArrayBuffer, gl.StaticDraw, []float32{0, 1})
		return err
	})
	require.NoError(t, err)
	assert.Zero(t, ctx.Bound(gl.VertexArraySlot))
	assert.Zero(t, d.BoundVertexArray())
	assert.Equal(t, []gltest.Ops{
		gltest.GenVertexArray, gltest.BindVertexArray,
		gltest.GenBuffer, gltest.BindBuffer, gltest.BufferData, gltest.BindBuffer,
		gltest.BindVertexArray,
	}, d.Ops())

	vb.Delete()
	va.Delete()
	va.Delete()
	assert.Equal(t, 1, d.VertexArrayAllocs)
	assert.Equal(t, 1, d.VertexArrayDeletes)
	assert.Zero(t, d.LiveVertexArrays())
	assert.Empty(t, d.BadDeletes)
}

func TestVertexArrayAllocationFailure(t *testing.T) {
	d := gltest.NewDriver()
	ctx := gl.NewContext(d)
	d.FailNextAlloc(nil)
	va, err := gl.NewVertexArray(ctx)
	assert.Nil(t, va)
	assert.ErrorIs(t, err, gl.ErrAllocation)
	assert.Zero(t, d.LiveVertexArrays())
}

func TestResourceInterface(t *testing.T) {
	var _ gl.Resource = (*gl.Buffer)(nil)
	var _ gl.Resource = (*gl.VertexArray)(nil)
}

func TestVertexArrayElements(t *testing.T) {
	d := gltest.NewDriver()
	ctx := gl.NewContext(d)
	elements := gl.BufferSlot(gl.ElementArrayBuffer)
	va, err := gl.NewVertexArray(ctx)
	require.NoError(t, err)
	ib, err := gl.NewBufferFrom(ctx, gl.ElementArrayBuffer, gl.StaticDraw, []uint32{0, 1, 2})
	require.NoError(t, err)

	require.NoError(t, gl.With(va, func() error {
		ib.Bind()
		return nil
	}))
	// the index buffer stays with the vertex array, not the slot
	assert.Equal(t, ib.Handle(), ctx.Elements(va.Handle()))
	assert.Equal(t, ib.Handle(), d.ElementBuffer(va.Handle()))
	assert.Zero(t, ctx.Bound(elements))
	assert.Zero(t, d.BoundBuffer(gl.ElementArrayBuffer))

	va.Bind()
	assert.Equal(t, ib.Handle(), ctx.Bound(elements))
	assert.Equal(t, ib.Handle(), d.BoundBuffer(gl.ElementArrayBuffer))

	// unbinding the index buffer inside the scope detaches it
	ib.Unbind()
	assert.Zero(t, ctx.Elements(va.Handle()))
	assert.Zero(t, d.ElementBuffer(va.Handle()))
	ib.Bind()
	va.Unbind()

	va.Bind()
	ib.Delete()
	assert.Zero(t, ctx.Elements(va.Handle()))
	assert.Zero(t, d.ElementBuffer(va.Handle()))
	va.Unbind()
	va.Delete()
	assert.NoError(t, ctx.CheckErrors("elements"))
}
