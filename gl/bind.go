// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// With binds b, calls fn, and unbinds b again. The unbind happens on
// every exit path of fn, including a returned error and a panic, so
// the binding slot never stays pointed at b after With returns.
// It returns the error returned by fn.
//
// Binding slots are shared by all objects of a kind in a context,
// so With calls must not be nested for the same slot: the inner
// Unbind would clear the slot out from under the outer operation.
func With(b Bindable, fn func() error) error {
	b.Bind()
	defer b.Unbind()
	return fn()
}

// WithValue is like [With] for operations that produce a value,
// which is passed through along with the error.
func WithValue[T any](b Bindable, fn func() (T, error)) (T, error) {
	b.Bind()
	defer b.Unbind()
	return fn()
}

// Use calls fn with res and deletes res when fn returns or panics.
// It is the scoped form of resource ownership: the native handle
// does not outlive the call.
//
//	err := gl.Use(grr.Must1(gl.NewBuffer(ctx, ...)), func(b *gl.Buffer) error { ... })
func Use[R Deleter](res R, fn func(R) error) error {
	defer res.Delete()
	return fn(res)
}
