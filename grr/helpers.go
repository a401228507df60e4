// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grr

import (
	"fmt"
	"log/slog"
)

// Log logs err at error level if it is non-nil and returns it,
// so that it can wrap a call whose error is otherwise dropped:
//
//	grr.Log(w.Close())
//
// The stack of an [*Error] is logged as the "at" attribute.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), attrs(err)...)
	}
	return err
}

// Must1 returns v, panicking if err is non-nil. It is meant for
// setup code where an error is a programming mistake:
//
//	b := grr.Must1(gl.NewBuffer(ctx, gl.ArrayBuffer, gl.StaticDraw, data))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Recover stores a panic in progress in *err as an [*Error]. It must be
// deferred directly:
//
//	defer grr.Recover(&err)
//
// If nothing panicked, *err is left as it is.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(error); ok {
		*err = wrap(re)
		return
	}
	*err = wrap(fmt.Errorf("panic: %v", r))
}
