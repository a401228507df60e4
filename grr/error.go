// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grr provides errors that remember where they were created,
// and helpers that report them through [log/slog] where they are
// handled.
package grr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Error is an error annotated with the call sites that led to it,
// innermost first, as "file.go:line" strings.
type Error struct {
	Base  error
	Stack []string
}

// Wrap annotates err with the current call stack. It returns nil for a
// nil err and returns errors that already are an [*Error] unchanged, so
// the recorded stack is always the one closest to the failure.
func Wrap(err error) error {
	return wrap(err)
}

// New is [errors.New] followed by [Wrap].
func New(text string) error {
	return wrap(errors.New(text))
}

// Errorf is [fmt.Errorf] followed by [Wrap]; %w works as usual.
func Errorf(format string, a ...any) error {
	return wrap(fmt.Errorf(format, a...))
}

// wrap must be called directly by an exported function so that the
// stack starts at that function's caller.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if ge, ok := err.(*Error); ok {
		return ge
	}
	e := &Error{Base: err}
	if Debug {
		e.Stack = callers()
	}
	return e
}

// Error returns the message of the base error. The stack is not part
// of it; use [Error.Where] or log the error with [Log].
func (e *Error) Error() string {
	return e.Base.Error()
}

// Where returns the recorded stack as a single line, or "" if none
// was recorded.
func (e *Error) Where() string {
	return strings.Join(e.Stack, " ")
}

// Unwrap returns the base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// attrs returns the slog attributes describing err.
func attrs(err error) []any {
	var ge *Error
	if errors.As(err, &ge) && len(ge.Stack) > 0 {
		return []any{slog.String("at", ge.Where())}
	}
	return nil
}
