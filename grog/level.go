// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grog sets up structured logging through [log/slog],
// with a user-selected verbosity level and terminal colors.
package grog

import "log/slog"

// Shorthands for the [slog.Level] values used with [UserLevel].
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// UserLevel is the lowest level that [Handler] writes. Handlers read it
// on every record, so changing it takes effect immediately. It defaults
// to [Warn] and is normally set once from flags with [LevelFromFlags].
var UserLevel = Warn

// LevelFromFlags maps the verbosity flags of a command to a level:
// vv selects [Debug], v selects [Info] and q selects [Error]. The first
// flag set in that order wins; with none set the level is [Warn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return Debug
	case v:
		return Info
	case q:
		return Error
	}
	return Warn
}
