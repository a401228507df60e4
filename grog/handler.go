// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog] logger to one that
// writes to [os.Stderr] at [UserLevel], with colored level names
// when stderr is a color-capable terminal.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that writes one line per record:
// the level name styled for the terminal, the message, and then
// the attributes in [slog.TextHandler] key=value form.
// It filters records by [UserLevel].
type Handler struct {
	out *termenv.Output
	w   io.Writer

	// mu guards buf and w, and is shared by all handlers derived
	// through WithAttrs and WithGroup.
	mu *sync.Mutex

	buf   *bytes.Buffer
	attrs slog.Handler
}

// NewHandler returns a new [Handler] writing to w. The level names
// are colored using the terminal profile detected for w; writers
// that are not terminals get plain text.
func NewHandler(w io.Writer) *Handler {
	h := &Handler{
		out: termenv.NewOutput(w),
		w:   w,
		mu:  &sync.Mutex{},
		buf: &bytes.Buffer{},
	}
	h.attrs = slog.NewTextHandler(h.buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 {
				switch a.Key {
				case slog.TimeKey, slog.LevelKey, slog.MessageKey:
					return slog.Attr{}
				}
			}
			return a
		},
	})
	return h
}

func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.attrs.Handle(ctx, r); err != nil {
		return err
	}
	rest := bytes.TrimSpace(h.buf.Bytes())

	line := LevelString(h.out, r.Level) + " " + r.Message
	if len(rest) > 0 {
		line += " " + string(rest)
	}
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = h.attrs.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.attrs = h.attrs.WithGroup(name)
	return &nh
}

// LevelString returns the name of the given level styled for out.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}
