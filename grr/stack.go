// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxDepth bounds the number of recorded call sites.
const maxDepth = 16

// callers returns the call sites starting at the caller of the
// exported grr function, as "file.go:line" strings. Leading runtime
// frames (a deferred [Recover] is called by the panic machinery) are
// skipped, and unwinding stops at the next runtime or testing frame.
func callers() []string {
	pcs := make([]uintptr, maxDepth)
	// skip runtime.Callers, callers, wrap and the exported function
	n := runtime.Callers(4, pcs)
	if n == 0 {
		return nil
	}
	var res []string
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if isRuntime(f.Function) {
			if len(res) > 0 {
				break
			}
		} else {
			res = append(res, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line))
		}
		if !more {
			break
		}
	}
	return res
}

func isRuntime(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "testing.")
}
