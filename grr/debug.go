// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !release

package grr

// Debug reports whether errors record the call stack they were
// created at. Release builds skip it.
var Debug = true
