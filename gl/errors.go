// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "errors"

var (
	// ErrAllocation is returned when the driver fails to allocate
	// a native handle. It is not retryable.
	ErrAllocation = errors.New("gl: native handle allocation failed")

	// ErrInvalidTarget is returned for a [Target] outside the known values.
	ErrInvalidTarget = errors.New("gl: invalid buffer target")

	// ErrInvalidUsage is returned for a [Usage] outside the known values.
	ErrInvalidUsage = errors.New("gl: invalid buffer usage")

	// ErrDeleted is returned when reading from a deleted object.
	ErrDeleted = errors.New("gl: object has been deleted")

	// ErrUnsupported is returned when the driver does not implement
	// an optional operation.
	ErrUnsupported = errors.ErrUnsupported
)
