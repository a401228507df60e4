// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The enum methods below have the layout of enumgen output but are
// maintained by hand; keep them in sync with enums.go.

package gl

import (
	"fmt"
	"strconv"
	"strings"
)

var _TargetNames = []string{`ArrayBuffer`, `ElementArrayBuffer`, `UniformBuffer`, `CopyReadBuffer`, `CopyWriteBuffer`}

// TargetsN is the highest valid value for type Target, plus one.
const TargetsN Target = 5

// String returns the string representation of this Target value.
func (i Target) String() string {
	if i < 0 || i >= TargetsN {
		return strconv.FormatInt(int64(i), 10)
	}
	return _TargetNames[i]
}

// SetString sets the Target value from its string representation,
// and returns an error if the string is invalid. Matching is case-insensitive.
func (i *Target) SetString(s string) error {
	for v, nm := range _TargetNames {
		if strings.EqualFold(nm, s) {
			*i = Target(v)
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid value for type Target", s)
}

// IsValid returns whether the value is a valid option for type Target.
func (i Target) IsValid() bool {
	return i >= 0 && i < TargetsN
}

// TargetValues returns all possible values for the type Target.
func TargetValues() []Target {
	res := make([]Target, TargetsN)
	for i := range res {
		res[i] = Target(i)
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Target) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Target) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

var _UsageNames = []string{`StaticDraw`, `DynamicDraw`, `StreamDraw`, `StaticRead`, `DynamicRead`, `StreamRead`, `StaticCopy`, `DynamicCopy`, `StreamCopy`}

// UsagesN is the highest valid value for type Usage, plus one.
const UsagesN Usage = 9

// String returns the string representation of this Usage value.
func (i Usage) String() string {
	if i < 0 || i >= UsagesN {
		return strconv.FormatInt(int64(i), 10)
	}
	return _UsageNames[i]
}

// SetString sets the Usage value from its string representation,
// and returns an error if the string is invalid. Matching is case-insensitive.
func (i *Usage) SetString(s string) error {
	for v, nm := range _UsageNames {
		if strings.EqualFold(nm, s) {
			*i = Usage(v)
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid value for type Usage", s)
}

// IsValid returns whether the value is a valid option for type Usage.
func (i Usage) IsValid() bool {
	return i >= 0 && i < UsagesN
}

// UsageValues returns all possible values for the type Usage.
func UsageValues() []Usage {
	res := make([]Usage, UsagesN)
	for i := range res {
		res[i] = Usage(i)
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Usage) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Usage) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

var _KindsNames = []string{`BufferKind`, `VertexArrayKind`}

// KindsN is the highest valid value for type Kinds, plus one.
const KindsN Kinds = 2

// String returns the string representation of this Kinds value.
func (i Kinds) String() string {
	if i < 0 || i >= KindsN {
		return strconv.FormatInt(int64(i), 10)
	}
	return _KindsNames[i]
}
