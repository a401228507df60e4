// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glnative

import (
	"testing"

	"cogentcore.org/glbind/gl"
	ogl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stretchr/testify/assert"
)

var _ gl.Driver = (*Driver)(nil)
var _ gl.DataReader = (*Driver)(nil)

func TestEnums(t *testing.T) {
	assert.Equal(t, uint32(ogl.ARRAY_BUFFER), TargetEnum(gl.ArrayBuffer))
	assert.Equal(t, uint32(ogl.ELEMENT_ARRAY_BUFFER), TargetEnum(gl.ElementArrayBuffer))
	assert.Equal(t, uint32(ogl.STATIC_DRAW), UsageEnum(gl.StaticDraw))
	for _, tg := range gl.TargetValues() {
		assert.NotZero(t, TargetEnum(tg), tg.String())
	}
	for _, u := range gl.UsageValues() {
		assert.NotZero(t, UsageEnum(u), u.String())
	}
	assert.Zero(t, TargetEnum(gl.TargetsN))
	assert.Zero(t, UsageEnum(gl.UsagesN))
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, "gl: invalid operation", Error(ogl.INVALID_OPERATION).Error())
	assert.Equal(t, "gl: error 0x1234", Error(0x1234).Error())
	e := &DebugError{ID: 7, Severity: ogl.DEBUG_SEVERITY_HIGH, Message: "buffer not bound"}
	assert.Equal(t, "gl: buffer not bound (id 7, severity high)", e.Error())
}
