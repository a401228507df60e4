// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		vv, v, q bool
		want     slog.Level
	}{
		{true, false, false, Debug},
		{true, true, true, Debug},
		{false, true, true, Info},
		{false, false, true, Error},
		{false, false, false, Warn},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("vv=%v,v=%v,q=%v", tt.vv, tt.v, tt.q)
		assert.Equal(t, tt.want, LevelFromFlags(tt.vv, tt.v, tt.q), name)
	}
}
