// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build windows

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextBufferSize(t *testing.T) {
	t.Parallel()
	var sizes []int
	for size := maxPathLength; ; size = nextBufferSize(size) {
		sizes = append(sizes, size)
		if size == maxLongPathLength {
			break
		}
	}
	assert.Equal(
		t,
		[]int{260, 520, 1040, 2080, 4160, 8320, 16640, maxLongPathLength},
		sizes,
	)
	assert.Equal(t, maxLongPathLength, nextBufferSize(maxLongPathLength))
}
