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
	"golang.org/x/sys/windows"
)

const (
	// maxPathLength is MAX_PATH, the initial buffer size.
	maxPathLength = 260
	// maxLongPathLength is the longest path GetModuleFileName can return.
	maxLongPathLength = 32767
)

func executablePath() string {
	size := maxPathLength
	for {
		buffer := make([]uint16, size)
		n, err := windows.GetModuleFileName(0, &buffer[0], uint32(len(buffer)))
		if err != nil {
			return ""
		}
		// A full buffer means the path was truncated.
		if int(n) < len(buffer) {
			return windows.UTF16ToString(buffer[:n])
		}
		if size == maxLongPathLength {
			return ""
		}
		size = nextBufferSize(size)
	}
}

// nextBufferSize doubles size, clamped to maxLongPathLength so that the
// longest path is always attempted.
func nextBufferSize(size int) int {
	return min(size*2, maxLongPathLength)
}
