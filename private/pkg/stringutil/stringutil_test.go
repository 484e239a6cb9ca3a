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

package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb\n\nc", TrimLines("  a \n\tb\r\n\n c  \n\n"))
	assert.Equal(t, "", TrimLines(" \n "))
}

func TestSliceToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", SliceToString(nil))
	assert.Equal(t, "[text,json,yaml]", SliceToString([]string{"text", "json", "yaml"}))
}

func TestToUpperSnakeCase(t *testing.T) {
	t.Parallel()
	testToUpperSnakeCase(t, "argv", "ARGV")
	testToUpperSnakeCase(t, "test-app", "TEST_APP")
	testToUpperSnakeCase(t, "test--app", "TEST_APP")
	testToUpperSnakeCase(t, "-test.app-", "TEST_APP")
	testToUpperSnakeCase(t, "testApp", "TEST_APP")
	testToUpperSnakeCase(t, "TestApp2", "TEST_APP2")
	testToUpperSnakeCase(t, "", "")
}

func testToUpperSnakeCase(t *testing.T, input string, expected string) {
	t.Helper()
	assert.Equal(t, expected, ToUpperSnakeCase(input), input)
}
