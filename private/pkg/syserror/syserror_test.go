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

package syserror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	t.Parallel()
	err := Newf("counted %d tokens but scanned %d", 2, 1)
	assert.EqualError(t, err, "system error: counted 2 tokens but scanned 1")
}

func TestAs(t *testing.T) {
	t.Parallel()
	err := Newf("foo")
	systemErr, ok := As(fmt.Errorf("split: %w", err))
	require.True(t, ok)
	assert.Same(t, err, systemErr)

	systemErr, ok = As(errors.New("foo"))
	assert.False(t, ok)
	assert.Nil(t, systemErr)

	_, ok = As(nil)
	assert.False(t, ok)
}
