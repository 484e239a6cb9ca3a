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

// Package syserror reports broken internal invariants.
//
// An Error means the program is wrong rather than its input, for example
// when the counting and materializing passes over a command line disagree.
// Commands show these errors with a request to report them.
package syserror

import (
	"errors"
	"fmt"
)

// Error is a broken internal invariant.
type Error struct {
	message string
}

// Newf returns a new Error with a message formatted by fmt.Sprintf.
func Newf(format string, args ...any) *Error {
	return &Error{
		message: fmt.Sprintf(format, args...),
	}
}

// Error implements error.
func (e *Error) Error() string {
	return "system error: " + e.message
}

// As returns the first Error in the chain of err.
func As(err error) (*Error, bool) {
	var systemErr *Error
	if errors.As(err, &systemErr) {
		return systemErr, true
	}
	return nil, false
}
