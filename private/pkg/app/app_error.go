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

package app

import (
	"errors"
	"fmt"
)

// exitError is an error that determines the exit code of the process.
//
// A command can report its result through the exit code alone by using an
// empty message, in which case nothing is printed.
type exitError struct {
	exitCode int
	err      error
}

func newExitError(exitCode int, err error) *exitError {
	if exitCode == 0 {
		// Exiting with 0 would hide the error.
		return &exitError{
			exitCode: 1,
			err:      fmt.Errorf("invalid exit code 0: %w", err),
		}
	}
	return &exitError{
		exitCode: exitCode,
		err:      err,
	}
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.exitCode
	}
	return 1
}

func printError(container StderrContainer, err error) {
	if message := err.Error(); message != "" {
		_, _ = fmt.Fprintln(container.Stderr(), message)
	}
}
