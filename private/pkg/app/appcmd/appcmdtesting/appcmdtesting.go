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

// Package appcmdtesting contains test utilities for appcmd.
package appcmdtesting

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/stringutil"
	"github.com/stretchr/testify/require"
)

// testingUse is the use string for test commands.
//
// We want to use something different than actual commands to make sure that all code is binary-name-agnostic.
const testingUse = "test"

// Run runs the command created by newCommand with the specified options.
func Run(
	t *testing.T,
	newCommand func(use string) *appcmd.Command,
	options ...RunOption,
) {
	t.Helper()
	runOptions := newRunOptions()
	for _, option := range options {
		option(runOptions)
	}

	stdoutBuffer := bytes.NewBuffer(nil)
	stderrBuffer := bytes.NewBuffer(nil)
	var env map[string]string
	if runOptions.newEnv != nil {
		env = runOptions.newEnv(testingUse)
	}

	exitCode := app.GetExitCode(
		appcmd.Run(
			context.Background(),
			app.NewContainer(
				env,
				runOptions.stdin,
				stdoutBuffer,
				stderrBuffer,
				append([]string{testingUse}, runOptions.args...)...,
			),
			newCommand(testingUse),
		),
	)
	require.Equal(
		t,
		runOptions.expectedExitCode,
		exitCode,
		"args: %v\nstdout:\n%s\nstderr:\n%s",
		runOptions.args,
		stdoutBuffer.String(),
		stderrBuffer.String(),
	)
	if runOptions.expectedStdoutPresent {
		require.Equal(
			t,
			stringutil.TrimLines(runOptions.expectedStdout),
			stringutil.TrimLines(stdoutBuffer.String()),
			"stderr:\n%s",
			stderrBuffer.String(),
		)
	}
	for _, expectedStderrPartial := range runOptions.expectedStderrPartials {
		require.Contains(
			t,
			stderrBuffer.String(),
			expectedStderrPartial,
		)
	}
}

// RunOption is an option for Run.
type RunOption func(*runOptions)

// WithEnv will attach the given environment variable map created by newEnv.
//
// The default is no environment variables.
func WithEnv(newEnv func(use string) map[string]string) RunOption {
	return func(runOptions *runOptions) {
		runOptions.newEnv = newEnv
	}
}

// WithStdin will attach the given stdin to read from.
func WithStdin(stdin io.Reader) RunOption {
	return func(runOptions *runOptions) {
		runOptions.stdin = stdin
	}
}

// WithArgs adds the given args.
func WithArgs(args ...string) RunOption {
	return func(runOptions *runOptions) {
		runOptions.args = args
	}
}

// WithExpectedStdout will result in an error if the stdout does not equal the given string.
//
// Lines are trimmed before comparison. This can be called with empty, which
// will result in Run verifying that the stdout is empty.
func WithExpectedStdout(expectedStdout string) RunOption {
	return func(runOptions *runOptions) {
		runOptions.expectedStdout = expectedStdout
		runOptions.expectedStdoutPresent = true
	}
}

// WithExpectedStderrPartials will result in Run checking if all the given strings are contained within stderr.
func WithExpectedStderrPartials(expectedStderrPartials ...string) RunOption {
	return func(runOptions *runOptions) {
		runOptions.expectedStderrPartials = append(runOptions.expectedStderrPartials, expectedStderrPartials...)
	}
}

// WithExpectedExitCode will result in Run checking that the exit code is the expected value.
//
// By default, Run will check that the exit code is 0.
func WithExpectedExitCode(expectedExitCode int) RunOption {
	return func(runOptions *runOptions) {
		runOptions.expectedExitCode = expectedExitCode
	}
}

type runOptions struct {
	newEnv                 func(string) map[string]string
	stdin                  io.Reader
	args                   []string
	expectedStdout         string
	expectedStdoutPresent  bool
	expectedStderrPartials []string
	expectedExitCode       int
}

func newRunOptions() *runOptions {
	return &runOptions{}
}
