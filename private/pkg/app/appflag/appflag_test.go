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

package appflag

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFromFlag(t *testing.T) {
	t.Parallel()
	stderr := runTestCommand(
		t,
		nil,
		func(ctx context.Context, container Container) error {
			container.Logger().Debug("debug message")
			return nil
		},
		"--log-level",
		"debug",
		"--log-format",
		"json",
	)
	assert.Contains(t, stderr, `"message":"debug message"`)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Parallel()
	stderr := runTestCommand(
		t,
		map[string]string{
			"TEST_APP_LOG_LEVEL":  "debug",
			"TEST_APP_LOG_FORMAT": "json",
		},
		func(ctx context.Context, container Container) error {
			assert.Equal(t, "test-app", container.AppName())
			container.Logger().Debug("debug message")
			return nil
		},
	)
	assert.Contains(t, stderr, `"message":"debug message"`)
}

func TestLogLevelFlagOverridesEnv(t *testing.T) {
	t.Parallel()
	stderr := runTestCommand(
		t,
		map[string]string{
			"TEST_APP_LOG_LEVEL": "debug",
		},
		func(ctx context.Context, container Container) error {
			container.Logger().Debug("debug message")
			return nil
		},
		"--log-level",
		"error",
	)
	assert.NotContains(t, stderr, "debug message")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()
	builder := NewBuilder("test-app")
	command := &appcmd.Command{
		Use:                 "test",
		BindPersistentFlags: builder.BindRoot,
		Run: builder.NewRunFunc(
			func(context.Context, Container) error {
				return nil
			},
		),
	}
	err := appcmd.Run(
		context.Background(),
		app.NewContainer(nil, nil, nil, nil, "test", "--log-level", "foobar"),
		command,
	)
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	t.Parallel()
	builder := NewBuilder("test-app", BuilderWithTimeout(time.Minute))
	var hasDeadline bool
	command := &appcmd.Command{
		Use:                 "test",
		BindPersistentFlags: builder.BindRoot,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container Container) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			},
		),
	}
	require.NoError(
		t,
		appcmd.Run(
			context.Background(),
			app.NewContainer(nil, nil, nil, nil, "test", "--timeout", "5s"),
			command,
		),
	)
	assert.True(t, hasDeadline)
}

func TestInterceptors(t *testing.T) {
	t.Parallel()
	var calls []string
	newInterceptor := func(name string) Interceptor {
		return func(next func(context.Context, Container) error) func(context.Context, Container) error {
			return func(ctx context.Context, container Container) error {
				calls = append(calls, name)
				return next(ctx, container)
			}
		}
	}
	builder := NewBuilder("test-app", BuilderWithInterceptor(newInterceptor("builder")))
	errFoo := errors.New("foo")
	command := &appcmd.Command{
		Use:                 "test",
		BindPersistentFlags: builder.BindRoot,
		Run: builder.NewRunFunc(
			func(context.Context, Container) error {
				calls = append(calls, "run")
				return errFoo
			},
			newInterceptor("first"),
			newInterceptor("second"),
		),
	}
	err := appcmd.Run(
		context.Background(),
		app.NewContainer(nil, nil, nil, nil, "test"),
		command,
	)
	assert.ErrorIs(t, err, errFoo)
	assert.Equal(t, []string{"builder", "first", "second", "run"}, calls)
}

func runTestCommand(
	t *testing.T,
	env map[string]string,
	f func(context.Context, Container) error,
	args ...string,
) string {
	t.Helper()
	builder := NewBuilder("test-app")
	command := &appcmd.Command{
		Use:                 "test",
		BindPersistentFlags: builder.BindRoot,
		Run:                 builder.NewRunFunc(f),
	}
	stderr := bytes.NewBuffer(nil)
	require.NoError(
		t,
		appcmd.Run(
			context.Background(),
			app.NewContainer(env, nil, nil, stderr, append([]string{"test"}, args...)...),
			command,
		),
	)
	return stderr.String()
}
