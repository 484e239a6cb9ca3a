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

package argvcli

import (
	"bytes"
	"context"
	"testing"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/app/appflag"
	"github.com/bufbuild/argv/private/pkg/syserror"
	"github.com/stretchr/testify/assert"
)

func TestErrorInterceptorSystemError(t *testing.T) {
	t.Parallel()
	stderr, err := runWithErrorInterceptor(
		func(context.Context, appflag.Container) error {
			return syserror.Newf("counted %d tokens but scanned %d", 2, 1)
		},
	)
	assert.Equal(t, 1, app.GetExitCode(err))
	assert.Contains(t, stderr, "system error: counted 2 tokens but scanned 1")
	assert.Contains(t, stderr, "This is a bug in test, please report it.")
}

func TestErrorInterceptorDeadlineExceeded(t *testing.T) {
	t.Parallel()
	stderr, err := runWithErrorInterceptor(
		func(ctx context.Context, _ appflag.Container) error {
			ctx, cancel := context.WithTimeout(ctx, 0)
			defer cancel()
			<-ctx.Done()
			return ctx.Err()
		},
	)
	assert.Equal(t, 1, app.GetExitCode(err))
	assert.Equal(t, "timed out\n", stderr)
}

func TestErrorInterceptorNotFound(t *testing.T) {
	t.Parallel()
	stderr, err := runWithErrorInterceptor(
		func(context.Context, appflag.Container) error {
			return NewNotFoundError()
		},
	)
	assert.Equal(t, ExitCodeNotFound, app.GetExitCode(err))
	assert.Empty(t, stderr)
}

func runWithErrorInterceptor(f func(context.Context, appflag.Container) error) (string, error) {
	builder := appflag.NewBuilder("test", appflag.BuilderWithInterceptor(NewErrorInterceptor()))
	stderr := bytes.NewBuffer(nil)
	err := appcmd.Run(
		context.Background(),
		app.NewContainer(nil, nil, nil, stderr, "test", "--log-level", "error"),
		&appcmd.Command{
			Use:                 "test",
			BindPersistentFlags: builder.BindRoot,
			Run:                 builder.NewRunFunc(f),
		},
	)
	return stderr.String(), err
}
