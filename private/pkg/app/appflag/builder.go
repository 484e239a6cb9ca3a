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
	"context"
	"time"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/applog"
	"github.com/bufbuild/argv/private/pkg/stringutil"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

const (
	logLevelFlagName  = "log-level"
	logFormatFlagName = "log-format"
	timeoutFlagName   = "timeout"

	logLevelEnvSuffix  = "_LOG_LEVEL"
	logFormatEnvSuffix = "_LOG_FORMAT"
)

type builder struct {
	appName string

	logLevel  string
	logFormat string
	timeout   time.Duration

	defaultTimeout time.Duration
	interceptors   []Interceptor
}

func newBuilder(appName string, options ...BuilderOption) *builder {
	builder := &builder{
		appName: appName,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func (b *builder) BindRoot(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&b.logLevel,
		logLevelFlagName,
		"",
		`The log level [debug,info,warn,error]. Defaults to info.`,
	)
	flagSet.StringVar(
		&b.logFormat,
		logFormatFlagName,
		"",
		`The log format [text,color,json]. Defaults to color.`,
	)
	if b.defaultTimeout > 0 {
		flagSet.DurationVar(
			&b.timeout,
			timeoutFlagName,
			b.defaultTimeout,
			`The duration until timing out. Zero means no timeout.`,
		)
	}
}

func (b *builder) NewRunFunc(
	f func(context.Context, Container) error,
	interceptors ...Interceptor,
) func(context.Context, app.Container) error {
	allInterceptors := make([]Interceptor, 0, len(b.interceptors)+len(interceptors))
	allInterceptors = append(allInterceptors, b.interceptors...)
	interceptor := chainInterceptors(append(allInterceptors, interceptors...)...)
	return func(ctx context.Context, appContainer app.Container) error {
		if interceptor != nil {
			return b.run(ctx, appContainer, interceptor(f))
		}
		return b.run(ctx, appContainer, f)
	}
}

func (b *builder) run(
	ctx context.Context,
	appContainer app.Container,
	f func(context.Context, Container) error,
) (retErr error) {
	envPrefix := stringutil.ToUpperSnakeCase(b.appName)
	logLevel := b.logLevel
	if logLevel == "" {
		logLevel = appContainer.Env(envPrefix + logLevelEnvSuffix)
	}
	logFormat := b.logFormat
	if logFormat == "" {
		logFormat = appContainer.Env(envPrefix + logFormatEnvSuffix)
	}
	logger, err := applog.NewLogger(appContainer.Stderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	defer func() {
		retErr = multierr.Append(retErr, syncLogger(logger.Sync()))
	}()
	container := newContainer(appContainer, b.appName, logger)

	var cancel context.CancelFunc
	if b.timeout != 0 {
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	return f(ctx, container)
}

// syncLogger drops errors from syncing loggers that write to
// unsyncable files such as terminals and pipes.
func syncLogger(err error) error {
	if err == nil || isUnsyncableError(err) {
		return nil
	}
	return err
}

// chainInterceptors consolidates the given interceptors into one.
// The interceptors are applied in the order they are declared.
func chainInterceptors(interceptors ...Interceptor) Interceptor {
	var filtered []Interceptor
	for _, interceptor := range interceptors {
		if interceptor != nil {
			filtered = append(filtered, interceptor)
		}
	}
	switch n := len(filtered); n {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		first := filtered[0]
		return func(next func(context.Context, Container) error) func(context.Context, Container) error {
			for i := len(filtered) - 1; i > 0; i-- {
				next = filtered[i](next)
			}
			return first(next)
		}
	}
}
