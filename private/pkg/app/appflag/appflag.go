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

// Package appflag contains functionality to work with flags.
package appflag

import (
	"context"
	"time"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Container is a container.
type Container interface {
	app.Container

	// AppName is the application name.
	AppName() string
	// Logger is the logger built from the global flags.
	Logger() *zap.Logger
}

// Interceptor intercepts and adapts the request or response of run functions.
type Interceptor func(func(context.Context, Container) error) func(context.Context, Container) error

// Builder builds run functions.
type Builder interface {
	// BindRoot binds the global flags to the root command's flag set.
	BindRoot(flagSet *pflag.FlagSet)
	// NewRunFunc returns a new run function for a command.
	//
	// The interceptors are applied in order, the first interceptor being the outermost.
	NewRunFunc(
		f func(context.Context, Container) error,
		interceptors ...Interceptor,
	) func(context.Context, app.Container) error
}

// NewBuilder returns a new Builder.
//
// The application name determines the prefix of the environment variables
// read for configuration. Application name foo-bar reads FOO_BAR_LOG_LEVEL
// and FOO_BAR_LOG_FORMAT when the corresponding flags are not set.
func NewBuilder(appName string, options ...BuilderOption) Builder {
	return newBuilder(appName, options...)
}

// BuilderOption is an option for a new Builder
type BuilderOption func(*builder)

// BuilderWithTimeout returns a new BuilderOption that adds a timeout flag and the default timeout.
func BuilderWithTimeout(defaultTimeout time.Duration) BuilderOption {
	return func(builder *builder) {
		builder.defaultTimeout = defaultTimeout
	}
}

// BuilderWithInterceptor adds the given interceptor for all run functions.
func BuilderWithInterceptor(interceptor Interceptor) BuilderOption {
	return func(builder *builder) {
		builder.interceptors = append(builder.interceptors, interceptor)
	}
}
