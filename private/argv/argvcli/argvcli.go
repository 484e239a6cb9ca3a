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

// Package argvcli contains helpers shared by the argv commands.
package argvcli

import (
	"context"
	"errors"
	"time"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/app/appflag"
	"github.com/bufbuild/argv/private/pkg/syserror"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	// Version is the CLI version.
	Version = "0.1.0-dev"

	// DefaultTimeout is the default value of the --timeout flag.
	DefaultTimeout = 10 * time.Second

	// ExitCodeNotFound is the exit code when a key or value is not found.
	//
	// Nothing is printed in this case.
	ExitCodeNotFound = 2

	commandLineFlagName = "command-line"
)

// ArgsFlags are the flags that select the argument list to search.
type ArgsFlags struct {
	CommandLine string

	flagSet *pflag.FlagSet
}

// NewArgsFlags returns a new ArgsFlags.
func NewArgsFlags() *ArgsFlags {
	return &ArgsFlags{}
}

// Bind binds the flags.
func (f *ArgsFlags) Bind(flagSet *pflag.FlagSet) {
	f.flagSet = flagSet
	flagSet.StringVar(
		&f.CommandLine,
		commandLineFlagName,
		"",
		`A raw command line to split and search instead of the positional arguments. The executable name is used as the first argument.`,
	)
}

// GetKeyAndArgs returns the key and the argument list to search.
//
// The first positional argument is the key. If --command-line is set, the
// argument list is split from it and no other positional argument is allowed.
// Otherwise the remaining positional arguments are the argument list, the
// first of them being the executable name.
func GetKeyAndArgs(container app.Container, argsFlags *ArgsFlags) (string, []string, error) {
	if container.NumArgs() == 0 {
		return "", nil, appcmd.NewInvalidArgumentError("a key is required")
	}
	key := container.Arg(0)
	if key == "" {
		return "", nil, appcmd.NewInvalidArgumentError("the key must not be empty")
	}
	if argsFlags.commandLineSet() {
		if container.NumArgs() > 1 {
			return "", nil, appcmd.NewInvalidArgumentErrorf("cannot specify arguments after the key when --%s is set", commandLineFlagName)
		}
		args, err := app.ArgsForCommandLine(argsFlags.CommandLine)
		if err != nil {
			return "", nil, err
		}
		return key, args, nil
	}
	return key, app.Args(container)[1:], nil
}

// NewNotFoundError returns the error for a key or value that was not found.
func NewNotFoundError() error {
	return app.NewError(ExitCodeNotFound, "")
}

// NewErrorInterceptor returns a new Interceptor that logs errors and
// rewrites system errors into a message asking to report the bug.
func NewErrorInterceptor() appflag.Interceptor {
	return func(next func(context.Context, appflag.Container) error) func(context.Context, appflag.Container) error {
		return func(ctx context.Context, container appflag.Container) error {
			err := next(ctx, container)
			if err == nil {
				return nil
			}
			if systemErr, ok := syserror.As(err); ok {
				container.Logger().Error("system error", zap.Error(systemErr))
				return app.NewErrorf(1, "%v\n\nThis is a bug in %s, please report it.", err, container.AppName())
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return app.NewError(1, "timed out")
			}
			if app.GetExitCode(err) != ExitCodeNotFound {
				container.Logger().Debug("command failed", zap.Error(err))
			}
			return err
		}
	}
}

func (f *ArgsFlags) commandLineSet() bool {
	if f.flagSet == nil {
		return f.CommandLine != ""
	}
	return f.flagSet.Changed(commandLineFlagName)
}
