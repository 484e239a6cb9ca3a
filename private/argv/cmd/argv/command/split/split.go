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

package split

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/argv/private/pkg/app"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/app/applog"
	"github.com/bufbuild/argv/private/pkg/app/appflag"
	"github.com/bufbuild/argv/private/pkg/argv"
	"github.com/bufbuild/argv/private/pkg/encoding"
	"github.com/bufbuild/argv/private/pkg/stringutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	formatFlagName           = "format"
	limitFlagName            = "limit"
	executableNameFlagName   = "executable-name"
	noExecutableNameFlagName = "no-executable-name"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var allFormats = []string{
	formatText,
	formatJSON,
	formatYAML,
}

// NewCommand returns a new Command.
func NewCommand(name string, builder appflag.Builder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [command-line]",
		Short: "Split a raw command line into arguments.",
		Long: `The command line is split on whitespace. A double quote starts a segment
that extends to the next double quote not preceded by a backslash, or to the
end of the command line. Escaped quotes are kept verbatim.

The first argument printed is the executable name, which is empty on
platforms where the process does not receive its command line as a single
string, unless --executable-name is set.

If no command line is given, it is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appflag.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	Format           string
	Limit            int
	ExecutableName   string
	NoExecutableName bool

	flagSet *pflag.FlagSet
}

func newFlags() *flags {
	return &flags{}
}

func (f *flags) Bind(flagSet *pflag.FlagSet) {
	f.flagSet = flagSet
	flagSet.StringVar(
		&f.Format,
		formatFlagName,
		formatText,
		fmt.Sprintf(
			`The output format. Must be one of %s. The text format prints one argument per line.`,
			stringutil.SliceToString(allFormats),
		),
	)
	flagSet.IntVar(
		&f.Limit,
		limitFlagName,
		0,
		`The maximum number of arguments to split, not counting the executable name. Zero means no limit.`,
	)
	flagSet.StringVar(
		&f.ExecutableName,
		executableNameFlagName,
		"",
		`The executable name to use as the first argument instead of the path of the running executable.`,
	)
	flagSet.BoolVar(
		&f.NoExecutableName,
		noExecutableNameFlagName,
		false,
		`Do not print the executable name.`,
	)
}

func run(
	ctx context.Context,
	container appflag.Container,
	flags *flags,
) error {
	if err := validateFlags(flags); err != nil {
		return err
	}
	cmdline, err := getCommandLine(ctx, container)
	if err != nil {
		return err
	}
	defer applog.Defer(container.Logger(), "split", zap.Int("length", len(cmdline)))()
	options := []argv.SplitOption{
		argv.SplitWithLimit(flags.Limit),
	}
	var args []string
	if flags.flagSet != nil && flags.flagSet.Changed(executableNameFlagName) {
		args, err = argv.Split(
			cmdline,
			append(options, argv.SplitWithExecutableName(flags.ExecutableName))...,
		)
	} else {
		args, err = app.ArgsForCommandLine(cmdline, options...)
	}
	if err != nil {
		return err
	}
	container.Logger().Debug("split", zap.Strings("args", args))
	if flags.NoExecutableName {
		args = args[1:]
	}
	return printArgs(container.Stdout(), flags.Format, args)
}

func validateFlags(flags *flags) error {
	if flags.Limit < 0 {
		return appcmd.NewInvalidArgumentErrorf("--%s must be non-negative but was %d", limitFlagName, flags.Limit)
	}
	if flags.NoExecutableName && flags.flagSet != nil && flags.flagSet.Changed(executableNameFlagName) {
		return appcmd.NewInvalidArgumentErrorf("cannot set both --%s and --%s", executableNameFlagName, noExecutableNameFlagName)
	}
	switch flags.Format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return appcmd.NewInvalidArgumentErrorf("--%s must be one of %s but was %q", formatFlagName, stringutil.SliceToString(allFormats), flags.Format)
	}
}

func getCommandLine(ctx context.Context, container app.Container) (string, error) {
	if container.NumArgs() == 1 {
		return container.Arg(0), nil
	}
	if app.IsStdinTerminal(container) {
		return "", appcmd.NewInvalidArgumentError("a command line is required as an argument or on stdin")
	}
	return readCommandLine(ctx, container.Stdin())
}

// readCommandLine reads all of reader, returning early with the context
// error if ctx is done first.
//
// The read itself cannot be interrupted and is left to finish on its own.
func readCommandLine(ctx context.Context, reader io.Reader) (string, error) {
	type readResult struct {
		data []byte
		err  error
	}
	readResultC := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(reader)
		readResultC <- readResult{data: data, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-readResultC:
		if result.err != nil {
			return "", fmt.Errorf("could not read the command line from stdin: %w", result.err)
		}
		return string(result.data), nil
	}
}

func printArgs(writer io.Writer, format string, args []string) error {
	var data []byte
	var err error
	switch format {
	case formatJSON:
		data, err = encoding.MarshalJSON(args)
	case formatYAML:
		data, err = encoding.MarshalYAML(args)
	default:
		if len(args) > 0 {
			data = []byte(strings.Join(args, "\n") + "\n")
		}
	}
	if err != nil {
		return err
	}
	_, err = writer.Write(data)
	return err
}
