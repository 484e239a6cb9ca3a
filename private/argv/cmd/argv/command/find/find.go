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

package find

import (
	"context"
	"fmt"

	"github.com/bufbuild/argv/private/argv/argvcli"
	"github.com/bufbuild/argv/private/pkg/app/appcmd"
	"github.com/bufbuild/argv/private/pkg/app/applog"
	"github.com/bufbuild/argv/private/pkg/app/appflag"
	"github.com/bufbuild/argv/private/pkg/argv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCommand returns a new Command.
func NewCommand(name string, builder appflag.Builder) *appcmd.Command {
	flags := argvcli.NewArgsFlags()
	return &appcmd.Command{
		Use:   name + " -- <key> <arg0> [args...]",
		Short: "Print the index of the first argument equal to the key.",
		Long: `The search starts at index 1, as index 0 is the executable name.
Keys are compared verbatim, so "--key" only matches "--key".

If the key is not found, nothing is printed and the exit code is 2.`,
		Args: cobra.MinimumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appflag.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

func run(
	ctx context.Context,
	container appflag.Container,
	flags *argvcli.ArgsFlags,
) error {
	key, args, err := argvcli.GetKeyAndArgs(container, flags)
	if err != nil {
		return err
	}
	defer applog.Defer(container.Logger(), "find", zap.String("key", key), zap.Int("num_args", len(args)))()
	index, ok := argv.Find(args, key)
	if !ok {
		return argvcli.NewNotFoundError()
	}
	_, err = fmt.Fprintln(container.Stdout(), index)
	return err
}
